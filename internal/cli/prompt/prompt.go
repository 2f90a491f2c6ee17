// Package prompt wraps interactive terminal prompts for destructive
// commands.
package prompt

import (
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/tui/themes"

	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question on the terminal. Aborting the prompt
// (ctrl+c, esc) is reported as a user cancellation, not a failure.
func Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&ok),
		),
	).WithTheme(themes.Detect().HuhTheme())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return false, clierrors.UserCancelled()
		}
		return false, err
	}
	return ok, nil
}
