package book

import (
	"fmt"
	"strconv"
	"strings"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/library"
	"lcms/internal/tui/themes"

	"github.com/charmbracelet/huh"
)

// formValues carries the fields collected by the interactive form.
type formValues struct {
	Title    string
	Author   string
	ISBN     string
	Year     int
	Category string
}

// runBookForm prompts for book fields, seeding the inputs from v so the
// edit flow can reuse it. The category input is only shown when
// askCategory is set; edits never move a book between categories.
func runBookForm(v *formValues, askCategory bool) error {
	yearStr := ""
	if v.Year != 0 {
		yearStr = strconv.Itoa(v.Year)
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Validate(requireNonEmpty("title")).
			Value(&v.Title),

		huh.NewInput().
			Title("Author").
			Validate(requireNonEmpty("author")).
			Value(&v.Author),

		huh.NewInput().
			Title("ISBN").
			Description("Optional; when present it decides duplicate detection").
			Value(&v.ISBN),

		huh.NewInput().
			Title("Publication Year").
			Validate(func(s string) error {
				y, ok := library.ParseYear(strings.TrimSpace(s))
				if !ok {
					return fmt.Errorf("year must be digits with an optional leading '-'")
				}
				v.Year = y
				return nil
			}).
			Value(&yearStr),
	}

	if askCategory {
		fields = append(fields, huh.NewInput().
			Title("Category").
			Description("Slash-separated path, e.g. Fiction/Sci-Fi").
			Validate(requireNonEmpty("category")).
			Value(&v.Category))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(themes.Detect().HuhTheme())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return clierrors.UserCancelled()
		}
		return err
	}
	return nil
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
