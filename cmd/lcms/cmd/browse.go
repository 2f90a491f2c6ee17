package cmd

import (
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/library"
	"lcms/internal/storage/csvfile"
	"lcms/internal/tui"
	"lcms/internal/tui/themes"

	"github.com/spf13/cobra"
)

// browseCmd launches the interactive browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open a two-pane browser over the catalog: categories on the left,
books on the right.

Navigate with the arrow keys or j/k, switch panes with tab, filter
books with /, and quit with q. The view reloads automatically when the
library file changes on disk.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !interactive() {
		return clierrors.New(clierrors.CodeValidation, "browse needs an interactive terminal").
			WithSuggestions("lcms list", "lcms find <keyword>")
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	path, err := cfg.LibraryPath()
	if err != nil {
		return err
	}

	browser := tui.NewBrowser(lib).
		WithTheme(themes.Detect()).
		WithReload(func() (*library.Library, error) {
			reloaded, _, err := csvfile.Load(path, cfg.Library.RootName)
			return reloaded, err
		})

	// External edits to the library file nudge the browser through a
	// channel; the watcher callback must not block.
	changes := make(chan struct{}, 1)
	watcher, err := csvfile.NewWatcher(path, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log.Warn("live reload disabled", "path", path, "error", err)
	} else {
		browser.WithChanges(changes)
		defer watcher.Stop()
	}

	log.Debug("browser started", "path", path, "books", lib.TotalBooks())
	return tui.Run(browser)
}
