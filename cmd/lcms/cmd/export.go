package cmd

import (
	"fmt"
	"os"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/logger"
	"lcms/internal/storage/csvfile"

	"github.com/spf13/cobra"
)

// exportCmd writes the catalog as CSV
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the catalog to CSV",
	Long: `Export the catalog as CSV: a header row, then one row per book
in category order.

With no argument (or -) the CSV goes to stdout. A file argument ending
in .gz or .zst is compressed transparently; the file is written
atomically.

Examples:
  lcms export
  lcms export books.csv
  lcms export backup.csv.zst`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	out := newWriter()

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	target := "-"
	if len(args) == 1 {
		target = args[0]
	}

	if target == "-" {
		if _, err := lib.Export(os.Stdout); err != nil {
			return clierrors.IO("export library", "stdout", err)
		}
		return nil
	}

	if err := csvfile.Save(target, lib); err != nil {
		return clierrors.IO("export library", target, err)
	}

	auditLog.LogMutation(cmdCtx, logger.AuditActionExport, target, logger.AuditOutcomeSuccess, map[string]any{
		"books": lib.TotalBooks(),
	})
	log.Debug("export finished", "file", target, "books", lib.TotalBooks())

	out.Success(fmt.Sprintf("exported %d books to %s", lib.TotalBooks(), target))
	return nil
}
