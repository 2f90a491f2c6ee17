package cmd

import (
	"fmt"

	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/output"
	"lcms/internal/library"
	"lcms/internal/logger"
	"lcms/internal/storage/csvfile"

	"github.com/spf13/cobra"
)

// importCmd merges a CSV file into the catalog
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import books from a CSV file",
	Long: `Import books from a CSV file into the catalog.

The expected columns are Title, Author, ISBN, Publication Year, and
Category; a header row is skipped. Files ending in .gz or .zst are
decompressed transparently. Rows that cannot be imported are skipped
and counted, never fatal: malformed rows, unparseable years, empty
category paths, and books already in the catalog.

Examples:
  lcms import books.csv
  lcms import backup.csv.zst
  lcms import shelf.csv -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	out := newWriter()
	file := args[0]

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	in, err := csvfile.Open(file)
	if err != nil {
		return clierrors.IO("open import file", file, err)
	}
	defer in.Close()

	report, err := lib.Import(in)
	if err != nil {
		return clierrors.IO("read import file", file, err)
	}

	if report.Imported > 0 {
		if err := saveLibrary(lib); err != nil {
			return err
		}
	}

	auditLog.LogMutation(cmdCtx, logger.AuditActionImport, file, logger.AuditOutcomeSuccess, map[string]any{
		"imported":   report.Imported,
		"duplicates": report.Duplicates,
		"bad_rows":   report.BadRows,
		"bad_years":  report.BadYears,
		"bad_paths":  report.BadPaths,
	})
	log.Debug("import finished", "file", file, "imported", report.Imported, "skipped", report.Skipped())

	return writeImportReport(out, report)
}

// writeImportReport renders an import report in the active format.
func writeImportReport(out *output.Writer, report library.ImportReport) error {
	switch out.Format() {
	case output.FormatQuiet:
		return out.Write(fmt.Sprintf("%d", report.Imported))
	case output.FormatTable:
		out.Success(fmt.Sprintf("imported %d books", report.Imported))
		if report.Skipped() > 0 {
			out.Warn(fmt.Sprintf("skipped %d rows (%d duplicates, %d malformed, %d bad years, %d bad categories)",
				report.Skipped(), report.Duplicates, report.BadRows, report.BadYears, report.BadPaths))
		}
		return nil
	default:
		return out.Write(report)
	}
}
