package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/output"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	pretty     bool
	format     string
	sheetsDir  string
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx|input.xls]",
		Short: "Extract set records and print JSON or CSV",
		Long: `Extract set records from a workbook file, or from the Google spreadsheet
named by --sheet-id / SHEET_ID when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or csv")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	if format != "json" && format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}

	a, err := newApp("extract")
	if err != nil {
		return err
	}
	defer a.Close()

	wb, err := a.extract(cmd.Context(), args)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, wb); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = buf.Bytes()
	default:
		if data, err = output.ToJSON(wb, pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = append(data, '\n')
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	for _, s := range wb.Sheets {
		a.log.Info("sheet extracted",
			"block", s.Block.Name(),
			"records", len(s.Records),
			"failures", len(s.Failures),
		)
	}
	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetFileName(sheet.Block.Title)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// sheetFileName replaces path separators so a sheet title is a safe file name.
func sheetFileName(title string) string {
	out := []rune(title)
	for i, r := range out {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			out[i] = '_'
		}
	}
	return string(out)
}
