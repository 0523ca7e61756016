// Package report serializes an analysis result into a multi-sheet xlsx
// workbook: raw extraction records, aggregated statistics, per-resource file
// mappings and the pipeline function catalog.
package report

import (
	"fmt"
	"strings"

	"github.com/kernel-kun/crossplane-utils/internal/logger"
	"github.com/kernel-kun/crossplane-utils/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	sheetRawData     = "Raw Data"
	sheetStatistics  = "MR Statistics"
	sheetFileMapping = "File Mapping"
	sheetFunctions   = "Functions"
)

// Options contains configuration options for the report writer
type Options struct {
	// MaxColumnWidth caps content-derived column widths
	MaxColumnWidth int
	// WrapColumnWidth is the fixed width of the wrapped file-locations column
	WrapColumnWidth int
}

// DefaultOptions returns the default report writer options
func DefaultOptions() *Options {
	return &Options{
		MaxColumnWidth:  120,
		WrapColumnWidth: 100,
	}
}

// Writer writes analysis results to an xlsx workbook
type Writer struct {
	opts *Options
}

// NewWriter creates a new report Writer
func NewWriter(opts *Options) *Writer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Writer{opts: opts}
}

// Write serializes the result to outputPath. A run with zero records skips
// the write entirely: no results is a reportable outcome, not an error.
func (w *Writer) Write(result types.Result, outputPath string) error {
	if len(result.Records) == 0 {
		logger.Warn().Msg("no data extracted, skipping report export")
		return nil
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close workbook")
		}
	}()

	if err := w.writeRawData(f, result.Records); err != nil {
		return err
	}
	if err := w.writeStatistics(f, result.Statistics); err != nil {
		return err
	}
	if err := w.writeFileMapping(f, result.Mapping); err != nil {
		return err
	}
	if err := w.writeFunctions(f, result.Functions); err != nil {
		return err
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", outputPath, err)
	}

	logger.Info().Str("file", outputPath).Int("records", len(result.Records)).Msg("report saved")
	return nil
}

func (w *Writer) writeRawData(f *excelize.File, records []types.ExtractionRecord) error {
	headers := []interface{}{
		"File Path",
		"Composition Kind/API Version",
		"ManagedResource (MR) Kind/API Version",
		"Kind",
		"API Version",
		"Category",
	}
	rows := make([][]interface{}, 0, len(records))
	for _, record := range records {
		rows = append(rows, []interface{}{
			record.FilePath,
			record.CompositionKindAPIVersion,
			record.Resource.KindAPIVersion,
			record.Resource.Kind,
			record.Resource.APIVersion,
			record.Resource.Category,
		})
	}

	// The workbook starts with a default sheet; reuse it as the first one
	if err := f.SetSheetName(f.GetSheetName(0), sheetRawData); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetRawData, err)
	}
	return w.fillSheet(f, sheetRawData, headers, rows)
}

func (w *Writer) writeStatistics(f *excelize.File, statistics []types.AggregatedStatistic) error {
	headers := []interface{}{
		"Kind/API Version",
		"Kind",
		"API Version",
		"Category",
		"Total Occurrences",
		"Found in N Files",
		"Used by N Compositions",
	}
	rows := make([][]interface{}, 0, len(statistics))
	for _, stat := range statistics {
		rows = append(rows, []interface{}{
			stat.KindAPIVersion,
			stat.Kind,
			stat.APIVersion,
			stat.Category,
			stat.TotalOccurrences,
			stat.FoundInNFiles,
			stat.UsedByNCompositions,
		})
	}

	if _, err := f.NewSheet(sheetStatistics); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetStatistics, err)
	}
	return w.fillSheet(f, sheetStatistics, headers, rows)
}

func (w *Writer) writeFileMapping(f *excelize.File, mapping []types.FileMappingEntry) error {
	headers := []interface{}{
		"Kind/API Version",
		"Total Files",
		"Total Occurrences",
		"File Locations",
	}
	rows := make([][]interface{}, 0, len(mapping))
	for _, entry := range mapping {
		rows = append(rows, []interface{}{
			entry.KindAPIVersion,
			entry.TotalFiles,
			entry.TotalOccurrences,
			strings.Join(entry.FileLocations, "\n"),
		})
	}

	if _, err := f.NewSheet(sheetFileMapping); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetFileMapping, err)
	}
	if err := w.fillSheet(f, sheetFileMapping, headers, rows); err != nil {
		return err
	}

	// The file-locations column holds newline-joined paths: fix its width and
	// enable wrapping so the lines stay readable
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			WrapText: true,
			Vertical: "top",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create wrap style: %w", err)
	}
	col, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColStyle(sheetFileMapping, col, style); err != nil {
		return fmt.Errorf("failed to style column %s: %w", col, err)
	}
	return f.SetColWidth(sheetFileMapping, col, col, float64(w.opts.WrapColumnWidth))
}

func (w *Writer) writeFunctions(f *excelize.File, functions []string) error {
	headers := []interface{}{"Function Reference"}
	rows := make([][]interface{}, 0, len(functions))
	for _, name := range functions {
		rows = append(rows, []interface{}{name})
	}

	if _, err := f.NewSheet(sheetFunctions); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetFunctions, err)
	}
	return w.fillSheet(f, sheetFunctions, headers, rows)
}

// fillSheet writes the header and rows, then sizes every column from its
// longest cell content, capped at the configured maximum width
func (w *Writer) fillSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header on %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+2, sheet, err)
		}
	}

	for i := range headers {
		maxLen := cellLength(headers[i])
		for _, row := range rows {
			if l := cellLength(row[i]); l > maxLen {
				maxLen = l
			}
		}
		width := min(maxLen+2, w.opts.MaxColumnWidth)

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return fmt.Errorf("failed to size column %s on %s: %w", col, sheet, err)
		}
	}

	return nil
}

// cellLength measures the longest line of a cell's string form
func cellLength(v interface{}) int {
	s := fmt.Sprintf("%v", v)
	maxLen := 0
	for _, line := range strings.Split(s, "\n") {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	return maxLen
}
