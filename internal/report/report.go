// Styled three-sheet workbook export for the RES/VPP comparison results.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	excelize "github.com/xuri/excelize/v2"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

const (
	SheetSummary = "Combined Accounts Summary"
	SheetMatches = "Probable Matches"
	SheetMulti   = "Multi-Account Customers"

	highlightColor = "FFFF00"
	bandGreyColor  = "DDDDDD"
	bandWhiteColor = "FFFFFF"
)

// Options for the export step.
type Options struct {
	OutputDir          string
	HighlightThreshold float64 // street similarity above which a match row gets the highlight fill
}

// Export writes the three result tables into one workbook at
// <OutputDir>/RES_VPP_Comparison_<YYYYMMDD>.xlsx, creating the directory
// if needed, and returns the final path.
func Export(res model.Result, opt Options, logger zerolog.Logger) (string, error) {
	if err := os.MkdirAll(opt.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(opt.OutputDir,
		fmt.Sprintf("RES_VPP_Comparison_%s.xlsx", time.Now().Format("20060102")))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return "", err
	}
	for _, name := range []string{SheetMatches, SheetMulti} {
		if _, err := f.NewSheet(name); err != nil {
			return "", err
		}
	}

	if err := writeSheet(f, SheetSummary, summaryHeaders, summaryRows(res.Summary), logger); err != nil {
		return "", err
	}
	if err := writeSheet(f, SheetMatches, matchHeaders, matchRows(res.Matches), logger); err != nil {
		return "", err
	}
	if err := writeSheet(f, SheetMulti, accountHeaders, accountRows(res.Duplicates), logger); err != nil {
		return "", err
	}

	if err := highlightCloseStreets(f, matchHeaders, len(res.Matches), opt.HighlightThreshold); err != nil {
		return "", err
	}
	if err := bandByCustomerKey(f, accountHeaders, res.Duplicates); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

var summaryHeaders = []string{"Customer Key", "Customer Name", "Account ID", "Total Balance"}

var matchHeaders = []string{
	"RES Customer Key", "RES Name", "RES Street",
	"VPP Customer Key", "VPP Name", "VPP Street",
	"Name Similarity", "Street Similarity",
}

var accountHeaders = []string{"Customer Key", "Customer Name", "Account ID", "Total Balance", "Street"}

func summaryRows(rows []model.SummaryRow) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{r.CustomerKey, r.CustomerName, r.AccountIDs, r.TotalBalance}
	}
	return out
}

func matchRows(rows []model.MatchRow) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		var street any
		if r.StreetScore != nil {
			street = *r.StreetScore
		}
		out[i] = []any{r.ResKey, r.ResName, r.ResStreet, r.VppKey, r.VppName, r.VppStreet, r.NameScore, street}
	}
	return out
}

func accountRows(rows []model.Account) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = []any{r.CustomerKey, r.CustomerName, r.AccountID, r.TotalBalance, r.Street}
	}
	return out
}

// writeSheet fills one sheet: header row + data rows, bold/bordered header
// style, column widths fitted to the longest rendered value + 2.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, logger zerolog.Logger) error {
	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	return autoFitColumns(f, sheet, headers, rows, logger)
}

func autoFitColumns(f *excelize.File, sheet string, headers []string, rows [][]any, logger zerolog.Logger) error {
	for c := range headers {
		maxLen := len(headers[c])
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			if n := len(renderCell(row[c], sheet, logger)); n > maxLen {
				maxLen = n
			}
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(maxLen+2)); err != nil {
			return err
		}
	}
	return nil
}

// renderCell stringifies a cell value for width purposes. Anything it
// cannot render counts as empty — logged, never fatal.
func renderCell(v any, sheet string, logger zerolog.Logger) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		logger.Warn().Str("sheet", sheet).Type("type", v).Msg("unrenderable cell value, treating as empty")
		return ""
	}
}

// highlightCloseStreets fills every Probable Matches row whose street
// similarity exceeds the threshold. Missing scores and a missing column
// are skipped silently.
func highlightCloseStreets(f *excelize.File, headers []string, nRows int, threshold float64) error {
	col, ok := findColumn(headers, "Street Similarity")
	if !ok {
		return nil
	}
	fill, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highlightColor}},
	})
	if err != nil {
		return err
	}

	for r := 2; r < nRows+2; r++ {
		cell, err := excelize.CoordinatesToCellName(col+1, r)
		if err != nil {
			return err
		}
		raw, err := f.GetCellValue(SheetMatches, cell)
		if err != nil {
			return err
		}
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || score <= threshold {
			continue
		}
		if err := fillRow(f, SheetMatches, r, len(headers), fill); err != nil {
			return err
		}
	}
	return nil
}

// bandByCustomerKey zebra-stripes the Multi-Account Customers sheet by
// customer-key group: the fill toggles each time the key changes, not per
// row, so all accounts of one customer share a shade. Skipped silently if
// the key column is absent.
func bandByCustomerKey(f *excelize.File, headers []string, rows []model.Account) error {
	if _, ok := findColumn(headers, "Customer Key"); !ok {
		return nil
	}
	grey, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bandGreyColor}},
	})
	if err != nil {
		return err
	}
	white, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bandWhiteColor}},
	})
	if err != nil {
		return err
	}

	useGrey := true
	prev := ""
	started := false
	for i, row := range rows {
		if !started || row.CustomerKey != prev {
			useGrey = !useGrey
			prev = row.CustomerKey
			started = true
		}
		style := white
		if useGrey {
			style = grey
		}
		if err := fillRow(f, SheetMulti, i+2, len(headers), style); err != nil {
			return err
		}
	}
	return nil
}

func fillRow(f *excelize.File, sheet string, row, nCols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(nCols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

// findColumn locates a column by header text; absence is a named outcome,
// not an error.
func findColumn(headers []string, name string) (int, bool) {
	for i, h := range headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}
