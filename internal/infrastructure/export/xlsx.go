// Package export renders reports as spreadsheet files.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/erp/bizhub/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the files produced by WriteXLSX
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

// WriteXLSX writes rep as a workbook with one worksheet per report sheet
func WriteXLSX(w io.Writer, rep report.Exportable) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := rep.Sheets()
	if len(sheets) == 0 {
		sheets = []report.Sheet{{Name: rep.Title()}}
	}

	for i, sheet := range sheets {
		name := sheetName(sheet.Name, i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}

		if err := writeSheet(f, name, sheet, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, sheet report.Sheet, headerStyle int) error {
	row := 1
	if len(sheet.Headers) > 0 {
		headers := make([]any, len(sheet.Headers))
		for i, h := range sheet.Headers {
			headers[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &headers); err != nil {
			return fmt.Errorf("failed to write headers of %q: %w", name, err)
		}
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style headers of %q: %w", name, err)
		}
		row++
	}

	for _, values := range sheet.Rows {
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = cellValue(v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", row, name, err)
		}
		row++
	}
	return nil
}

// cellValue converts domain values excelize cannot store natively
func cellValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.InexactFloat64()
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case time.Time:
		return x
	case *time.Time:
		if x == nil {
			return ""
		}
		return *x
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}

// sheetName trims names to the 31 characters Excel allows
func sheetName(name string, index int) string {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	r := []rune(name)
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}
