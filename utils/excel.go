package utils

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetWriter menulis satu sheet xlsx baris demi baris.
type SheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
}

func NewSheetWriter(name string) *SheetWriter {
	// batas nama sheet Excel 31 karakter
	if len(name) > 31 {
		name = name[:31]
	}
	f := excelize.NewFile()
	_ = f.SetSheetName("Sheet1", name)
	return &SheetWriter{file: f, sheet: name, row: 1}
}

func (w *SheetWriter) WriteHeader(columns []string) error {
	row := make([]interface{}, len(columns))
	for i, col := range columns {
		row[i] = col
	}
	if err := w.WriteRow(row); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, w.row-1)
	end, _ := excelize.CoordinatesToCellName(len(columns), w.row-1)
	return w.file.SetCellStyle(w.sheet, start, end, style)
}

func (w *SheetWriter) WriteRow(values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", w.row, err)
	}
	w.row++
	return nil
}

// Rows -> jumlah baris yang sudah ditulis termasuk header
func (w *SheetWriter) Rows() int {
	return w.row - 1
}

func (w *SheetWriter) Write(out io.Writer) error {
	return w.file.Write(out)
}

func (w *SheetWriter) Close() error {
	return w.file.Close()
}
