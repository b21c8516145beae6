// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSXSink writes a snapshot to a single-sheet workbook.
type XLSXSink struct {
	Path  string
	Sheet string
}

// Write creates the workbook, replacing any existing file at Path.
func (s XLSXSink) Write(_ context.Context, rows []Row) error {
	sheet := s.Sheet
	if sheet == "" {
		sheet = "Entry Fees"
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#171717"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	dateCol := columnIndex("start_date")
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := r.Values()
		for j, v := range values {
			if v == nil {
				values[j] = ""
			}
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if _, ok := values[dateCol].(time.Time); ok {
			dc, _ := excelize.CoordinatesToCellName(dateCol+1, i+2)
			if err := f.SetCellStyle(sheet, dc, dc, dateStyle); err != nil {
				return err
			}
		}
	}

	firstCol, _ := excelize.ColumnNumberToName(1)
	lastCol, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetColWidth(sheet, firstCol, lastCol, 16); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	return f.SaveAs(s.Path)
}

func columnIndex(name string) int {
	for i, c := range Columns {
		if c == name {
			return i
		}
	}
	return -1
}
