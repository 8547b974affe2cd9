package borrows

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"#", "Borrow ID", "Item Name", "Qty", "Name",
	"Branch", "Department", "Date", "Return Date", "Status", "Overdue",
}

// Export は絞り込み済みのレポート行を .xlsx に書き出す。
// 並び・内容は画面のレポートと同じ（ページングだけ無し）。
func Export(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Report"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r, row := range rows {
		values := []any{
			row.ID,
			row.BorrowID,
			row.ItemName,
			row.Qty,
			row.Name,
			row.Branch,
			row.Department,
			row.Date,
			row.ReturnDate,
			row.Status,
			row.Overdue,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SetColWidth(sheet, "B", "J", 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	return f, nil
}
