package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"dhaba/internal/domain"
)

const registerSheet = "Sales Register"

// WriteXLSX renders the sales register rows as an XLSX workbook with a
// header row and one row per settled order.
func WriteXLSX(w io.Writer, rows []domain.SalesRegisterRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", registerSheet)

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
		if err := f.SetCellValue(registerSheet, cell, name); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}

	for i := range rows {
		r := &rows[i]
		values := []interface{}{
			r.OrderNumber,
			r.SettledAt.Format(time.RFC3339),
			string(r.OrderType),
			string(r.PaymentMode),
			r.Subtotal,
			r.CGST,
			r.SGST,
			r.RoundOff,
			r.Total,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("export.WriteXLSX: %w", err)
			}
			if err := f.SetCellValue(registerSheet, cell, v); err != nil {
				return fmt.Errorf("export.WriteXLSX: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}
