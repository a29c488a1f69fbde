package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cng-analyzer/internal/model"
)

const (
	XLSXFileName = "cng_efficiency_report.xlsx"
	XLSXMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SheetName    = "Sheet1"
)

// NoPayback fills the payback cell when savings were <= 0.
const NoPayback = "No Payback"

// XLSXHeader names the spreadsheet columns.
var XLSXHeader = []any{
	"Petrol Cost/km",
	"CNG Cost/km",
	"Monthly Savings",
	"Payback Period (months)",
}

// XLSX builds a single-sheet workbook with a header row and one data row.
// Costs are numeric cells; payback is numeric or the NoPayback string.
func XLSX(r model.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	var payback any = NoPayback
	if m, ok := r.Payback.Months(); ok {
		payback = m
	}
	row := []any{r.PetrolCostPerKm, r.CNGCostPerKm, r.MonthlySavings, payback}

	if err := f.SetSheetRow(SheetName, "A1", &XLSXHeader); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A2", &row); err != nil {
		return nil, fmt.Errorf("write xlsx row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
