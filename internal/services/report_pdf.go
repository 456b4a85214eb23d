package services

import (
	"bytes"
	"fmt"

	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

var reportTypeTitles = map[models.ReportType]string{
	models.ReportTypeTeacherAccounts:  "Teacher Accounts Report",
	models.ReportTypeDebts:            "Debts Report",
	models.ReportTypeFinancialSummary: "Financial Summary Report",
	models.ReportTypeExpenses:         "Expenses Report",
}

// GeneratePDF renders an assembled report as a printable PDF honoring the
// config's page size, orientation and font size.
func (s *ReportService) GeneratePDF(result *models.ReportResult) ([]byte, error) {
	cfg := result.Config
	pdf := gofpdf.New(cfg.Orientation, "mm", cfg.PageSize, "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	usable := pageW - 20

	title := cfg.Title
	if title == "" {
		title = reportTypeTitles[cfg.Type]
	}

	base := cfg.FontSize

	writeHeader := func() {
		pdf.SetFont("Arial", "B", base+6)
		pdf.CellFormat(usable, 10, title, "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", base)
		pdf.CellFormat(usable, 6,
			fmt.Sprintf("Generated: %s  by %s",
				timeutil.FormatLocal(result.GeneratedAt, timeutil.DisplayLayout), result.GeneratedBy),
			"", 1, "C", false, 0, "")
		pdf.Ln(4)
	}
	writeHeader()

	if cfg.Type.ExpenseOnly() {
		s.writeExpenseSection(pdf, result, usable, base)
	} else {
		for i, row := range result.Teachers {
			if cfg.SeparatePagesPerTeacher && i > 0 {
				pdf.AddPage()
				writeHeader()
			}
			s.writeTeacherSection(pdf, &row, cfg, usable, base)
		}
		s.writeTotalsSection(pdf, result, usable, base)
		if len(result.Expenses) > 0 {
			pdf.Ln(4)
			s.writeExpenseSection(pdf, result, usable, base)
		}
	}

	s.writeBreakdowns(pdf, result, usable, base)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) writeTeacherSection(pdf *gofpdf.Fpdf, row *models.ReportTeacherRow, cfg models.ReportConfig, usable, base float64) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", base+2)
	pdf.CellFormat(usable, 8, row.Teacher.Name, "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", base)
	half := usable / 2
	pdf.CellFormat(half, 6, fmt.Sprintf("Phone: %s", row.Teacher.Phone), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, fmt.Sprintf("School: %s", row.Teacher.School), "RB", 1, "L", false, 0, "")

	third := usable / 3
	pdf.CellFormat(third, 6, fmt.Sprintf("Operations: %.2f", row.Ledger.TotalOperations), "1", 0, "C", false, 0, "")
	pdf.CellFormat(third, 6, fmt.Sprintf("Payments: %.2f", row.Ledger.TotalPayments), "1", 0, "C", false, 0, "")

	switch row.Ledger.Status {
	case models.LedgerStatusDebt:
		pdf.SetFillColor(255, 200, 200)
	case models.LedgerStatusOverpaid:
		pdf.SetFillColor(200, 220, 255)
	default:
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", base)
	pdf.CellFormat(third, 6, fmt.Sprintf("Balance: %.2f (%s)", row.Ledger.Debt, row.Ledger.Status), "1", 1, "C", true, 0, "")

	if cfg.IncludeOperations && len(row.Operations) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", base)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(usable*0.15, 6, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.20, 6, "Type", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.45, 6, "Description", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.20, 6, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", base-1)
		for _, op := range row.Operations {
			pdf.CellFormat(usable*0.15, 5, timeutil.FormatLocal(op.OperationDate, timeutil.DateLayout), "1", 0, "C", false, 0, "")
			pdf.CellFormat(usable*0.20, 5, string(op.Type), "1", 0, "C", false, 0, "")
			pdf.CellFormat(usable*0.45, 5, truncate(op.Description, 45), "1", 0, "L", false, 0, "")
			pdf.CellFormat(usable*0.20, 5, fmt.Sprintf("%.2f", op.Amount), "1", 1, "R", false, 0, "")
		}
	}

	if cfg.IncludePayments && len(row.Payments) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", base)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(usable*0.20, 6, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.25, 6, "Method", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.30, 6, "Reference", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.25, 6, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", base-1)
		for _, p := range row.Payments {
			pdf.CellFormat(usable*0.20, 5, timeutil.FormatLocal(p.PaymentDate, timeutil.DateLayout), "1", 0, "C", false, 0, "")
			pdf.CellFormat(usable*0.25, 5, string(p.PaymentMethod), "1", 0, "C", false, 0, "")
			pdf.CellFormat(usable*0.30, 5, truncate(p.Reference, 28), "1", 0, "L", false, 0, "")
			pdf.CellFormat(usable*0.25, 5, fmt.Sprintf("%.2f", p.Amount), "1", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(4)
}

func (s *ReportService) writeTotalsSection(pdf *gofpdf.Fpdf, result *models.ReportResult, usable, base float64) {
	pdf.SetFont("Arial", "B", base+2)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(usable, 8, "Grand Totals", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", base)
	third := usable / 3
	pdf.CellFormat(third, 7, fmt.Sprintf("Operations: %.2f (%d)", result.Totals.TotalOperations, result.Totals.OperationCount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(third, 7, fmt.Sprintf("Payments: %.2f (%d)", result.Totals.TotalPayments, result.Totals.PaymentCount), "1", 0, "C", false, 0, "")

	if result.Totals.Balance > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", base+1)
	pdf.CellFormat(third, 7, fmt.Sprintf("Balance: %.2f", result.Totals.Balance), "1", 1, "C", true, 0, "")
}

func (s *ReportService) writeExpenseSection(pdf *gofpdf.Fpdf, result *models.ReportResult, usable, base float64) {
	pdf.SetFont("Arial", "B", base+2)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(usable, 8, "Expenses", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", base)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(usable*0.15, 6, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(usable*0.18, 6, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(usable*0.32, 6, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(usable*0.17, 6, "Vendor", "1", 0, "C", true, 0, "")
	pdf.CellFormat(usable*0.18, 6, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", base-1)
	for _, e := range result.Expenses {
		pdf.CellFormat(usable*0.15, 5, timeutil.FormatLocal(e.ExpenseDate, timeutil.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(usable*0.18, 5, string(e.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(usable*0.32, 5, truncate(e.Description, 32), "1", 0, "L", false, 0, "")
		pdf.CellFormat(usable*0.17, 5, truncate(e.Vendor, 16), "1", 0, "L", false, 0, "")
		pdf.CellFormat(usable*0.18, 5, fmt.Sprintf("%.2f", e.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", base)
	pdf.CellFormat(usable*0.82, 6, fmt.Sprintf("Total (%d)", result.Totals.ExpenseCount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(usable*0.18, 6, fmt.Sprintf("%.2f", result.Totals.TotalExpenses), "1", 1, "R", false, 0, "")
}

func (s *ReportService) writeBreakdowns(pdf *gofpdf.Fpdf, result *models.ReportResult, usable, base float64) {
	writeGroup := func(title string, stats []models.GroupStat) {
		if len(stats) == 0 {
			return
		}
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", base+1)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(usable, 7, title, "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "B", base-1)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(usable*0.35, 6, "Category", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.15, 6, "Count", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.25, 6, "Total", "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable*0.25, 6, "Share", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", base-1)
		for _, st := range stats {
			pdf.CellFormat(usable*0.35, 5, st.Key, "1", 0, "L", false, 0, "")
			pdf.CellFormat(usable*0.15, 5, fmt.Sprintf("%d", st.Count), "1", 0, "C", false, 0, "")
			pdf.CellFormat(usable*0.25, 5, fmt.Sprintf("%.2f", st.Total), "1", 0, "R", false, 0, "")
			pdf.CellFormat(usable*0.25, 5, fmt.Sprintf("%.1f%%", st.Percentage), "1", 1, "R", false, 0, "")
		}
	}

	writeGroup("Operations by Type", result.OperationsByType)
	writeGroup("Payments by Method", result.PaymentsByMethod)
	writeGroup("Expenses by Category", result.ExpensesByType)
}

// truncate counts runes, not bytes; Arabic names must never be cut
// mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
