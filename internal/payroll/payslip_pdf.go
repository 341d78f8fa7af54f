package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

type payslipRow struct {
	label  string
	amount float64
}

// renderPayslipPDF lays a record out as a one-page PDF 1.4 document: header,
// earnings block, deductions block, net total. Fixed-pitch text and hand
// written objects are all a payslip needs.
func renderPayslipPDF(rec PayrollRecord) []byte {
	earnings := []payslipRow{
		{"Basic Salary", rec.BasicSalary},
		{"House Rent Allowance", rec.HRA},
		{"Transport Allowance", rec.TransportAllowance},
		{"Special Allowance", rec.SpecialAllowance},
		{"Other Allowances", rec.OtherAllowances},
	}
	deductions := []payslipRow{
		{"Provident Fund", rec.PFContribution},
		{"ESI Contribution", rec.ESIContribution},
		{"Professional Tax", rec.ProfessionalTax},
		{"Income Tax", rec.IncomeTaxDeduction},
	}

	lines := []string{
		fmt.Sprintf("Salary Slip - %02d/%d", rec.Month, rec.Year),
		fmt.Sprintf("Employee %s", rec.UserID),
		"",
		"EARNINGS",
	}
	for _, row := range earnings {
		lines = append(lines, payslipLine(row))
	}
	lines = append(lines, payslipLine(payslipRow{"Gross Salary", rec.GrossSalary}), "", "DEDUCTIONS")
	for _, row := range deductions {
		lines = append(lines, payslipLine(row))
	}
	lines = append(lines,
		payslipLine(payslipRow{"Total Deductions", rec.TotalDeductions}),
		"",
		payslipLine(payslipRow{"NET PAY", rec.NetSalary}),
	)

	return writePayslipDocument(lines)
}

func payslipLine(row payslipRow) string {
	return fmt.Sprintf("%-24s %14.2f", row.label, row.amount)
}

// writePayslipDocument assembles the five PDF objects (catalog, page tree,
// page, Courier font, content stream) and the xref table that indexes them.
func writePayslipDocument(lines []string) []byte {
	var text strings.Builder
	text.WriteString("BT\n/F1 11 Tf\n15 TL\n56 792 Td\n")
	for i, line := range lines {
		if i > 0 {
			text.WriteString("T*\n")
		}
		fmt.Fprintf(&text, "(%s) Tj\n", escapePDFText(line))
	}
	text.WriteString("ET")
	stream := text.String()

	doc := &pdfWriter{}
	doc.buf.WriteString("%PDF-1.4\n")
	doc.object("<< /Type /Catalog /Pages 2 0 R >>")
	doc.object("<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	doc.object("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] " +
		"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>")
	doc.object("<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>")
	doc.object(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	return doc.finish()
}

// pdfWriter tracks byte offsets while objects are appended, so the xref
// table can be emitted at the end.
type pdfWriter struct {
	buf     bytes.Buffer
	offsets []int
}

func (w *pdfWriter) object(body string) {
	w.offsets = append(w.offsets, w.buf.Len())
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", len(w.offsets), body)
}

func (w *pdfWriter) finish() []byte {
	xrefStart := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", len(w.offsets)+1)
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF",
		len(w.offsets)+1, xrefStart)
	return w.buf.Bytes()
}

func escapePDFText(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "(", "\\(")
	return strings.ReplaceAll(v, ")", "\\)")
}
