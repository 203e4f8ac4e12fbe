/**
 * @description
 * Renders a beneficiary designation form as a PDF. This is the manual
 * fallback path for accounts held at institutions without API connectivity:
 * the generated form lists the primary and contingent designations for the
 * account owner to file directly.
 */
package pdfform

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/trustmark/designation-service/internal/allocation"
	"github.com/trustmark/designation-service/internal/domain"
)

// Renderer produces beneficiary designation form PDFs.
type Renderer struct{}

// NewRenderer creates a form renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds the designation form for the given account and returns the
// PDF bytes.
func (r *Renderer) Render(account *domain.Account, inst domain.Institution) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(120, 10, "Beneficiary Designation Form")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 7, fmt.Sprintf("Institution: %s", inst.Name))
	pdf.Ln(7)
	pdf.Cell(60, 7, fmt.Sprintf("Account: %s (%s)", account.AccountNumber, account.Type))
	pdf.Ln(7)
	pdf.Cell(60, 7, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	pdf.Ln(12)

	r.writeGroup(pdf, "Primary Beneficiaries", allocation.Primary(account.Beneficiaries))
	r.writeGroup(pdf, "Contingent Beneficiaries", allocation.Contingent(account.Beneficiaries))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render designation form: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeGroup(pdf *gofpdf.Fpdf, title string, beneficiaries []domain.Beneficiary) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(120, 8, title)
	pdf.Ln(9)

	if len(beneficiaries) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(120, 7, "None designated")
		pdf.Ln(10)
		return
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 7, "Name", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "Relationship", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "SSN", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Share", "1", 0, "", false, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 11)
	for _, b := range beneficiaries {
		pdf.CellFormat(60, 7, b.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, string(b.Relationship), "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, b.SSN, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, strconv.FormatFloat(b.Percentage.Float(), 'f', -1, 64)+"%", "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}
	pdf.Ln(5)
}
