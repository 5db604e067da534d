package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/harbourmove/leadsgo/internal/models"
)

// SummaryPDF renders a one-page summary of a submission for printing
// or attaching to a job sheet. The QR code links back to the
// submission in the dashboard so crews can pull it up on a phone.
func SummaryPDF(s *models.Submission, baseURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Submission "+s.ID, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	title := "Quote Request"
	if s.FormType == models.FormTypeContact {
		title = "Contact Enquiry"
	}
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, fmt.Sprintf("Ref %s  |  Received %s  |  Status: %s",
		s.ID, s.CreatedAt.Format("2 Jan 2006 15:04"), s.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	row := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, value, "", "L", false)
	}

	row("Name", s.FullName)
	row("Email", s.Email)
	row("Phone", s.PhoneNumber)
	if s.FormType == models.FormTypeContact {
		row("Subject", deref(s.Subject))
		row("Message", deref(s.Message))
	} else {
		row("Moving from", deref(s.MovingFrom))
		row("Moving to", deref(s.MovingTo))
		row("Date", deref(s.MovingDate))
		row("Time", deref(s.MovingTime))
		row("Move size", deref(s.MoveSize))
		row("Details", deref(s.AdditionalDetails))
	}

	// Dashboard deep link as QR in the top right corner
	link := fmt.Sprintf("%s/dashboard/submissions/%s", baseURL, s.ID)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("qr", 170, 10, 28, 28, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
