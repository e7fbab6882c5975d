package booking

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// ConfirmationQR encodes the booking reference as a PNG QR code.
func ConfirmationQR(c Confirmation) ([]byte, error) {
	png, err := qrcode.Encode(c.Reference, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

// ConfirmationPDF renders a one-page booking confirmation with the price
// breakdown and a QR code of the reference.
func ConfirmationPDF(c Confirmation) ([]byte, error) {
	qrPNG, err := ConfirmationQR(c)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Booking Confirmation", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Reference: %s", c.Reference),
		fmt.Sprintf("Package: %s", c.PackageTitle),
		fmt.Sprintf("Destination: %s", c.Destination),
		fmt.Sprintf("Traveler: %s <%s>", c.TravelerName, c.Email),
		fmt.Sprintf("Departure: %s", c.DepartureDate),
		fmt.Sprintf("Travelers: %d", c.Price.Travelers),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Price breakdown")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: %.2f", c.Price.Subtotal))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Tax (%.0f%%): %.2f", TaxRate*100, c.Price.Tax))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", c.Price.Total))
	pdf.Ln(8)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.SetY(-30)
	pdf.CellFormat(0, 10, fmt.Sprintf("Issued %s", c.SubmittedAt.Format("2006-01-02 15:04 MST")), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation pdf: %w", err)
	}
	return buf.Bytes(), nil
}
