// Package voucher renders booking vouchers as PDF documents.
package voucher

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/phpdave11/gofpdf"
)

const dateLayout = "2006-01-02"

// Render returns the PDF bytes and a download file name for the booking.
func Render(b domain.BookingDetails) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", b.Reference),
		fmt.Sprintf("Traveller      : %s", safe(b.UserName)),
		fmt.Sprintf("Email          : %s", safe(b.UserEmail)),
		fmt.Sprintf("Destination    : %s", safe(b.PackageDestination)),
		fmt.Sprintf("Season         : %s", safe(string(b.PackageSeason))),
		fmt.Sprintf("Dates          : %s to %s", b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout)),
		fmt.Sprintf("Guests         : %d", b.NumberOfGuests),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Booked at      : %s", b.BookedAt.Format("2006-01-02 15:04")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if b.SpecialRequests != nil && strings.TrimSpace(*b.SpecialRequests) != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Special requests:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, *b.SpecialRequests, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total: $"+b.TotalPrice.StringFixed(2))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher at check-in. Cancelled bookings are not valid for travel.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render voucher: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("VOUCHER_%s.pdf", b.Reference), nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
