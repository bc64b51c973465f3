package voucher

import (
	"bytes"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	notes := "Sea view please"
	details := domain.BookingDetails{
		Booking: domain.Booking{
			ID:              1,
			Reference:       "5b0c1f7e-0000-4000-8000-000000000001",
			StartDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
			NumberOfGuests:  2,
			SpecialRequests: &notes,
			TotalPrice:      decimal.RequireFromString("2599.98"),
			Status:          domain.BookingStatusConfirmed,
			BookedAt:        time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		PackageDestination: "Santorini, Greece",
		PackageSeason:      domain.SeasonSummer,
		UserName:           "Jane Doe",
		UserEmail:          "jane@example.com",
	}

	data, name, err := Render(details)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "VOUCHER_5b0c1f7e-0000-4000-8000-000000000001.pdf", name)
}
