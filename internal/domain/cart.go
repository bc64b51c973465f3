package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	PackageID         int64     `json:"package_id"`
	SelectedStartDate time.Time `json:"selected_start_date"`
	SelectedEndDate   time.Time `json:"selected_end_date"`
	NumberOfGuests    int       `json:"number_of_guests"`
	SpecialRequests   *string   `json:"special_requests,omitempty"`
	AddedAt           time.Time `json:"added_at"`
}

// CartLine is a cart item joined with its package. TotalPrice is derived on
// read and never stored.
type CartLine struct {
	Item       CartItem        `json:"item"`
	Package    TravelPackage   `json:"package"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewCartLine(item CartItem, pkg TravelPackage) CartLine {
	return CartLine{Item: item, Package: pkg, TotalPrice: TotalPrice(pkg.Price, item.NumberOfGuests)}
}

// CartTotal sums line totals in the order given.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}
