package repository_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var emailSeq atomic.Int64

func newUser(t *testing.T, db repository.DB) domain.User {
	t.Helper()
	u := domain.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("user%d-%d@example.com", time.Now().UnixNano(), emailSeq.Add(1)),
		PasswordHash: "hash",
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), &u))
	return u
}

func newPackage(t *testing.T, db repository.DB, price int64, season domain.Season) domain.TravelPackage {
	t.Helper()
	p := domain.TravelPackage{
		Destination:      "Test Destination",
		Description:      "fixture",
		Price:            decimal.NewFromInt(price),
		Season:           season,
		DefaultStartDate: date(2025, 4, 1),
		DefaultEndDate:   date(2025, 4, 15),
		DurationDays:     14,
		IsActive:         true,
	}
	require.NoError(t, repository.NewPackageRepository(db).Create(context.Background(), &p))
	return p
}

func addToCart(t *testing.T, db repository.DB, userID, packageID int64, guests int) domain.CartItem {
	t.Helper()
	item := domain.CartItem{
		UserID:            userID,
		PackageID:         packageID,
		SelectedStartDate: date(2025, 6, 1),
		SelectedEndDate:   date(2025, 6, 10),
		NumberOfGuests:    guests,
	}
	require.NoError(t, repository.NewCartRepository(db).Upsert(context.Background(), &item))
	return item
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}
