package repository_test

import (
	"context"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_UpsertKeepsOneRowPerPackage(t *testing.T) {
	tx := testutil.NewTx(t)
	repo := repository.NewCartRepository(tx)
	ctx := context.Background()

	u := newUser(t, tx)
	p := newPackage(t, tx, 4200, domain.SeasonSpring)

	first := addToCart(t, tx, u.ID, p.ID, 2)

	second := domain.CartItem{
		UserID:            u.ID,
		PackageID:         p.ID,
		SelectedStartDate: date(2025, 7, 1),
		SelectedEndDate:   date(2025, 7, 9),
		NumberOfGuests:    5,
		SpecialRequests:   ptr("sea view"),
	}
	require.NoError(t, repo.Upsert(ctx, &second))
	assert.Equal(t, first.ID, second.ID)

	lines, err := repo.ListLines(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Item.NumberOfGuests)
	assert.True(t, lines[0].Item.SelectedStartDate.Equal(date(2025, 7, 1)))
	require.NotNil(t, lines[0].Item.SpecialRequests)
	assert.Equal(t, "sea view", *lines[0].Item.SpecialRequests)
	assert.True(t, decimal.NewFromInt(21000).Equal(lines[0].TotalPrice))
	assert.Equal(t, p.ID, lines[0].Package.ID)
}

func TestCartRepository_OwnershipChecks(t *testing.T) {
	tx := testutil.NewTx(t)
	repo := repository.NewCartRepository(tx)
	ctx := context.Background()

	owner := newUser(t, tx)
	other := newUser(t, tx)
	p := newPackage(t, tx, 100, domain.SeasonSummer)
	item := addToCart(t, tx, owner.ID, p.ID, 1)

	foreign := item
	foreign.UserID = other.ID
	foreign.NumberOfGuests = 9
	assert.ErrorIs(t, repo.UpdateForUser(ctx, &foreign), domain.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteForUser(ctx, item.ID, other.ID), domain.ErrNotFound)

	item.NumberOfGuests = 3
	require.NoError(t, repo.UpdateForUser(ctx, &item))
	assert.Equal(t, 3, item.NumberOfGuests)

	require.NoError(t, repo.DeleteForUser(ctx, item.ID, owner.ID))
	n, err := repo.Count(ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCartRepository_ListNewestFirstAndClear(t *testing.T) {
	tx := testutil.NewTx(t)
	repo := repository.NewCartRepository(tx)
	ctx := context.Background()

	u := newUser(t, tx)
	p1 := newPackage(t, tx, 100, domain.SeasonSummer)
	p2 := newPackage(t, tx, 200, domain.SeasonWinter)
	addToCart(t, tx, u.ID, p1.ID, 1)
	addToCart(t, tx, u.ID, p2.ID, 1)
	_, err := tx.Exec(ctx, `UPDATE cart_items SET added_at = now() - interval '1 hour' WHERE package_id=$1`, p1.ID)
	require.NoError(t, err)

	lines, err := repo.ListLines(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, p2.ID, lines[0].Package.ID)
	assert.Equal(t, p1.ID, lines[1].Package.ID)

	removed, err := repo.Clear(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestCartRepository_UpsertUnknownPackage(t *testing.T) {
	tx := testutil.NewTx(t)
	u := newUser(t, tx)

	item := domain.CartItem{
		UserID:            u.ID,
		PackageID:         -1,
		SelectedStartDate: date(2025, 6, 1),
		SelectedEndDate:   date(2025, 6, 10),
		NumberOfGuests:    1,
	}
	err := repository.NewCartRepository(tx).Upsert(context.Background(), &item)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
