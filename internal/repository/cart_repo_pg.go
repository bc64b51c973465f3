package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartRepository interface {
	ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error)
	Upsert(ctx context.Context, item *domain.CartItem) error
	UpdateForUser(ctx context.Context, item *domain.CartItem) error
	DeleteForUser(ctx context.Context, id, userID int64) error
	Clear(ctx context.Context, userID int64) (int64, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type PGCartRepository struct {
	db DB
}

func NewCartRepository(db DB) CartRepository {
	return &PGCartRepository{db: db}
}

const cartItemColumns = `id, user_id, package_id, selected_start_date, selected_end_date, number_of_guests, special_requests, added_at`

func scanCartItem(row scanner) (domain.CartItem, error) {
	var c domain.CartItem
	if err := row.Scan(&c.ID, &c.UserID, &c.PackageID, &c.SelectedStartDate, &c.SelectedEndDate,
		&c.NumberOfGuests, &c.SpecialRequests, &c.AddedAt); err != nil {
		return domain.CartItem{}, notFound(err)
	}
	return c, nil
}

// ListLines returns the user's cart joined with packages, newest first.
func (r *PGCartRepository) ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	const q = `
		SELECT c.id, c.user_id, c.package_id, c.selected_start_date, c.selected_end_date, c.number_of_guests, c.special_requests, c.added_at,
		       p.id, p.destination, p.description, p.price, p.season, p.image_url, p.default_start_date, p.default_end_date, p.duration_days, p.is_active, p.created_at
		FROM cart_items c
		JOIN travel_packages p ON p.id = c.package_id
		WHERE c.user_id = $1
		ORDER BY c.added_at DESC, c.id DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.CartRepository.ListLines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var (
			c     domain.CartItem
			p     domain.TravelPackage
			price pgtype.Numeric
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.PackageID, &c.SelectedStartDate, &c.SelectedEndDate, &c.NumberOfGuests, &c.SpecialRequests, &c.AddedAt,
			&p.ID, &p.Destination, &p.Description, &price, &p.Season, &p.ImageURL, &p.DefaultStartDate, &p.DefaultEndDate, &p.DurationDays, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("repo.CartRepository.ListLines: %w", err)
		}
		p.Price = toDecimal(price)
		lines = append(lines, domain.NewCartLine(c, p))
	}
	return lines, rows.Err()
}

// Upsert inserts the item or, when the user already has this package in the
// cart, overwrites dates, guests and special requests of the existing row.
func (r *PGCartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	const q = `
		INSERT INTO cart_items (user_id, package_id, selected_start_date, selected_end_date, number_of_guests, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, package_id) DO UPDATE
		SET selected_start_date = EXCLUDED.selected_start_date,
		    selected_end_date   = EXCLUDED.selected_end_date,
		    number_of_guests    = EXCLUDED.number_of_guests,
		    special_requests    = EXCLUDED.special_requests
		RETURNING ` + cartItemColumns

	saved, err := scanCartItem(r.db.QueryRow(ctx, q, item.UserID, item.PackageID, item.SelectedStartDate, item.SelectedEndDate, item.NumberOfGuests, item.SpecialRequests))
	if err != nil {
		if isForeignKeyViolation(err) {
			err = domain.ErrNotFound
		}
		return fmt.Errorf("repo.CartRepository.Upsert: %w", err)
	}
	*item = saved
	return nil
}

// UpdateForUser only touches the row when it belongs to item.UserID.
func (r *PGCartRepository) UpdateForUser(ctx context.Context, item *domain.CartItem) error {
	const q = `
		UPDATE cart_items
		SET selected_start_date=$3, selected_end_date=$4, number_of_guests=$5, special_requests=$6
		WHERE id=$1 AND user_id=$2
		RETURNING ` + cartItemColumns

	saved, err := scanCartItem(r.db.QueryRow(ctx, q, item.ID, item.UserID, item.SelectedStartDate, item.SelectedEndDate, item.NumberOfGuests, item.SpecialRequests))
	if err != nil {
		return fmt.Errorf("repo.CartRepository.UpdateForUser: %w", err)
	}
	*item = saved
	return nil
}

func (r *PGCartRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return fmt.Errorf("repo.CartRepository.DeleteForUser: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("repo.CartRepository.DeleteForUser: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *PGCartRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID)
	if err != nil {
		return 0, fmt.Errorf("repo.CartRepository.Clear: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *PGCartRepository) Count(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM cart_items WHERE user_id=$1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.CartRepository.Count: %w", err)
	}
	return n, nil
}

var _ CartRepository = (*PGCartRepository)(nil)
