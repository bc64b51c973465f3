package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ModifyFunc receives a locked booking and the current price of its package.
// Returning an error aborts the modification.
type ModifyFunc func(b *domain.Booking, packagePrice decimal.Decimal) error

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Checkout(ctx context.Context, userID int64, newReference func() string) ([]domain.Booking, error)
	GetDetails(ctx context.Context, id int64) (*domain.BookingDetails, error)
	GetDetailsForUser(ctx context.Context, id, userID int64) (*domain.BookingDetails, error)
	ListDetails(ctx context.Context) ([]domain.BookingDetails, error)
	ListDetailsByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.BookingDetails, error)
	ListDetailsForUser(ctx context.Context, userID int64) ([]domain.BookingDetails, error)
	Modify(ctx context.Context, id int64, fn ModifyFunc) (*domain.Booking, error)
	ModifyForUser(ctx context.Context, id, userID int64, fn ModifyFunc) (*domain.Booking, error)
	CompleteEndedBefore(ctx context.Context, day time.Time) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, package_id, start_date, end_date, number_of_guests, special_requests, total_price, status, booked_at, confirmed_at, cancelled_at`

const bookingDetailsQuery = `
	SELECT b.id, b.reference, b.user_id, b.package_id, b.start_date, b.end_date, b.number_of_guests, b.special_requests,
	       b.total_price, b.status, b.booked_at, b.confirmed_at, b.cancelled_at,
	       p.destination, p.season, p.image_url, u.email, u.first_name || ' ' || u.last_name
	FROM bookings b
	JOIN travel_packages p ON p.id = b.package_id
	JOIN users u ON u.id = b.user_id`

const lockBookingQuery = `
	SELECT b.id, b.reference, b.user_id, b.package_id, b.start_date, b.end_date, b.number_of_guests, b.special_requests,
	       b.total_price, b.status, b.booked_at, b.confirmed_at, b.cancelled_at, p.price
	FROM bookings b
	JOIN travel_packages p ON p.id = b.package_id
	WHERE `

func bookingDest(b *domain.Booking, total *pgtype.Numeric) []any {
	return []any{&b.ID, &b.Reference, &b.UserID, &b.PackageID, &b.StartDate, &b.EndDate, &b.NumberOfGuests,
		&b.SpecialRequests, total, &b.Status, &b.BookedAt, &b.ConfirmedAt, &b.CancelledAt}
}

func scanBooking(row scanner) (domain.Booking, error) {
	var (
		b     domain.Booking
		total pgtype.Numeric
	)
	if err := row.Scan(bookingDest(&b, &total)...); err != nil {
		return domain.Booking{}, notFound(err)
	}
	b.TotalPrice = toDecimal(total)
	return b, nil
}

func scanBookingDetails(row scanner) (domain.BookingDetails, error) {
	var (
		d     domain.BookingDetails
		total pgtype.Numeric
	)
	dest := append(bookingDest(&d.Booking, &total), &d.PackageDestination, &d.PackageSeason, &d.PackageImageURL, &d.UserEmail, &d.UserName)
	if err := row.Scan(dest...); err != nil {
		return domain.BookingDetails{}, notFound(err)
	}
	d.TotalPrice = toDecimal(total)
	return d, nil
}

const insertBooking = `
	INSERT INTO bookings (reference, user_id, package_id, start_date, end_date, number_of_guests, special_requests, total_price, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + bookingColumns

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	created, err := scanBooking(r.db.QueryRow(ctx, insertBooking, booking.Reference, booking.UserID, booking.PackageID,
		booking.StartDate, booking.EndDate, booking.NumberOfGuests, booking.SpecialRequests, toNumeric(booking.TotalPrice), booking.Status))
	if err != nil {
		if isForeignKeyViolation(err) {
			err = domain.ErrNotFound
		}
		return fmt.Errorf("repo.BookingRepository.Create: %w", err)
	}
	*booking = created
	return nil
}

// Checkout converts every cart item of the user into a pending booking and
// deletes the converted items in one transaction. The cart rows are locked
// first, so a concurrent checkout for the same user waits and then finds an
// empty cart.
func (r *PGBookingRepository) Checkout(ctx context.Context, userID int64, newReference func() string) ([]domain.Booking, error) {
	type pending struct {
		item  domain.CartItem
		price decimal.Decimal
	}

	bookings := make([]domain.Booking, 0)
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT c.id, c.package_id, c.selected_start_date, c.selected_end_date, c.number_of_guests, c.special_requests, p.price
			FROM cart_items c
			JOIN travel_packages p ON p.id = c.package_id
			WHERE c.user_id = $1
			ORDER BY c.added_at, c.id
			FOR UPDATE OF c`, userID)
		if err != nil {
			return err
		}

		var items []pending
		for rows.Next() {
			var (
				p     pending
				price pgtype.Numeric
			)
			if err := rows.Scan(&p.item.ID, &p.item.PackageID, &p.item.SelectedStartDate, &p.item.SelectedEndDate,
				&p.item.NumberOfGuests, &p.item.SpecialRequests, &price); err != nil {
				rows.Close()
				return err
			}
			p.price = toDecimal(price)
			items = append(items, p)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(items))
		for _, p := range items {
			created, err := scanBooking(tx.QueryRow(ctx, insertBooking, newReference(), userID, p.item.PackageID,
				p.item.SelectedStartDate, p.item.SelectedEndDate, p.item.NumberOfGuests, p.item.SpecialRequests,
				toNumeric(domain.TotalPrice(p.price, p.item.NumberOfGuests)), domain.BookingStatusPending))
			if err != nil {
				return err
			}
			bookings = append(bookings, created)
			ids = append(ids, p.item.ID)
		}

		cmd, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id = ANY($1)`, ids)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() != int64(len(ids)) {
			return fmt.Errorf("deleted %d of %d cart items", cmd.RowsAffected(), len(ids))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.Checkout: %w", err)
	}
	return bookings, nil
}

func (r *PGBookingRepository) GetDetails(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	d, err := scanBookingDetails(r.db.QueryRow(ctx, bookingDetailsQuery+` WHERE b.id=$1`, id))
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.GetDetails: %w", err)
	}
	return &d, nil
}

func (r *PGBookingRepository) GetDetailsForUser(ctx context.Context, id, userID int64) (*domain.BookingDetails, error) {
	d, err := scanBookingDetails(r.db.QueryRow(ctx, bookingDetailsQuery+` WHERE b.id=$1 AND b.user_id=$2`, id, userID))
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.GetDetailsForUser: %w", err)
	}
	return &d, nil
}

func (r *PGBookingRepository) listDetails(ctx context.Context, op, where string, args ...any) ([]domain.BookingDetails, error) {
	rows, err := r.db.Query(ctx, bookingDetailsQuery+where+` ORDER BY b.booked_at DESC, b.id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]domain.BookingDetails, 0)
	for rows.Next() {
		d, err := scanBookingDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BookingRepository.%s: %w", op, err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *PGBookingRepository) ListDetails(ctx context.Context) ([]domain.BookingDetails, error) {
	return r.listDetails(ctx, "ListDetails", "")
}

func (r *PGBookingRepository) ListDetailsByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.BookingDetails, error) {
	return r.listDetails(ctx, "ListDetailsByStatus", ` WHERE b.status=$1`, status)
}

func (r *PGBookingRepository) ListDetailsForUser(ctx context.Context, userID int64) ([]domain.BookingDetails, error) {
	return r.listDetails(ctx, "ListDetailsForUser", ` WHERE b.user_id=$1`, userID)
}

func (r *PGBookingRepository) Modify(ctx context.Context, id int64, fn ModifyFunc) (*domain.Booking, error) {
	b, err := r.modify(ctx, `b.id=$1`, []any{id}, fn)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.Modify: %w", err)
	}
	return b, nil
}

func (r *PGBookingRepository) ModifyForUser(ctx context.Context, id, userID int64, fn ModifyFunc) (*domain.Booking, error) {
	b, err := r.modify(ctx, `b.id=$1 AND b.user_id=$2`, []any{id, userID}, fn)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.ModifyForUser: %w", err)
	}
	return b, nil
}

func (r *PGBookingRepository) modify(ctx context.Context, where string, args []any, fn ModifyFunc) (*domain.Booking, error) {
	var result domain.Booking
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var (
			b     domain.Booking
			total pgtype.Numeric
			price pgtype.Numeric
		)
		row := tx.QueryRow(ctx, lockBookingQuery+where+` FOR UPDATE OF b`, args...)
		if err := row.Scan(append(bookingDest(&b, &total), &price)...); err != nil {
			return notFound(err)
		}
		b.TotalPrice = toDecimal(total)

		if err := fn(&b, toDecimal(price)); err != nil {
			return err
		}

		updated, err := scanBooking(tx.QueryRow(ctx, `
			UPDATE bookings
			SET start_date=$2, end_date=$3, number_of_guests=$4, special_requests=$5, total_price=$6,
			    status=$7, confirmed_at=$8, cancelled_at=$9
			WHERE id=$1
			RETURNING `+bookingColumns,
			b.ID, b.StartDate, b.EndDate, b.NumberOfGuests, b.SpecialRequests, toNumeric(b.TotalPrice),
			b.Status, b.ConfirmedAt, b.CancelledAt))
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CompleteEndedBefore marks confirmed bookings whose trip ended before day as completed.
func (r *PGBookingRepository) CompleteEndedBefore(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1 WHERE status=$2 AND end_date < $3 RETURNING `+bookingColumns,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, day)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepository.CompleteEndedBefore: %w", err)
	}
	defer rows.Close()

	var completed []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BookingRepository.CompleteEndedBefore: %w", err)
		}
		completed = append(completed, b)
	}
	return completed, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
