package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	ToggleAdmin(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

type PGUserRepository struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, password_hash, phone_number, is_admin, created_at`

func scanUser(row scanner) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.IsAdmin, &u.CreatedAt); err != nil {
		return domain.User{}, notFound(err)
	}
	return u, nil
}

// Create inserts the user. A duplicate email is reported as domain.ErrConflict.
func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	const q = `
		INSERT INTO users (first_name, last_name, email, password_hash, phone_number, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, q, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.PhoneNumber, user.IsAdmin))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.UserRepository.Create: %w: email already registered", domain.ErrConflict)
		}
		return fmt.Errorf("repo.UserRepository.Create: %w", err)
	}
	*user = created
	return nil
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepository.GetByID: %w", err)
	}
	return &u, nil
}

// GetByEmail expects an already lowercased email.
func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepository.GetByEmail: %w", err)
	}
	return &u, nil
}

func (r *PGUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	const q = `UPDATE users SET first_name=$2, last_name=$3, phone_number=$4 WHERE id=$1 RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, q, user.ID, user.FirstName, user.LastName, user.PhoneNumber))
	if err != nil {
		return fmt.Errorf("repo.UserRepository.UpdateProfile: %w", err)
	}
	*user = updated
	return nil
}

func (r *PGUserRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET is_admin=$2 WHERE id=$1`, id, isAdmin)
	if err != nil {
		return fmt.Errorf("repo.UserRepository.SetAdmin: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepository.SetAdmin: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *PGUserRepository) ToggleAdmin(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `UPDATE users SET is_admin = NOT is_admin WHERE id=$1 RETURNING `+userColumns, id))
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepository.ToggleAdmin: %w", err)
	}
	return &u, nil
}

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepository.List: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserRepository.List: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PGUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.UserRepository.Count: %w", err)
	}
	return n, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
