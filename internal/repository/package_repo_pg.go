package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PackageRepository interface {
	ListActive(ctx context.Context) ([]domain.TravelPackage, error)
	ListActiveBySeason(ctx context.Context, season domain.Season) ([]domain.TravelPackage, error)
	ListAll(ctx context.Context, includeInactive bool) ([]domain.TravelPackage, error)
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
	Create(ctx context.Context, pkg *domain.TravelPackage) error
	Update(ctx context.Context, pkg *domain.TravelPackage) error
	Delete(ctx context.Context, id int64) error
	ToggleActive(ctx context.Context, id int64) (*domain.TravelPackage, error)
	Counts(ctx context.Context) (total, active int, err error)
}

type PGPackageRepository struct {
	db DB
}

func NewPackageRepository(db DB) PackageRepository {
	return &PGPackageRepository{db: db}
}

const packageColumns = `id, destination, description, price, season, image_url, default_start_date, default_end_date, duration_days, is_active, created_at`

func scanPackage(row scanner) (domain.TravelPackage, error) {
	var (
		p     domain.TravelPackage
		price pgtype.Numeric
	)
	if err := row.Scan(&p.ID, &p.Destination, &p.Description, &price, &p.Season, &p.ImageURL,
		&p.DefaultStartDate, &p.DefaultEndDate, &p.DurationDays, &p.IsActive, &p.CreatedAt); err != nil {
		return domain.TravelPackage{}, notFound(err)
	}
	p.Price = toDecimal(price)
	return p, nil
}

func (r *PGPackageRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.TravelPackage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepository.%s: %w", op, err)
	}
	defer rows.Close()

	packages := make([]domain.TravelPackage, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackageRepository.%s: %w", op, err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *PGPackageRepository) ListActive(ctx context.Context) ([]domain.TravelPackage, error) {
	return r.list(ctx, "ListActive", `SELECT `+packageColumns+` FROM travel_packages WHERE is_active ORDER BY season, destination, id`)
}

func (r *PGPackageRepository) ListActiveBySeason(ctx context.Context, season domain.Season) ([]domain.TravelPackage, error) {
	return r.list(ctx, "ListActiveBySeason", `SELECT `+packageColumns+` FROM travel_packages WHERE is_active AND season=$1 ORDER BY destination, id`, season)
}

func (r *PGPackageRepository) ListAll(ctx context.Context, includeInactive bool) ([]domain.TravelPackage, error) {
	return r.list(ctx, "ListAll", `SELECT `+packageColumns+` FROM travel_packages WHERE $1 OR is_active ORDER BY season, destination, id`, includeInactive)
}

func (r *PGPackageRepository) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	p, err := scanPackage(r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM travel_packages WHERE id=$1`, id))
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepository.GetByID: %w", err)
	}
	return &p, nil
}

func (r *PGPackageRepository) Create(ctx context.Context, pkg *domain.TravelPackage) error {
	const q = `
		INSERT INTO travel_packages (destination, description, price, season, image_url, default_start_date, default_end_date, duration_days, is_active)
		VALUES (@destination, @description, @price, @season, @image_url, @start, @end, @duration, @active)
		RETURNING ` + packageColumns

	created, err := scanPackage(r.db.QueryRow(ctx, q, packageArgs(pkg)))
	if err != nil {
		return fmt.Errorf("repo.PackageRepository.Create: %w", err)
	}
	*pkg = created
	return nil
}

func (r *PGPackageRepository) Update(ctx context.Context, pkg *domain.TravelPackage) error {
	const q = `
		UPDATE travel_packages
		SET destination=@destination, description=@description, price=@price, season=@season, image_url=@image_url,
		    default_start_date=@start, default_end_date=@end, duration_days=@duration, is_active=@active
		WHERE id=@id
		RETURNING ` + packageColumns

	args := packageArgs(pkg)
	args["id"] = pkg.ID
	updated, err := scanPackage(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return fmt.Errorf("repo.PackageRepository.Update: %w", err)
	}
	*pkg = updated
	return nil
}

func (r *PGPackageRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM travel_packages WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("repo.PackageRepository.Delete: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackageRepository.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *PGPackageRepository) ToggleActive(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	p, err := scanPackage(r.db.QueryRow(ctx, `UPDATE travel_packages SET is_active = NOT is_active WHERE id=$1 RETURNING `+packageColumns, id))
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepository.ToggleActive: %w", err)
	}
	return &p, nil
}

func (r *PGPackageRepository) Counts(ctx context.Context) (int, int, error) {
	var total, active int
	if err := r.db.QueryRow(ctx, `SELECT count(*), count(*) FILTER (WHERE is_active) FROM travel_packages`).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("repo.PackageRepository.Counts: %w", err)
	}
	return total, active, nil
}

func packageArgs(pkg *domain.TravelPackage) pgx.NamedArgs {
	return pgx.NamedArgs{
		"destination": pkg.Destination,
		"description": pkg.Description,
		"price":       toNumeric(pkg.Price),
		"season":      pkg.Season,
		"image_url":   pkg.ImageURL,
		"start":       pkg.DefaultStartDate,
		"end":         pkg.DefaultEndDate,
		"duration":    pkg.DurationDays,
		"active":      pkg.IsActive,
	}
}

var _ PackageRepository = (*PGPackageRepository)(nil)
