package catalog

import (
	"context"
	"log"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
)

type CatalogUseCase interface {
	ListActive(ctx context.Context) ([]domain.TravelPackage, error)
	ListBySeason(ctx context.Context, season string) ([]domain.TravelPackage, error)
	ListAll(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.TravelPackage, error)
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
	Create(ctx context.Context, caller domain.Caller, input domain.PackageInput) (*domain.TravelPackage, error)
	Update(ctx context.Context, caller domain.Caller, id int64, input domain.PackageInput) (*domain.TravelPackage, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
	ToggleActive(ctx context.Context, caller domain.Caller, id int64) (*domain.TravelPackage, error)
}

// Cache holds the active package list. Get returns nil on a miss.
type Cache interface {
	GetActivePackages(ctx context.Context) ([]domain.TravelPackage, error)
	SetActivePackages(ctx context.Context, packages []domain.TravelPackage) error
	InvalidatePackages(ctx context.Context) error
}

type CatalogService struct {
	repo  repository.PackageRepository
	cache Cache
}

// NewCatalogService accepts a nil cache, in which case every read goes to the
// repository.
func NewCatalogService(repo repository.PackageRepository, cache Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) ListActive(ctx context.Context) ([]domain.TravelPackage, error) {
	if s.cache != nil {
		cached, err := s.cache.GetActivePackages(ctx)
		if err != nil {
			log.Printf("catalog: cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	packages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetActivePackages(ctx, packages); err != nil {
			log.Printf("catalog: cache write failed: %v", err)
		}
	}
	return packages, nil
}

func (s *CatalogService) ListBySeason(ctx context.Context, season string) ([]domain.TravelPackage, error) {
	parsed, err := domain.ParseSeason(season)
	if err != nil {
		return nil, err
	}
	return s.repo.ListActiveBySeason(ctx, parsed)
}

func (s *CatalogService) ListAll(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.TravelPackage, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx, includeInactive)
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, caller domain.Caller, input domain.PackageInput) (*domain.TravelPackage, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	pkg, err := input.Normalize()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &pkg); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &pkg, nil
}

// Update replaces every editable field of the package.
func (s *CatalogService) Update(ctx context.Context, caller domain.Caller, id int64, input domain.PackageInput) (*domain.TravelPackage, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	pkg, err := input.Normalize()
	if err != nil {
		return nil, err
	}
	pkg.ID = id
	if err := s.repo.Update(ctx, &pkg); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &pkg, nil
}

// Delete removes the package. Cart items and bookings referencing it are
// removed by the database.
func (s *CatalogService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ToggleActive(ctx context.Context, caller domain.Caller, id int64) (*domain.TravelPackage, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	pkg, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return pkg, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePackages(ctx); err != nil {
		log.Printf("catalog: cache invalidation failed: %v", err)
	}
}

var _ CatalogUseCase = (*CatalogService)(nil)
