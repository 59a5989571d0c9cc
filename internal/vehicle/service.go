package vehicle

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vehicle
type Repository interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	ListVehicles(ctx context.Context) ([]*Vehicle, error)
	ListVehicleIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	HasActiveMaintenance(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *Service) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.ListVehicleIDs(ctx)
}

// SetStatus writes the cached availability column. Only the lifecycle
// coordinator should call this.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) HasActiveMaintenance(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.HasActiveMaintenance(ctx, id)
}
