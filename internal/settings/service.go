package settings

import (
	"context"
	"errors"
)

// ErrNotSaved is returned by repositories when no settings row exists
// yet; the service falls back to Defaults.
var ErrNotSaved = errors.New("settings not saved yet")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored settings, or the defaults when nothing has
// been saved yet.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, ErrNotSaved) {
			return Defaults(), nil
		}

		return Settings{}, err
	}

	return *stored, nil
}

func (s *Service) Save(ctx context.Context, settings Settings) error {
	return s.repo.SaveSettings(ctx, &settings)
}
