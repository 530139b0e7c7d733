package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/willianszwy/roleta-sub000/internal/repositories/team Repository

import (
	"context"
)

// Repository defines the interface for the global team registry persistence
type Repository interface {
	// SaveTeams persists the full team registry
	SaveTeams(ctx context.Context, input *SaveTeamsInput) error

	// GetTeams retrieves the team registry, falling back to an empty
	// registry on missing or unreadable data
	GetTeams(ctx context.Context, input *GetTeamsInput) (*GetTeamsOutput, error)
}
