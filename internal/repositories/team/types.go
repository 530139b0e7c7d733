package team

import "github.com/willianszwy/roleta-sub000/internal/models"

// SaveTeamsInput contains parameters for persisting the team registry
type SaveTeamsInput struct {
	Teams []*models.Team
}

// GetTeamsInput contains parameters for retrieving the team registry
type GetTeamsInput struct{}

// GetTeamsOutput contains the retrieved team registry
type GetTeamsOutput struct {
	Teams []*models.Team
}
