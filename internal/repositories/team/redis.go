package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/willianszwy/roleta-sub000/internal/models"
)

const (
	// teamsKey holds the global team registry
	teamsKey = "roleta:teams"
)

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveTeams persists the full team registry to Redis
func (r *redisRepository) SaveTeams(ctx context.Context, input *SaveTeamsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	teams := input.Teams
	if teams == nil {
		teams = []*models.Team{}
	}

	teamsJSON, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to marshal teams: %w", err)
	}

	if err := r.client.Set(ctx, teamsKey, teamsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save teams: %w", err)
	}

	return nil
}

// GetTeams retrieves the team registry from Redis. Missing or unreadable
// data yields an empty registry, never an error.
func (r *redisRepository) GetTeams(ctx context.Context, input *GetTeamsInput) (*GetTeamsOutput, error) {
	teamsJSON, err := r.client.Get(ctx, teamsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetTeamsOutput{Teams: []*models.Team{}}, nil
		}
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	var teams []*models.Team
	if err := json.Unmarshal([]byte(teamsJSON), &teams); err != nil {
		log.Printf("discarding unreadable team registry: %v", err)
		return &GetTeamsOutput{Teams: []*models.Team{}}, nil
	}

	if teams == nil {
		teams = []*models.Team{}
	}

	return &GetTeamsOutput{Teams: teams}, nil
}
