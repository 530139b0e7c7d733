package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/willianszwy/roleta-sub000/internal/common/clock"
	"github.com/willianszwy/roleta-sub000/internal/common/uuid"
	"github.com/willianszwy/roleta-sub000/internal/models"
)

const (
	// Keys for the project registry
	projectsKey      = "roleta:projects"
	activeProjectKey = "roleta:active_project"
	migratedKey      = "roleta:migrated"
	migratedValue    = "true"

	// Legacy flat keys from before projects existed
	legacyParticipantsKey = "roleta:participants"
	legacyTasksKey        = "roleta:tasks"
	legacyHistoryKey      = "roleta:history"
	legacyTaskHistoryKey  = "roleta:task_history"

	// legacyProjectName is the name of the project synthesized around
	// migrated flat records
	legacyProjectName = "Meu Projeto"
)

// Config holds configuration for the Redis project repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps the synthesized project during migration
	Clock clock.Clock

	// UUIDGenerator identifies the synthesized project during migration
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed project repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
		uuid:   cfg.UUIDGenerator,
	}, nil
}

// SaveProjects persists the full project registry to Redis
func (r *redisRepository) SaveProjects(ctx context.Context, input *SaveProjectsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	projects := input.Projects
	if projects == nil {
		projects = []*models.Project{}
	}

	projectsJSON, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}

	if err := r.client.Set(ctx, projectsKey, projectsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}

	return nil
}

// GetProjects retrieves the project registry from Redis. A missing key or
// unreadable value yields an empty registry, never an error: corrupt
// persisted state must not leak past this boundary.
func (r *redisRepository) GetProjects(ctx context.Context, input *GetProjectsInput) (*GetProjectsOutput, error) {
	projectsJSON, err := r.client.Get(ctx, projectsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetProjectsOutput{Projects: []*models.Project{}}, nil
		}
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	var projects []*models.Project
	if err := json.Unmarshal([]byte(projectsJSON), &projects); err != nil {
		log.Printf("discarding unreadable project registry: %v", err)
		return &GetProjectsOutput{Projects: []*models.Project{}}, nil
	}

	if projects == nil {
		projects = []*models.Project{}
	}

	return &GetProjectsOutput{Projects: projects}, nil
}

// SetActiveProject persists the active-project pointer to Redis
func (r *redisRepository) SetActiveProject(ctx context.Context, input *SetActiveProjectInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.ProjectID == "" {
		if err := r.client.Del(ctx, activeProjectKey).Err(); err != nil {
			return fmt.Errorf("failed to clear active project: %w", err)
		}
		return nil
	}

	if err := r.client.Set(ctx, activeProjectKey, input.ProjectID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save active project: %w", err)
	}

	return nil
}

// GetActiveProject retrieves the active-project pointer from Redis
func (r *redisRepository) GetActiveProject(ctx context.Context, input *GetActiveProjectInput) (*GetActiveProjectOutput, error) {
	projectID, err := r.client.Get(ctx, activeProjectKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetActiveProjectOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get active project: %w", err)
	}

	return &GetActiveProjectOutput{ProjectID: projectID}, nil
}

// Migrate wraps legacy flat records into a synthesized default project.
// Gated by a flag key so it runs at most once per store, and written in
// an order that stays safe to retry against partially-migrated state:
// the registry is written first, the flag is set and the legacy keys are
// deleted last.
func (r *redisRepository) Migrate(ctx context.Context, input *MigrateInput) (*MigrateOutput, error) {
	flag, err := r.client.Get(ctx, migratedKey).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read migration flag: %w", err)
	}
	if flag == migratedValue {
		return &MigrateOutput{}, nil
	}

	out := &MigrateOutput{}

	// An interrupted earlier run may already have written the registry;
	// never overwrite projects that exist.
	existing, err := r.GetProjects(ctx, &GetProjectsInput{})
	if err != nil {
		return nil, err
	}

	if len(existing.Projects) == 0 {
		legacy, err := r.loadLegacyProject(ctx)
		if err != nil {
			return nil, err
		}

		if legacy != nil {
			if err := r.SaveProjects(ctx, &SaveProjectsInput{Projects: []*models.Project{legacy}}); err != nil {
				return nil, err
			}
			if err := r.SetActiveProject(ctx, &SetActiveProjectInput{ProjectID: legacy.ID}); err != nil {
				return nil, err
			}
			out.Migrated = true
		}
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, migratedKey, migratedValue, 0)
	pipe.Del(ctx, legacyParticipantsKey, legacyTasksKey, legacyHistoryKey, legacyTaskHistoryKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to finalize migration: %w", err)
	}

	return out, nil
}

// loadLegacyProject reads the pre-project flat keys and, when any hold
// records, returns a default project wrapping them. Returns nil when no
// legacy data exists.
func (r *redisRepository) loadLegacyProject(ctx context.Context) (*models.Project, error) {
	var participants []*models.Participant
	if err := r.getLegacyList(ctx, legacyParticipantsKey, &participants); err != nil {
		return nil, err
	}

	var tasks []*models.Task
	if err := r.getLegacyList(ctx, legacyTasksKey, &tasks); err != nil {
		return nil, err
	}

	var history []*models.RouletteHistory
	if err := r.getLegacyList(ctx, legacyHistoryKey, &history); err != nil {
		return nil, err
	}

	var taskHistory []*models.TaskHistory
	if err := r.getLegacyList(ctx, legacyTaskHistoryKey, &taskHistory); err != nil {
		return nil, err
	}

	if len(participants) == 0 && len(tasks) == 0 && len(history) == 0 && len(taskHistory) == 0 {
		return nil, nil
	}

	now := r.clock.Now()

	return &models.Project{
		ID:           r.uuid.NewUUID(),
		Name:         legacyProjectName,
		Participants: participants,
		Tasks:        tasks,
		History:      history,
		TaskHistory:  taskHistory,
		Settings:     models.DefaultSettings(),
		CreatedAt:    now,
		LastModified: now,
	}, nil
}

// getLegacyList unmarshals one legacy JSON list key into dest. Missing
// and unreadable keys both count as empty.
func (r *redisRepository) getLegacyList(ctx context.Context, key string, dest any) error {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("discarding unreadable legacy records under %s: %v", key, err)
	}

	return nil
}
