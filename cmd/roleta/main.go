package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/willianszwy/roleta-sub000/internal/common/clock"
	"github.com/willianszwy/roleta-sub000/internal/common/uuid"
	projectRepo "github.com/willianszwy/roleta-sub000/internal/repositories/project"
	teamRepo "github.com/willianszwy/roleta-sub000/internal/repositories/team"
	"github.com/willianszwy/roleta-sub000/internal/roulette"
	rouletteService "github.com/willianszwy/roleta-sub000/internal/services/roulette"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	systemClock := clock.New()
	uuidGenerator := uuid.New()

	// Initialize repositories
	projects, err := projectRepo.NewRedis(&projectRepo.Config{
		RedisClient:   redisClient,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create project repository: %v", err)
	}

	teams, err := teamRepo.NewRedis(&teamRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create team repository: %v", err)
	}

	// Initialize the roulette service (runs the legacy migration)
	svc, err := rouletteService.New(context.Background(), &rouletteService.Config{
		ProjectRepo:   projects,
		TeamRepo:      teams,
		Picker:        roulette.New(&roulette.Config{}),
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create roulette service: %v", err)
	}

	// Make sure there is a project to work with
	active, err := svc.GetActiveProject(context.Background(), &rouletteService.GetActiveProjectInput{})
	if err != nil {
		log.Fatalf("Failed to read active project: %v", err)
	}
	if active.Project == nil {
		created, err := svc.CreateProject(context.Background(), &rouletteService.CreateProjectInput{
			Name: "Meu Projeto",
		})
		if err != nil {
			log.Fatalf("Failed to create default project: %v", err)
		}
		active = &rouletteService.GetActiveProjectOutput{Project: created.Project}
	}

	fmt.Printf("roleta - project %q\n", active.Project.Name)
	fmt.Println("commands: add <names> | spin | task <name|desc|n> | taskspin | history | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		command, args, _ := strings.Cut(line, " ")

		switch command {
		case "add":
			out, err := svc.AddParticipantsBulk(context.Background(), &rouletteService.AddParticipantsBulkInput{Raw: args})
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, p := range out.Participants {
				fmt.Printf("added %s\n", p.Name)
			}

		case "spin":
			spin, err := svc.RequestSpin(context.Background(), &rouletteService.RequestSpinInput{})
			if err != nil {
				fmt.Println(err)
				continue
			}
			if _, err := svc.FinishSpin(context.Background(), &rouletteService.FinishSpinInput{Participant: spin.Participant}); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("winner: %s\n", spin.Participant.Name)

		case "task":
			out, err := svc.AddTasksBulk(context.Background(), &rouletteService.AddTasksBulkInput{Lines: args})
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, t := range out.Tasks {
				fmt.Printf("added task %s (needs %d)\n", t.Name, t.RequiredParticipants)
			}

		case "taskspin":
			spin, err := svc.RequestTaskSpin(context.Background(), &rouletteService.RequestTaskSpinInput{})
			if err != nil {
				fmt.Println(err)
				continue
			}
			if _, err := svc.FinishTaskSpin(context.Background(), &rouletteService.FinishTaskSpinInput{
				Task:         spin.Task,
				Participants: spin.Participants,
			}); err != nil {
				fmt.Println(err)
				continue
			}
			assigned := make([]string, 0, len(spin.Participants))
			for _, p := range spin.Participants {
				assigned = append(assigned, p.Name)
			}
			fmt.Printf("%s -> %s\n", spin.Task.Name, strings.Join(assigned, ", "))

		case "history":
			out, err := svc.GetHistory(context.Background(), &rouletteService.GetHistoryInput{})
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, entry := range out.History {
				marker := ""
				if entry.Removed {
					marker = " (removed)"
				}
				fmt.Printf("%s  %s%s\n", entry.SelectedAt.Format(time.RFC3339), entry.ParticipantName, marker)
			}

		case "quit", "exit":
			return

		case "":
			// ignore blank lines

		default:
			fmt.Printf("unknown command %q\n", command)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Error reading input: %v", err)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
