package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trivia-cli/internal/app"
	"trivia-cli/internal/config"
	"trivia-cli/internal/infra/file"
	"trivia-cli/internal/infra/memory"
	"trivia-cli/internal/infra/opentdb"
	redisstore "trivia-cli/internal/infra/redis"
	"trivia-cli/internal/logging"
	"trivia-cli/internal/tui"
)

// NewPlayCmd builds the subcommand that runs the interactive quiz.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd.Context(), *configPath)
		},
	}
}

func runQuiz(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	store, err := newSnapshotStore(cfg)
	if err != nil {
		return err
	}

	client := opentdb.NewClient(cfg.ProviderURL(), config.Duration(cfg.Provider.Timeout, 10*time.Second))
	categories := memory.NewCategoryCache(client, 10*time.Minute)
	interval := config.Duration(cfg.Snapshot.Interval, 5*time.Second)
	machine := app.NewMachine(client, app.NewSnapshots(store, log, interval))

	log.Info("starting quiz", zap.String("storage", storageBackend(cfg)))
	return tui.Run(ctx, machine, categories)
}

// newSnapshotStore picks the persistence backend from config: file by
// default, redis when configured, memory as an explicit opt-out.
func newSnapshotStore(cfg config.Config) (app.SnapshotStore, error) {
	switch storageBackend(cfg) {
	case "memory":
		return memory.NewSnapshotStore(), nil
	case "redis":
		if cfg.Redis.Addr == "" {
			return nil, fmt.Errorf("redis storage selected but redis.addr not configured")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := config.Duration(cfg.Redis.TTL, 24*time.Hour)
		return redisstore.NewSnapshotStore(client, ttl), nil
	default:
		return file.NewSnapshotStore(cfg.Storage.Path)
	}
}

func storageBackend(cfg config.Config) string {
	if cfg.Storage.Backend != "" {
		return cfg.Storage.Backend
	}
	return "file"
}
