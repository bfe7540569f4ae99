// cmd/portalmigrate/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bxgeo/portalmigrate/internal/config"
	"github.com/bxgeo/portalmigrate/internal/org"
	"github.com/bxgeo/portalmigrate/internal/portal"
	"github.com/bxgeo/portalmigrate/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	dataRoot     string
	userSelector string
	side         string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataRoot, "data-root", "d", "", "Directory for snapshot data (overrides DATA_ROOT)")

	backupCmd.Flags().StringVarP(&userSelector, "user", "u", service.UserSelectorMe, "User whose content to back up")
	backupCmd.Flags().StringVarP(&side, "side", "s", "both", "Which organization to back up: source, target or both")

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(matchUsersCmd)
	rootCmd.AddCommand(migrateGroupsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "portalmigrate",
	Short: "portalmigrate moves users, groups and content between GIS portals",
	Long: `portalmigrate backs up users, groups and per-user content from a source
portal organization into local snapshots, matches users across organizations
by email, and replays group definitions onto a target portal with
topology-aware access translation.`,
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot users, groups and content from the live portals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}

		backups := service.NewBackupService(env.logger)
		for _, o := range env.selected(side) {
			if err := backups.BackupUsers(ctx, o); err != nil {
				return fmt.Errorf("backing up users for %s: %w", o.Name, err)
			}
			if err := backups.BackupGroups(ctx, o); err != nil {
				return fmt.Errorf("backing up groups for %s: %w", o.Name, err)
			}
			if err := backups.BackupUserContent(ctx, o, userSelector); err != nil {
				return fmt.Errorf("backing up content for %s: %w", o.Name, err)
			}
		}
		return nil
	},
}

var matchUsersCmd = &cobra.Command{
	Use:   "match-users",
	Short: "Match snapshotted source users to target users by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}

		matches, err := service.NewMatchService(env.logger).MatchUsers(ctx, env.source, env.target)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Printf("%s (%s) -> %s (%s)\n", m.Source.Username, m.Source.Email,
				m.Target.Username, m.Target.Email)
		}
		return nil
	},
}

var migrateGroupsCmd = &cobra.Command{
	Use:   "migrate-groups",
	Short: "Replay snapshotted source groups onto the target portal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := setup(ctx)
		if err != nil {
			return err
		}

		migrator := service.NewGroupMigrationService(env.cfg.MigrationAdmin, env.logger)
		result, err := migrator.MigrateGroups(ctx, env.source, env.target.Portal)
		if err != nil {
			return err
		}

		env.logger.Info("group migration finished",
			"migrated", len(result.Migrated), "failed", len(result.Failed))
		if len(result.Failed) > 0 {
			for _, f := range result.Failed {
				fmt.Fprintf(os.Stderr, "failed: %s (%s): %v\n", f.Title, f.GroupID, f.Err)
			}
			return fmt.Errorf("%d of %d groups failed to migrate",
				len(result.Failed), len(result.Migrated)+len(result.Failed))
		}
		return nil
	},
}

// environment is the wired-up pair of organization contexts the subcommands
// operate on.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	source *org.Context
	target *org.Context
}

func (e *environment) selected(side string) []*org.Context {
	switch side {
	case "source":
		return []*org.Context{e.source}
	case "target":
		return []*org.Context{e.target}
	default:
		return []*org.Context{e.source, e.target}
	}
}

func setup(ctx context.Context) (*environment, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	cfg := config.Load()
	if dataRoot != "" {
		cfg.DataRoot = dataRoot
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, err := connect(ctx, cfg, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("connecting to source portal: %w", err)
	}
	target, err := connect(ctx, cfg, cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("connecting to target portal: %w", err)
	}

	return &environment{cfg: cfg, logger: logger, source: source, target: target}, nil
}

func connect(ctx context.Context, cfg *config.Config, pc config.PortalConfig) (*org.Context, error) {
	client, err := portal.NewClient(&portal.Config{
		BaseURL:  pc.URL,
		Username: pc.Username,
		Password: pc.Password,
		Timeout:  cfg.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}

	opts := []org.Option{org.WithCommonTags(cfg.CommonTags...)}
	if cfg.AnalysisFolder != "" {
		opts = append(opts, org.WithAnalysisFolder(cfg.AnalysisFolder))
	}
	return org.New(ctx, client, cfg.DataRoot, pc.Name, opts...)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
