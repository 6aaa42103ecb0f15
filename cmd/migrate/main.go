package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"carseat-rental/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned SQL migrations and atlas.sum")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, dbCfg, *dir, *atlasBin, *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dbCfg config.DBConfig, dir, atlasBin string, dryRun bool) error {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("prepare working dir: %w", err)
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    databaseURL(dbCfg),
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("migration applied", "version", f.Version, "name", f.Name)
	}
	slog.Info("database schema is up to date",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun)
	return nil
}

func databaseURL(cfg config.DBConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
}
