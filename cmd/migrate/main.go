package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/infra/db"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const (
	schemaFile = "migrations/001_initial_schema.sql"
	seedFile   = "migrations/002_seed_services.sql"
)

// migrate brings the database to the declared schema with Atlas, then seeds the catalog.
func main() {
	devURL := flag.String("dev-url", envOr("ATLAS_DEV_URL", "docker://postgres/17/dev"), "Atlas dev database URL")
	dryRun := flag.Bool("dry-run", false, "print planned changes without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, *devURL, *dryRun); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
	slog.Info("マイグレーションが完了しました")
}

func run(ctx context.Context, cfg config.Config, devURL string, dryRun bool) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return errs.Wrap(err, "atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + schemaFile,
		DevURL:      devURL,
		AutoApprove: true,
		DryRun:      dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "schema apply")
	}

	for _, stmt := range res.Changes.Applied {
		slog.Info("applied", "statement", stmt)
	}
	for _, stmt := range res.Changes.Pending {
		slog.Info("pending", "statement", stmt)
	}
	if dryRun {
		return nil
	}

	return seed(ctx, cfg.DB)
}

func seed(ctx context.Context, dbCfg config.DBConfig) error {
	content, err := os.ReadFile(seedFile)
	if err != nil {
		return errs.Wrap(err, "read seed file")
	}

	pool, cleanup, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	tag, err := pool.Exec(ctx, string(content))
	if err != nil {
		return errs.Wrap(err, "seed services")
	}
	slog.Info("サービスカタログを投入しました", "inserted", tag.RowsAffected())
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
