// Command migrate applies the SQL files under migrations/ with the atlas CLI.
//
//	go run ./cmd/migrate          # apply pending migrations
//	go run ./cmd/migrate status   # show the current revision
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}
	if err := run(ctx, client, cmd, cfg.DB.BuildDSN(), *dir, logger); err != nil {
		logger.Error("マイグレーションに失敗しました", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *atlasexec.Client, cmd, url, dir string, logger *slog.Logger) error {
	switch cmd {
	case "up":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url, DirURL: dir})
		if err != nil {
			return errs.Wrap(err, "migrate apply")
		}
		logger.Info("マイグレーション実行完了",
			"applied", len(res.Applied), "current", res.Current, "target", res.Target)
		return nil
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url, DirURL: dir})
		if err != nil {
			return errs.Wrap(err, "migrate status")
		}
		logger.Info("マイグレーション状態",
			"status", res.Status, "current", res.Current, "pending", len(res.Pending))
		return nil
	default:
		return errs.Newf("unknown command %q", cmd)
	}
}
