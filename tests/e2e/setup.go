//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"carseat-rental/cmd/bootstrap"
	"carseat-rental/cmd/bootstrap/components"
	"carseat-rental/internal/infra/db"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite gives each e2e suite its own database and Redis DB on the shared containers,
// plus a router wired exactly like the server (minus the cron jobs).
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Booking.Submitter = config.SubmitterPostgres
	cfg.DB = createDatabase(t, postgresContainer.Endpoint(t))
	cfg.Redis = config.RedisConfig{
		Addr: redisContainer.Endpoint(t).Addr(),
		DB:   nextRedisDB(),
	}
	require.NoError(t, applyMigrations(t.Context(), cfg.DB), "データベースマイグレーションに失敗")

	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	rdb, closeRedis, err := db.ConnectRedis(context.Background(), cfg.Redis)
	require.NoError(t, err, "Redis接続に失敗")
	t.Cleanup(func() {
		_ = rdb.FlushDB(context.Background()).Err()
		closeRedis()
	})

	s.DB, s.Redis, s.Config = pool, rdb, cfg
	s.Router = startApp(t, cfg, pool, rdb)
	slog.Info("E2E環境の準備が完了しました", "database", cfg.DB.DBName, "redis_db", cfg.Redis.DB)
}

// SetupSubTest gives every s.Run case empty tables, sessions and drafts.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースの初期化に失敗")
	require.NoError(s.T(), s.Redis.FlushDB(s.T().Context()).Err(), "Redisの初期化に失敗")
}

func startApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool, rdb *redis.Client) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool, rdb),
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			bootstrap.NewDBTX,
			db.NewTxRunner,
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err)
		}
	})
	return router
}

// createDatabase makes a throwaway database so parallel test binaries never share rows.
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()

	name := "rideshare_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 起動直後はCREATE DATABASEが競合で失敗することがある
	for attempt := 1; ; attempt++ {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		admin, err := pgxpool.New(dropCtx, adminDSN(pg))
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// applyMigrations runs migrations/*.sql in name order, the same files atlas applies in production.
func applyMigrations(ctx context.Context, dbCfg config.DBConfig) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found under %s", root)
	}
	sort.Strings(files)

	pool, closePool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer closePool()

	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// moduleRoot walks up from the package directory `go test` runs in until it finds go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}

var redisDBCounter atomic.Int32

// nextRedisDB spreads suites of one test binary over Redis' 16 logical databases.
func nextRedisDB() int {
	return int(redisDBCounter.Add(1) % 16)
}
