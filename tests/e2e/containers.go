//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "rideshare"
	pgPassword = "rideshare-e2e"
)

// endpoint is a container port as seen from the test process.
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string { return e.Host + ":" + e.Port.Port() }

// sharedContainer starts one container per test binary and hands out its mapped port.
type sharedContainer struct {
	once     sync.Once
	name     string
	port     nat.Port
	startup  time.Duration
	request  func() testcontainers.ContainerRequest
	instance testcontainers.Container
	err      error
}

var (
	postgresContainer = &sharedContainer{
		name:    "PostgreSQL",
		port:    "5432/tcp",
		startup: 3 * time.Minute,
		request: func() testcontainers.ContainerRequest {
			return testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// データはRAM上に置き、耐久性の設定はすべて切る
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(endpoint{Host: host, Port: port})
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "rideshare-e2e"},
			}
		},
	}

	redisContainer = &sharedContainer{
		name:    "Redis",
		port:    "6379/tcp",
		startup: 2 * time.Minute,
		request: func() testcontainers.ContainerRequest {
			return testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
				Labels:       map[string]string{"purpose": "rideshare-e2e"},
			}
		},
	}
)

// Endpoint starts the container on first use. Ryuk removes it when the test binary exits.
func (c *sharedContainer) Endpoint(t *testing.T) endpoint {
	t.Helper()

	c.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.startup)
		defer cancel()
		c.instance, c.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: c.request(),
			Started:          true,
		})
		if c.err == nil {
			slog.Info(c.name+"コンテナを起動しました", "image", c.request().Image)
		}
	})
	require.NoError(t, c.err, "%sコンテナの起動に失敗", c.name)

	ctx := context.Background()
	host, err := c.instance.Host(ctx)
	require.NoError(t, err, "%sコンテナのホスト取得に失敗", c.name)
	port, err := c.instance.MappedPort(ctx, c.port)
	require.NoError(t, err, "%sコンテナのポート取得に失敗", c.name)
	return endpoint{Host: host, Port: port}
}

func adminDSN(e endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, e.Addr())
}
