// Package dbtest starts throwaway database instances for integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"three-tier-api/internal/config"
	"three-tier-api/internal/database"

	"github.com/docker/go-connections/nat"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDatabase = "appdb"
	testUser     = "testuser"
	testPassword = "testpass"
)

// Engines lists every database engine the service supports, in the order
// integration tests run them.
var Engines = []string{config.DriverMySQL, config.DriverPostgres}

// TestDB is a running database container and the configuration that
// reaches it.
type TestDB struct {
	Container testcontainers.Container
	Config    config.DatabaseConfig
	Connector database.Connector
}

// Setup starts a container for the given engine, skipping the test in -short
// mode or when no container provider is available. The container is
// terminated when the test finishes.
func Setup(t *testing.T, engine string) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	var (
		container testcontainers.Container
		port      nat.Port
		err       error
	)
	switch engine {
	case config.DriverMySQL:
		container, err = tcmysql.Run(ctx,
			"mysql:8.0.36",
			tcmysql.WithDatabase(testDatabase),
			tcmysql.WithUsername(testUser),
			tcmysql.WithPassword(testPassword),
		)
		port = "3306/tcp"
	case config.DriverPostgres:
		container, err = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase(testDatabase),
			postgres.WithUsername(testUser),
			postgres.WithPassword(testPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		port = "5432/tcp"
	default:
		t.Fatalf("unsupported engine %q", engine)
	}
	if err != nil {
		t.Fatalf("failed to start %s container: %v", engine, err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := config.DatabaseConfig{
		Driver:         engine,
		Host:           host,
		Port:           mapped.Int(),
		Username:       testUser,
		Password:       testPassword,
		Name:           testDatabase,
		SSLMode:        "disable",
		ConnectTimeout: 5 * time.Second,
	}

	connector, err := database.NewConnector(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connector: %v", err)
	}

	return &TestDB{
		Container: container,
		Config:    cfg,
		Connector: connector,
	}
}

// Reset drops every application table so the next test starts from an
// uninitialised schema.
func (db *TestDB) Reset(t *testing.T) {
	t.Helper()

	ctx := context.Background()

	conn, err := db.Connector.Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"orders", "products", "users"} {
		if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			t.Fatalf("failed to drop table %s: %v", table, err)
		}
	}
}

// Exec runs a statement against the test database, failing the test on error.
func (db *TestDB) Exec(t *testing.T, query string, args ...interface{}) {
	t.Helper()

	ctx := context.Background()

	conn, err := db.Connector.Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, conn.Rebind(query), args...); err != nil {
		t.Fatalf("failed to exec %q: %v", query, err)
	}
}
