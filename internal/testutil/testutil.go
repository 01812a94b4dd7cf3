// Package testutil provides the PostgreSQL fixture used by repository
// integration tests. Tests skip when no database is reachable, unless
// TEST_DB_REQUIRED is set.
package testutil

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/migrations"
	"github.com/yigit/jobsearch/internal/db"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Cleanup(func())
}

// TestDBConfig holds configuration for test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig reads TEST_DB_* variables with local defaults.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "jobsearch"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "jobsearch"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "jobsearch_test"),
	}
}

func (c TestDBConfig) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		c.User, c.Password, net.JoinHostPort(c.Host, c.Port), c.DBName)
}

// MigrationsDir returns the absolute path of the repository's migrations.
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// SetupTestDB connects to the test database, applies migrations and
// empties every table. The pool is closed when the test ends.
func SetupTestDB(t TestingTB) *db.PostgresDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, DefaultTestDBConfig().dsn())
	if err == nil {
		err = pool.Ping(ctx)
	}
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		if requireDB() {
			t.Fatal("Test database not available:", err)
		}
		t.Skip("Test database not available:", err)
	}

	if _, err := migrations.NewMigrator(pool, zerolog.Nop()).MigrateFromDirectory(ctx, MigrationsDir()); err != nil {
		pool.Close()
		t.Fatal("Failed to run migrations:", err)
	}

	database := &db.PostgresDB{Pool: pool}
	CleanupTestDB(t, database)
	t.Cleanup(database.Close)
	return database
}

// CleanupTestDB removes all rows, resetting identity sequences.
func CleanupTestDB(t TestingTB, database *db.PostgresDB) {
	t.Helper()
	_, err := database.Pool.Exec(context.Background(), `
		TRUNCATE job_locations, jobs, locations, organizations, degrees, spotlights,
			api_tokens, refresh_tokens, users RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("Failed to clean up test database: %v", err)
	}
}

func requireDB() bool {
	v, err := strconv.ParseBool(os.Getenv("TEST_DB_REQUIRED"))
	return err == nil && v
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
