package postgres_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/trippulse/trippulse-api/migrations"
	"github.com/trippulse/trippulse-api/test/testutil"
)

// TestMain applies the migrations once per test binary. Without TEST_DATABASE_URL
// every test in the package skips itself through testutil.
func TestMain(m *testing.M) {
	dsn := os.Getenv(testutil.DatabaseURLEnv)
	if dsn == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(dsn)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
