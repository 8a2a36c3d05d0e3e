// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/bloglist/internal/db"
	"github.com/templui/bloglist/internal/model"
	"github.com/templui/bloglist/internal/seed"
)

// InitialBlogs mirrors the seed data the API is exercised against.
func InitialBlogs() []*model.Blog {
	return seed.Blogs()
}

// SQLiteConnection returns a connection string for a fresh database file
// under the test's temp dir.
func SQLiteConnection(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bloglist.db") + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// NewDB opens and migrates a fresh SQLite database closed at test cleanup.
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", SQLiteConnection(t))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(context.Background(), database.DB, "sqlite"))
	return database
}

// SeedBlogs replaces the contents of the blogs table with InitialBlogs.
func SeedBlogs(t testing.TB, database *sqlx.DB) []*model.Blog {
	t.Helper()

	blogs, err := seed.Reset(context.Background(), database)
	require.NoError(t, err)
	return blogs
}
