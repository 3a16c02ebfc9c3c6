// Package dbtest opens throwaway in-memory databases migrated with the
// production schema.
package dbtest

import (
	"testing"

	migration "recipe-catalog/cmd/database/migrate"
	"recipe-catalog/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dsn = "file::memory:?_pragma=foreign_keys(1)"

// Open returns a migrated SQLite database with foreign keys enforced. The
// pool is pinned to one connection since every in-memory connection is a
// separate database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func SeedImage(t testing.TB, db *gorm.DB) uuid.UUID {
	t.Helper()

	name := "cover.png"
	img := entities.Image{Path: "images/" + uuid.NewString(), OriginalFilename: &name}
	require.NoError(t, db.Create(&img).Error)
	return img.ID
}

func SeedUser(t testing.TB, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := entities.User{Email: uuid.NewString() + "@example.com", HashedPassword: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}
