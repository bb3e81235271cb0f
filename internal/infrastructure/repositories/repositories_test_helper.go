package repositories

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database. Each test gets its
// own schema so table state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		subject_id TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		password_hash TEXT,
		farm_name TEXT,
		farm_size TEXT,
		photo_url TEXT,
		onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`)

	mustExec(t, db, `CREATE TABLE farmer_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		first_name TEXT,
		last_name TEXT,
		email TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`)

	mustExec(t, db, `CREATE TABLE farm_infos (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		crop_type TEXT,
		land_area TEXT,
		season TEXT,
		location TEXT,
		farming_type TEXT,
		soil_type TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`)

	return db
}

func mustExec(t *testing.T, db *gorm.DB, sql string) {
	t.Helper()
	if err := db.Exec(sql).Error; err != nil {
		t.Fatalf("exec %q: %v", sql, err)
	}
}
