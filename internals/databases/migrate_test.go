package database_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "liferiver_backend/internals/databases"
)

// Skema harus bisa dimigrasi di SQLite juga (dipakai seluruh test fixture),
// jadi tag model tidak boleh membawa ekspresi DDL khusus Postgres.
func TestMigrateOnSQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	for _, table := range []string{
		"sites",
		"users",
		"events",
		"event_registrations",
		"prayers",
		"care_subjects",
		"care_logs",
		"weekly_verses",
		"sunday_messages",
		"life_bulletins",
		"dashboard_summaries",
	} {
		assert.Truef(t, db.Migrator().HasTable(table), "tabel %s belum terbentuk", table)
	}
}
