package repo

import (
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/kandmgawron/SpellTales/internal/model"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Story{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	// общий in-memory файл переживает тесты — чистим таблицы
	db.Exec("DELETE FROM stories")
	db.Exec("DELETE FROM users")
	return db
}
