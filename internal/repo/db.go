package repo

import (
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/kandmgawron/SpellTales/internal/model"
)

// InitDB открывает БД по DSN и выполняет миграции.
// postgres:// — боевой вариант; всё остальное трактуется как путь к SQLite,
// пустой DSN — in-memory (удобно для локального запуска dev-сервера).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dial = gormpostgres.Open(dsn)
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Story{}); err != nil {
		return nil, err
	}
	return db, nil
}
