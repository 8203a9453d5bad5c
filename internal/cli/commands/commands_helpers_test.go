package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kandmgawron/SpellTales/internal/config"
)

// withTempConfig возвращает конфиг с каталогами сессии и БД в temp,
// чтобы артефакты команд не покидали пределы теста.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	_ = os.MkdirAll(db, 0o700)
	sess := filepath.Join(dir, "session")
	_ = os.MkdirAll(sess, 0o700)
	return &config.Config{
		ClientDBPath:  db,
		SessionDir:    sess,
		RateLimitMax:  5,
		RateWindowSec: 60,
		GenTimeoutSec: 30,
	}
}

// captureOut подменяет Out на буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}
