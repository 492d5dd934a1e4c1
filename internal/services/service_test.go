package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database per test. Each one gets its
// own shared-cache name so gorm's connection pool sees a single store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.School{},
		&models.Participant{},
		&models.Question{},
		&models.QuizSubmission{},
		&models.SystemSettings{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
