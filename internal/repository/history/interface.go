package history

import "gorm.io/gorm"

// Record is the persisted form of a history entry. The analysis result
// is stored serialized; it is never queried by field.
type Record struct {
	ID        uint   `gorm:"primarykey"`
	EntryID   string `gorm:"size:64;not null;index"`
	SessionID string `gorm:"size:64;not null;index"`
	Symptoms  string `gorm:"not null"`
	Age       string
	Gender    string
	Duration  string
	Language  string `gorm:"size:8;not null"`
	Result    string `gorm:"not null"` // JSON-encoded AnalysisResult
	CreatedAt int64  `gorm:"not null"` // unix nanoseconds, append order
}

// Migrate creates the history table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}
