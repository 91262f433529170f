package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// The web UI performs arithmetic on the amounts it receives, so
	// they have to be serialized as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Model is the base model for all other models.
type Model struct {
	ID        uint64         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *Model) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
