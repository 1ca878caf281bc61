package model

import (
	"time"
)

// PromptTemplate stores the base examiner templates so operators can inspect
// what the composers build on. Seeded at startup, upserted by name.
type PromptTemplate struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
