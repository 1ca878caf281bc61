package model

import (
	"time"
)

// LexLog records one dictionary/grammar lookup: the mode used, the input
// text, the serialized result payload and the model that produced it.
type LexLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Mode      string    `json:"mode" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Result    string    `json:"result" gorm:"type:text;not null"`
	Model     string    `json:"model" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
