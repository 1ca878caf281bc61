package model

import (
	"time"
)

// Task is one generated writing assignment. Teil 1 is a short SMS task,
// Teil 2 a short email task. Rows are immutable after creation and are only
// removed by the history clear, which prunes tasks with no attempts left.
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Teil      int       `json:"teil" gorm:"not null;index"`
	Topic     string    `json:"topic" gorm:"not null"`
	Prompt    string    `json:"prompt" gorm:"type:text;not null"`
	TaskText  string    `json:"taskText" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
