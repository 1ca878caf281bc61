package model

import (
	"time"
)

// Attempt is one user submission for a task plus its evaluation result.
// Evaluation and Scores hold serialized JSON and are parsed back into
// structured form on read. Created exactly once per evaluation call, never
// mutated, deleted only via the bulk history clear.
type Attempt struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	TaskID     uint      `json:"taskId" gorm:"not null;index"`
	Task       Task      `json:"task" gorm:"foreignKey:TaskID"`
	UserAnswer string    `json:"userAnswer" gorm:"type:text;not null"`
	Evaluation string    `json:"-" gorm:"type:text"`
	Scores     string    `json:"-" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}
