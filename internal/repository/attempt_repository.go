package repository

import (
	"github.com/a2lab/schreibtrainer/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	// FindAllWithTasks lists attempts newest-first with their owning task
	// preloaded, optionally filtered by the task's Teil, capped at limit.
	FindAllWithTasks(teil *int, limit int) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindAllWithTasks(teil *int, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	query := r.db.Preload("Task")
	if teil != nil {
		query = query.
			Joins("JOIN tasks ON tasks.id = attempts.task_id").
			Where("tasks.teil = ?", *teil)
	}
	err := query.Order("attempts.created_at desc").Limit(limit).Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
