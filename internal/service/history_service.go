package service

import (
	"encoding/json"
	"fmt"

	"github.com/a2lab/schreibtrainer/internal/dto"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const historyLimit = 200

// HistoryService lists and clears recorded attempts. Clearing removes
// attempts (optionally for one Teil) and then every task of that Teil left
// with zero attempts, in a single transaction.
type HistoryService interface {
	List(teil *int) ([]dto.HistoryItem, error)
	Clear(teil *int) error
}

type historyService struct {
	attemptRepo repository.AttemptRepository
	db          *gorm.DB
}

func NewHistoryService(attemptRepo repository.AttemptRepository, db *gorm.DB) HistoryService {
	return &historyService{attemptRepo: attemptRepo, db: db}
}

// safeParse mirrors the read-side tolerance of the store: serialized
// evaluation rows that no longer parse yield an empty object, never an error.
func safeParse(s string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

func (s *historyService) List(teil *int) ([]dto.HistoryItem, error) {
	attempts, err := s.attemptRepo.FindAllWithTasks(teil, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	items := make([]dto.HistoryItem, 0, len(attempts))
	for _, a := range attempts {
		item := dto.HistoryItem{
			ID:         a.ID,
			TaskID:     a.TaskID,
			UserAnswer: a.UserAnswer,
			Evaluation: safeParse(a.Evaluation),
			Scores:     safeParse(a.Scores),
			CreatedAt:  a.CreatedAt,
		}
		if err := copier.Copy(&item.Task, &a.Task); err != nil {
			log.Warn().Err(err).Uint("attemptId", a.ID).Msg("Failed to map task for history item")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear deletes attempts first, then tasks with no attempts left. Both steps
// run in one transaction so a crash between them cannot strand an attempt
// without its task or leave orphans behind.
func (s *historyService) Clear(teil *int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if teil != nil {
			sub := tx.Model(&model.Task{}).Select("id").Where("teil = ?", *teil)
			if err := tx.Where("task_id IN (?)", sub).Delete(&model.Attempt{}).Error; err != nil {
				return fmt.Errorf("failed to delete attempts for teil %d: %w", *teil, err)
			}
			if err := tx.Where("teil = ?", *teil).
				Where("NOT EXISTS (SELECT 1 FROM attempts WHERE attempts.task_id = tasks.id)").
				Delete(&model.Task{}).Error; err != nil {
				return fmt.Errorf("failed to delete orphaned tasks for teil %d: %w", *teil, err)
			}
			return nil
		}

		if err := tx.Where("1 = 1").Delete(&model.Attempt{}).Error; err != nil {
			return fmt.Errorf("failed to delete attempts: %w", err)
		}
		if err := tx.Where("NOT EXISTS (SELECT 1 FROM attempts WHERE attempts.task_id = tasks.id)").
			Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete orphaned tasks: %w", err)
		}
		return nil
	})
}
