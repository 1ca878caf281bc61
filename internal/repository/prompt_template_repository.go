package repository

import (
	"github.com/a2lab/schreibtrainer/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromptTemplateRepository interface {
	Upsert(name, content string) error
}

type promptTemplateRepository struct {
	db *gorm.DB
}

func NewPromptTemplateRepository(db *gorm.DB) PromptTemplateRepository {
	return &promptTemplateRepository{db: db}
}

func (r *promptTemplateRepository) Upsert(name, content string) error {
	tpl := model.PromptTemplate{Name: name, Content: content}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&tpl).Error
}
