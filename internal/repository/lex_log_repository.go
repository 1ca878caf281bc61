package repository

import (
	"github.com/a2lab/schreibtrainer/internal/model"
	"gorm.io/gorm"
)

type LexLogRepository interface {
	Create(entry *model.LexLog) error
	// Find lists logs newest-first. mode filters exactly ("" or "all" means
	// no filter); q substring-matches the input text and serialized result.
	Find(mode, q string, limit int) ([]model.LexLog, error)
	// DeleteByMode removes logs for one mode ("" or "all" clears everything)
	// and reports how many rows went away.
	DeleteByMode(mode string) (int64, error)
}

type lexLogRepository struct {
	db *gorm.DB
}

func NewLexLogRepository(db *gorm.DB) LexLogRepository {
	return &lexLogRepository{db: db}
}

func (r *lexLogRepository) Create(entry *model.LexLog) error {
	return r.db.Create(entry).Error
}

func (r *lexLogRepository) Find(mode, q string, limit int) ([]model.LexLog, error) {
	var items []model.LexLog
	query := r.db.Model(&model.LexLog{})
	if mode != "" && mode != "all" {
		query = query.Where("mode = ?", mode)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("text LIKE ? OR result LIKE ?", like, like)
	}
	if err := query.Order("created_at desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lexLogRepository) DeleteByMode(mode string) (int64, error) {
	query := r.db.Where("1 = 1")
	if mode != "" && mode != "all" {
		query = r.db.Where("mode = ?", mode)
	}
	res := query.Delete(&model.LexLog{})
	return res.RowsAffected, res.Error
}
