package repository

import (
	"wordlimit_backend/internal/model"

	"gorm.io/gorm"
)

type QuizSlotRepository struct {
	DB *gorm.DB
}

func NewQuizSlotRepository(db *gorm.DB) *QuizSlotRepository {
	return &QuizSlotRepository{DB: db}
}

// EssayLimitsByQuizPage 题槽迁移后的直接联结：按测验ID和页码取论述题字数上限，
// 按题槽升序排列，未配置上限的题槽直接省略
func (r *QuizSlotRepository) EssayLimitsByQuizPage(quizID uint, page int) ([]int, error) {
	var limits []int
	err := r.DB.Model(&model.QuestionEssayOptions{}).
		Joins("JOIN quiz_slots ON quiz_slots.questionid = question_essay_options.questionid").
		Where("quiz_slots.quizid = ? AND quiz_slots.page = ? AND question_essay_options.maxwordlimit IS NOT NULL", quizID, page).
		Order("quiz_slots.slot ASC").
		Pluck("question_essay_options.maxwordlimit", &limits).Error
	return limits, err
}
