package repository

import (
	"errors"
	"fmt"
	"wordlimit_backend/internal/model"
	"wordlimit_backend/internal/util"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

// FindByIDAndUser 查找当前用户的答题记录，不存在时返回 util.ErrAttemptNotFound
func (r *QuizAttemptRepository) FindByIDAndUser(attemptID, userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("id = ? AND userid = ?", attemptID, userID).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id=%d user=%d", util.ErrAttemptNotFound, attemptID, userID)
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// QuestionAttemptsBySlots 按题目使用ID和题槽集合查找单题作答记录
func (r *QuizAttemptRepository) QuestionAttemptsBySlots(usageID uint, slots []int) ([]model.QuestionAttempt, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	var attempts []model.QuestionAttempt
	err := r.DB.
		Where("questionusageid = ? AND slot IN ?", usageID, slots).
		Find(&attempts).Error
	return attempts, err
}

// EssayOptionsByQuestionIDs 批量读取论述题配置，未配置的题目不会出现在结果中
func (r *QuizAttemptRepository) EssayOptionsByQuestionIDs(questionIDs []uint) ([]model.QuestionEssayOptions, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var options []model.QuestionEssayOptions
	err := r.DB.Where("questionid IN ?", questionIDs).Find(&options).Error
	return options, err
}
