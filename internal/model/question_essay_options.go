package model

// QuestionEssayOptions 论述题的每题配置，MaxWordLimit 为空表示未配置字数上限
type QuestionEssayOptions struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	QuestionID   uint `gorm:"column:questionid;uniqueIndex" json:"questionId"`
	MaxWordLimit *int `gorm:"column:maxwordlimit" json:"maxWordLimit"`
	MinWordLimit *int `gorm:"column:minwordlimit" json:"minWordLimit"`
}

func (QuestionEssayOptions) TableName() string {
	return "question_essay_options"
}
