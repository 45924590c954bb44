package model

// QuizSlot 测验题槽定义（题槽迁移后的新表），记录题目在测验中的位置与分页
type QuizSlot struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuizID     uint `gorm:"column:quizid;index" json:"quizId"`
	Slot       int  `gorm:"column:slot" json:"slot"`
	Page       int  `gorm:"column:page" json:"page"`
	QuestionID uint `gorm:"column:questionid;index" json:"questionId"`
}

func (QuizSlot) TableName() string {
	return "quiz_slots"
}
