package model

// QuestionAttempt 单题作答记录，按 QuestionUsageID 归属于一次测验答题
type QuestionAttempt struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	QuestionUsageID uint `gorm:"column:questionusageid;index" json:"questionUsageId"`
	Slot            int  `gorm:"column:slot" json:"slot"`
	QuestionID      uint `gorm:"column:questionid;index" json:"questionId"`
}

func (QuestionAttempt) TableName() string {
	return "question_attempts"
}
