package model

// QuizAttempt 测验答题记录，归宿主LMS所有，本服务只读
//
// Layout 是逗号分隔的题槽序列，0 表示分页边界，例如 "1,2,0,3" 表示
// 第0页两题、第1页一题。UniqueID 关联同一次答题的全部 question_attempts。
type QuizAttempt struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	QuizID   uint   `gorm:"column:quiz;index" json:"quizId"`
	UserID   uint   `gorm:"column:userid;index" json:"userId"`
	Attempt  int    `gorm:"column:attempt" json:"attempt"`
	UniqueID uint   `gorm:"column:uniqueid;index" json:"uniqueId"`
	Layout   string `gorm:"type:text" json:"layout"`
	State    string `gorm:"size:16" json:"state"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
