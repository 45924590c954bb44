package model

// AssignPluginConfig 作业提交插件的键值配置行，归宿主LMS所有，本服务只读
type AssignPluginConfig struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AssignmentID uint   `gorm:"column:assignment;index" json:"assignmentId"`
	Plugin       string `gorm:"size:28" json:"plugin"`
	Subtype      string `gorm:"size:28" json:"subtype"`
	Name         string `gorm:"size:28" json:"name"`
	Value        string `gorm:"type:text" json:"value"`
}

func (AssignPluginConfig) TableName() string {
	return "assign_plugin_config"
}

// 在线文本提交插件使用的配置键
const (
	PluginOnlineText        = "onlinetext"
	SubtypeAssignSubmission = "assignsubmission"

	ConfigWordLimitEnabled = "wordlimitenabled"
	ConfigWordLimit        = "wordlimit"
)
