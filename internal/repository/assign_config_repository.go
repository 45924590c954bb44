package repository

import (
	"errors"
	"fmt"
	"wordlimit_backend/internal/model"
	"wordlimit_backend/internal/util"

	"gorm.io/gorm"
)

type AssignConfigRepository struct {
	DB *gorm.DB
}

func NewAssignConfigRepository(db *gorm.DB) *AssignConfigRepository {
	return &AssignConfigRepository{DB: db}
}

// GetValue 按 (作业实例ID, 子类型, 插件, 键名) 读取插件配置值。
// 记录不存在是硬错误（ErrConfigMissing）：配置行由宿主的设置表单成对写入，
// 缺行说明数据损坏，不能静默降级为默认值。
func (r *AssignConfigRepository) GetValue(assignmentID uint, subtype, plugin, name string) (string, error) {
	var row model.AssignPluginConfig
	err := r.DB.
		Where("assignment = ? AND subtype = ? AND plugin = ? AND name = ?", assignmentID, subtype, plugin, name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: assignment=%d name=%s", util.ErrConfigMissing, assignmentID, name)
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}
