package controller

import (
	"net/http"
	"wordlimit_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 存活检查
// @Description 检查进程是否存活，不触达依赖
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
	})
}

// @Summary 就绪检查
// @Description 检查数据库连接是否可用
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /ready [get]
func (c *HealthController) Readiness(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ready",
		"components": gin.H{
			"database": "up",
		},
	})
}
