package controller

import (
	"errors"
	"wordlimit_backend/internal/model"
	"wordlimit_backend/internal/service"
	"wordlimit_backend/internal/util"
	"wordlimit_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type WordLimitController struct {
	Service *service.WordLimitService
}

func NewWordLimitController(svc *service.WordLimitService) *WordLimitController {
	return &WordLimitController{Service: svc}
}

var kindLabels = map[model.WordLimitKind]string{
	model.KindNotApplicable:  "not_applicable",
	model.KindSingleLimit:    "single",
	model.KindMultipleLimits: "multiple",
}

// @Summary 解析当前页面的字数限制
// @Description 根据页面路由上下文返回编辑器字数统计插件应执行的限制
// @Tags 字数限制
// @Produce json
// @Security ApiKeyAuth
// @Param path query string true "页面路由路径"
// @Param pagetype query string false "页面类型标识"
// @Param instance query int true "课程模块实例ID"
// @Param action query string false "页面动作参数"
// @Param page query int false "测验页码，默认0"
// @Param attempt query int false "答题记录ID"
// @Success 200 {object} util.Response
// @Router /api/wordlimit [get]
func (c *WordLimitController) Resolve(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if ctx.Query("path") == "" {
		util.BadRequest(ctx, "path is required")
		return
	}

	pageCtx := model.PageContext{
		Path:     ctx.Query("path"),
		PageType: ctx.Query("pagetype"),
		Params: map[string]string{
			"action":  ctx.Query("action"),
			"page":    ctx.Query("page"),
			"attempt": ctx.Query("attempt"),
		},
		InstanceID: util.MustParseUint(ctx.Query("instance")),
		UserID:     claims.UserID,
	}

	result, err := c.Service.Resolve(pageCtx)
	if err != nil {
		if errors.Is(err, util.ErrConfigMissing) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.ResolveCounter.WithLabelValues(kindLabels[result.Kind]).Inc()
	util.Success(ctx, result)
}
