package model

import "strconv"

// PageContext 当前渲染页面的只读描述，由宿主框架每次请求注入
type PageContext struct {
	Path       string            // 路由路径，如 /mod/assign/view.php
	PageType   string            // 页面类型标识，如 mod-quiz-attempt
	Params     map[string]string // 命名查询参数（action、page、attempt 等）
	InstanceID uint              // 当前内容项（课程模块实例）ID
	UserID     uint              // 已认证用户ID
}

// Param 读取命名参数，不存在时返回空字符串
func (c PageContext) Param(name string) string {
	if c.Params == nil {
		return ""
	}
	return c.Params[name]
}

// IntParam 读取整数参数，缺失或非法时返回默认值
func (c PageContext) IntParam(name string, def int) int {
	v := c.Param(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
