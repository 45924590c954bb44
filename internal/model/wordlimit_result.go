package model

import "encoding/json"

// WordLimitKind 字数限制解析结果的类别
type WordLimitKind int

const (
	// KindNotApplicable 当前页面不涉及字数限制，序列化为标量 0
	KindNotApplicable WordLimitKind = iota
	// KindSingleLimit 单输入框场景（作业在线文本），序列化为单元素数组
	KindSingleLimit
	// KindMultipleLimits 多题场景（测验一页多题），序列化为限制值数组
	KindMultipleLimits
)

// WordLimitResult 解析结果的带标签联合类型
//
// 前端脚本依赖四种线格式的区分：标量 0（页面不适用）、[null]（单框无限制）、
// [n]（单框限制 n）、[]/[n...]（多题，按题槽升序，每题一个限制）。
type WordLimitResult struct {
	Kind   WordLimitKind
	Single *int  // Kind == KindSingleLimit 时有效，nil 表示未启用限制
	Limits []int // Kind == KindMultipleLimits 时有效
}

// NotApplicable 页面不适用
func NotApplicable() WordLimitResult {
	return WordLimitResult{Kind: KindNotApplicable}
}

// SingleLimit 单输入框结果，limit 为 nil 表示无限制
func SingleLimit(limit *int) WordLimitResult {
	return WordLimitResult{Kind: KindSingleLimit, Single: limit}
}

// MultipleLimits 多题结果，已按题槽升序排列
func MultipleLimits(limits []int) WordLimitResult {
	return WordLimitResult{Kind: KindMultipleLimits, Limits: limits}
}

func (r WordLimitResult) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindSingleLimit:
		return json.Marshal([]*int{r.Single})
	case KindMultipleLimits:
		limits := r.Limits
		if limits == nil {
			limits = []int{}
		}
		return json.Marshal(limits)
	default:
		return json.Marshal(0)
	}
}
