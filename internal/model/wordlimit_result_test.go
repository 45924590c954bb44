package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 前端脚本依赖的四种线格式：标量0、[null]、[n]、[]/[n...]
func TestWordLimitResultMarshal(t *testing.T) {
	limit := 250

	tests := []struct {
		name   string
		result WordLimitResult
		want   string
	}{
		{"not applicable", NotApplicable(), "0"},
		{"single without limit", SingleLimit(nil), "[null]"},
		{"single with limit", SingleLimit(&limit), "[250]"},
		{"multiple empty", MultipleLimits(nil), "[]"},
		{"multiple", MultipleLimits([]int{100, 300}), "[100,300]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(raw))
		})
	}
}

func TestPageContextParams(t *testing.T) {
	ctx := PageContext{Params: map[string]string{"page": "2", "attempt": "x"}}

	assert.Equal(t, 2, ctx.IntParam("page", 0))
	assert.Equal(t, 0, ctx.IntParam("attempt", 0))
	assert.Equal(t, 5, ctx.IntParam("missing", 5))

	var empty PageContext
	assert.Equal(t, "", empty.Param("page"))
	assert.Equal(t, 0, empty.IntParam("page", 0))
}
