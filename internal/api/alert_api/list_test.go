package alert_api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func querySource(t *testing.T, cr ListRequest) string {
	src, err := buildListQuery(cr).Source()
	require.NoError(t, err)
	raw, err := json.Marshal(src)
	require.NoError(t, err)
	return string(raw)
}

func TestBuildListQuerySearchCoversSourceIp(t *testing.T) {
	// 搜索词为合法IP时，消息/规则名之外还匹配源IP
	raw := querySource(t, ListRequest{Search: "203.0.113.45"})
	assert.Contains(t, raw, `"multi_match"`)
	assert.Contains(t, raw, `"rule.name"`)
	assert.Contains(t, raw, `"sourceIp":"203.0.113.45"`)
}

func TestBuildListQuerySearchTextOnly(t *testing.T) {
	// 非IP搜索词不得查询ip类型字段，否则ES报解析错误
	raw := querySource(t, ListRequest{Search: "brute force"})
	assert.Contains(t, raw, `"multi_match"`)
	assert.Contains(t, raw, `"message"`)
	assert.NotContains(t, raw, `"sourceIp"`)
}

func TestBuildListQueryFilters(t *testing.T) {
	raw := querySource(t, ListRequest{Severity: "critical", Status: "new"})
	assert.Contains(t, raw, `"severity":"critical"`)
	assert.Contains(t, raw, `"status":"new"`)
}

func TestBuildListQueryDateRange(t *testing.T) {
	raw := querySource(t, ListRequest{StartDate: "2026-08-01", EndDate: "2026-08-28"})
	assert.Contains(t, raw, `"timestamp"`)
	assert.Contains(t, raw, `"from":"2026-08-01 00:00:00"`)
	assert.Contains(t, raw, `"to":"2026-08-28 00:00:00"`)
}
