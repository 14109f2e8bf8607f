package metric_api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighPriorityQuery(t *testing.T) {
	since := time.Date(2026, 8, 28, 10, 30, 0, 0, time.Local)
	src, err := highPriorityQuery(since).Source()
	require.NoError(t, err)
	raw, err := json.Marshal(src)
	require.NoError(t, err)

	// 时间窗口下限与级别过滤必须同时生效
	assert.Contains(t, string(raw), `"from":"2026-08-28 10:30:00"`)
	assert.Contains(t, string(raw), `"severity":["critical","high"]`)
}

func TestLastMinuteQuery(t *testing.T) {
	since := time.Date(2026, 8, 28, 10, 30, 0, 0, time.Local)
	src, err := lastMinuteQuery(since).Source()
	require.NoError(t, err)
	raw, err := json.Marshal(src)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"timestamp"`)
	assert.Contains(t, string(raw), `"from":"2026-08-28 10:30:00"`)
}
