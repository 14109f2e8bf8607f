package score_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		factors    Factors
		wantScore  int
		wantStatus string
	}{
		{
			name:       "无告警无漏洞满分",
			factors:    Factors{},
			wantScore:  100,
			wantStatus: StatusGood,
		},
		{
			name:       "单个critical告警",
			factors:    Factors{CriticalAlerts: 1, UnresolvedAlerts: 1},
			wantScore:  85, // 100 - 15 - 0.5 = 84.5 四舍五入
			wantStatus: StatusGood,
		},
		{
			name:       "组合扣分",
			factors:    Factors{CriticalAlerts: 1, HighAlerts: 2, CriticalVulns: 1, HighVulns: 3, UnresolvedAlerts: 4},
			wantScore:  54, // 100 - 15 - 10 - 10 - 9 - 2
			wantStatus: StatusConcerning,
		},
		{
			name:       "未解决告警扣分封顶20",
			factors:    Factors{UnresolvedAlerts: 100},
			wantScore:  80,
			wantStatus: StatusGood,
		},
		{
			name:       "扣分超额裁剪到0",
			factors:    Factors{CriticalAlerts: 10},
			wantScore:  0,
			wantStatus: StatusCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(tt.factors)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.factors, result.Factors)
			assert.GreaterOrEqual(t, result.RawScore, 0.0)
			assert.LessOrEqual(t, result.RawScore, 100.0)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusGood, Status(100))
	assert.Equal(t, StatusGood, Status(80))
	assert.Equal(t, StatusModerate, Status(79))
	assert.Equal(t, StatusModerate, Status(60))
	assert.Equal(t, StatusConcerning, Status(59))
	assert.Equal(t, StatusConcerning, Status(40))
	assert.Equal(t, StatusCritical, Status(39))
	assert.Equal(t, StatusCritical, Status(0))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "attack", Classify(100))
	assert.Equal(t, "attack", Classify(80))
	assert.Equal(t, "high_risk", Classify(79.9))
	assert.Equal(t, "high_risk", Classify(60))
	assert.Equal(t, "suspicious", Classify(59.9))
	assert.Equal(t, "suspicious", Classify(40))
	assert.Equal(t, "normal", Classify(39.9))
	assert.Equal(t, "normal", Classify(0))
}

func TestRecommendations(t *testing.T) {
	t.Run("无问题返回保持建议", func(t *testing.T) {
		recs := Recommendations(Factors{}, 100)
		assert.Equal(t, []string{"安全态势良好，保持当前监控策略"}, recs)
	})

	t.Run("建议顺序固定", func(t *testing.T) {
		f := Factors{CriticalAlerts: 2, HighAlerts: 6, CriticalVulns: 1, HighVulns: 11}
		recs := Recommendations(f, 30)
		assert.Equal(t, []string{
			"立即处置critical级安全告警",
			"优先修复critical级漏洞",
			"high级告警数量偏高，建议排查告警来源",
			"high级漏洞积压，建议安排修复窗口",
			"安全评分偏低，建议开展整体安全复盘",
		}, recs)
	})

	t.Run("阈值边界不触发", func(t *testing.T) {
		f := Factors{HighAlerts: 5, HighVulns: 10}
		recs := Recommendations(f, 60)
		assert.Equal(t, []string{"安全态势良好，保持当前监控策略"}, recs)
	})
}
