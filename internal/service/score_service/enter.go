package score_service

// File: internal/service/score_service/enter.go
// Description: 安全评分服务模块，根据告警与漏洞统计计算平台整体安全评分、
// 健康状态及处置建议，并提供ML威胁评分到威胁分类的映射

import "math"

// 健康状态常量，按评分阈值划分
const (
	StatusGood       = "good"       // 评分 >= 80
	StatusModerate   = "moderate"   // 评分 >= 60
	StatusConcerning = "concerning" // 评分 >= 40
	StatusCritical   = "critical"   // 其余
)

// Factors 安全评分输入因子
type Factors struct {
	CriticalAlerts   int64 `json:"criticalAlerts"`   // 未关闭的critical级告警数
	HighAlerts       int64 `json:"highAlerts"`       // 未关闭的high级告警数
	CriticalVulns    int64 `json:"criticalVulns"`    // 未修复的critical级漏洞数
	HighVulns        int64 `json:"highVulns"`        // 未修复的high级漏洞数
	UnresolvedAlerts int64 `json:"unresolvedAlerts"` // 未解决告警总数
}

// Result 安全评分计算结果
type Result struct {
	Score    int     `json:"score"`    // 四舍五入后的整数评分 0-100
	RawScore float64 `json:"rawScore"` // 扣分后的原始评分
	Status   string  `json:"status"`   // 健康状态 good moderate concerning critical
	Factors  Factors `json:"factors"`  // 参与计算的输入因子
}

// Compute 计算安全评分
// 基准分100，按因子权重扣分：critical告警15分/个，high告警5分/个，
// critical漏洞10分/个，high漏洞3分/个，未解决告警0.5分/个（封顶20分），最终裁剪到[0,100]
func Compute(f Factors) Result {
	score := 100.0
	score -= float64(f.CriticalAlerts) * 15
	score -= float64(f.HighAlerts) * 5
	score -= float64(f.CriticalVulns) * 10
	score -= float64(f.HighVulns) * 3
	score -= math.Min(20, float64(f.UnresolvedAlerts)*0.5)

	// 裁剪到有效区间
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:    int(math.Round(score)),
		RawScore: score,
		Status:   Status(score),
		Factors:  f,
	}
}

// Status 根据评分返回健康状态
func Status(score float64) string {
	switch {
	case score >= 80:
		return StatusGood
	case score >= 60:
		return StatusModerate
	case score >= 40:
		return StatusConcerning
	default:
		return StatusCritical
	}
}

// Classify 将ML威胁评分映射为威胁分类
func Classify(threatScore float64) string {
	switch {
	case threatScore >= 80:
		return "attack"
	case threatScore >= 60:
		return "high_risk"
	case threatScore >= 40:
		return "suspicious"
	default:
		return "normal"
	}
}

// Recommendations 根据评分因子生成处置建议，顺序固定
func Recommendations(f Factors, score float64) []string {
	var recs []string
	if f.CriticalAlerts > 0 {
		recs = append(recs, "立即处置critical级安全告警")
	}
	if f.CriticalVulns > 0 {
		recs = append(recs, "优先修复critical级漏洞")
	}
	if f.HighAlerts > 5 {
		recs = append(recs, "high级告警数量偏高，建议排查告警来源")
	}
	if f.HighVulns > 10 {
		recs = append(recs, "high级漏洞积压，建议安排修复窗口")
	}
	if score < 60 {
		recs = append(recs, "安全评分偏低，建议开展整体安全复盘")
	}
	if len(recs) == 0 {
		recs = append(recs, "安全态势良好，保持当前监控策略")
	}
	return recs
}
