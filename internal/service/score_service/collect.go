package score_service

// File: internal/service/score_service/collect.go
// Description: 安全评分因子采集模块，从ES告警索引与漏洞库统计评分输入因子，
// 并维护Redis中的评分快照供看板读取

import (
	"context"
	"encoding/json"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/models"
	"time"

	"github.com/olivere/elastic/v7"
)

// snapshotKey 评分快照的Redis Key
const snapshotKey = "security_score_snapshot"

// Snapshot 评分快照结构，含计算结果与处置建议
type Snapshot struct {
	Result
	Recommendations []string `json:"recommendations"` // 处置建议
	ComputedAt      string   `json:"computedAt"`      // 计算时间
}

// openAlertQuery 构建未关闭告警的基础查询（排除已解决与误报）
func openAlertQuery() *elastic.BoolQuery {
	return elastic.NewBoolQuery().MustNot(
		elastic.NewTermsQuery("status", es_models.AlertStatusResolved, es_models.AlertStatusFalsePositive),
	)
}

// countAlerts 统计指定严重级别的未关闭告警数，severity为空时统计全部
func countAlerts(ctx context.Context, severity string) (int64, error) {
	query := openAlertQuery()
	if severity != "" {
		query.Must(elastic.NewTermQuery("severity", severity))
	}
	return global.ES.Count(es_models.AlertModel{}.Index()).Query(query).Do(ctx)
}

// countVulns 统计指定严重级别的未修复漏洞数
func countVulns(severity string) (count int64, err error) {
	err = global.DB.Model(&models.VulnerabilityModel{}).
		Where("severity = ? AND status IN ?", severity, []string{"open", "in_progress"}).
		Count(&count).Error
	return
}

// CollectFactors 采集评分输入因子
func CollectFactors(ctx context.Context) (f Factors, err error) {
	f.CriticalAlerts, err = countAlerts(ctx, "critical")
	if err != nil {
		return
	}
	f.HighAlerts, err = countAlerts(ctx, "high")
	if err != nil {
		return
	}
	f.UnresolvedAlerts, err = countAlerts(ctx, "")
	if err != nil {
		return
	}
	f.CriticalVulns, err = countVulns("critical")
	if err != nil {
		return
	}
	f.HighVulns, err = countVulns("high")
	return
}

// ComputeSnapshot 采集因子并生成评分快照
func ComputeSnapshot(ctx context.Context) (Snapshot, error) {
	factors, err := CollectFactors(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	result := Compute(factors)
	return Snapshot{
		Result:          result,
		Recommendations: Recommendations(factors, result.RawScore),
		ComputedAt:      time.Now().Format("2006-01-02 15:04:05"),
	}, nil
}

// SaveSnapshot 将评分快照写入Redis
func SaveSnapshot(ctx context.Context, snapshot Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return global.Redis.Set(ctx, snapshotKey, data, 0).Err()
}

// LoadSnapshot 从Redis读取最近一次评分快照
func LoadSnapshot(ctx context.Context) (snapshot Snapshot, ok bool) {
	raw, err := global.Redis.Get(ctx, snapshotKey).Result()
	if err != nil {
		return snapshot, false
	}
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return snapshot, false
	}
	return snapshot, true
}
