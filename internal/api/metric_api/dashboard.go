package metric_api

// File: internal/api/metric_api/dashboard.go
// Description: 看板汇总API接口，聚合告警、漏洞、代理、流水线及评分快照，
// 含级别分布与最近7天趋势，一次请求返回看板首屏所需的全部数据

import (
	"context"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/models"
	"sentinelops/internal/service/redis_service/pipeline_store"
	"sentinelops/internal/service/score_service"
	"sentinelops/internal/service/wazuh_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AlertSummary 告警概览统计
type AlertSummary struct {
	Total      int64            `json:"total"`      // 告警总数
	Last24h    int64            `json:"last24h"`    // 最近24小时新增数
	Unresolved int64            `json:"unresolved"` // 未关闭数
	Critical   int64            `json:"critical"`   // 未关闭critical数
	High       int64            `json:"high"`       // 未关闭high数
	BySeverity map[string]int64 `json:"bySeverity"` // 按严重级别分布
}

// VulnSummary 漏洞概览统计
type VulnSummary struct {
	Total      int64            `json:"total"`      // 漏洞总数
	Last24h    int64            `json:"last24h"`    // 最近24小时新增数
	Open       int64            `json:"open"`       // 未修复数
	Critical   int64            `json:"critical"`   // 未修复critical数
	High       int64            `json:"high"`       // 未修复high数
	BySeverity map[string]int64 `json:"bySeverity"` // 按严重级别分布
}

// DailyCount 单日告警统计
type DailyCount struct {
	Date  string `json:"date"`  // 日期（yyyy-MM-dd）
	Count int64  `json:"count"` // 当日告警数量
}

// DashboardResponse 看板汇总响应结构体
type DashboardResponse struct {
	Alerts         AlertSummary                   `json:"alerts"`         // 告警概览
	Vulns          VulnSummary                    `json:"vulns"`          // 漏洞概览
	AlertTrend     []DailyCount                   `json:"alertTrend"`     // 最近7天告警趋势
	Agents         wazuh_service.StatsSummary     `json:"agents"`         // 代理状态概览
	LatestPipeline *pipeline_store.PipelineResult `json:"latestPipeline"` // 最近一次流水线扫描
	Score          *score_service.Snapshot        `json:"score"`          // 评分快照（无快照时为null）
}

// countAlerts 统计告警数：unresolvedOnly限定未关闭，severity限定级别
func countAlerts(ctx context.Context, unresolvedOnly bool, severity string) int64 {
	query := elastic.NewBoolQuery()
	if unresolvedOnly {
		query.MustNot(elastic.NewTermsQuery("status",
			es_models.AlertStatusResolved, es_models.AlertStatusFalsePositive))
	}
	if severity != "" {
		query.Must(elastic.NewTermQuery("severity", severity))
	}
	count, err := global.ES.Count(es_models.AlertModel{}.Index()).Query(query).Do(ctx)
	if err != nil {
		logrus.Errorf("告警计数查询失败 %s", err)
		return 0
	}
	return count
}

// alertBreakdown 查询告警级别分布及最近7天按天趋势
func alertBreakdown(ctx context.Context) (bySeverity map[string]int64, trend []DailyCount) {
	bySeverity = make(map[string]int64)
	trend = make([]DailyCount, 0, 7)

	now := time.Now()
	startDay := now.AddDate(0, 0, -6).Format(time.DateOnly)
	endDay := now.Format(time.DateOnly)

	// 无数据的日期填充0，强制扩展边界覆盖完整7天
	trendAgg := elastic.NewFilterAggregation().
		Filter(elastic.NewRangeQuery("timestamp").
			Gte(startDay + " 00:00:00").
			Lte(endDay + " 23:59:59")).
		SubAggregation("daily", elastic.NewDateHistogramAggregation().
			Field("timestamp").
			CalendarInterval("day").
			Format("yyyy-MM-dd").
			MinDocCount(0).
			ExtendedBounds(startDay, endDay))

	res, err := global.ES.Search(es_models.AlertModel{}.Index()).
		Aggregation("by_severity", elastic.NewTermsAggregation().Field("severity")).
		Aggregation("trend", trendAgg).
		Size(0).
		Do(ctx)
	if err != nil {
		logrus.Errorf("告警分布查询失败 %s", err)
		return bySeverity, trend
	}

	if agg, ok := res.Aggregations.Terms("by_severity"); ok {
		for _, bucket := range agg.Buckets {
			if key, ok := bucket.Key.(string); ok {
				bySeverity[key] = bucket.DocCount
			}
		}
	}
	if filtered, ok := res.Aggregations.Filter("trend"); ok {
		if agg, ok := filtered.Aggregations.DateHistogram("daily"); ok {
			for _, bucket := range agg.Buckets {
				if bucket.KeyAsString == nil {
					continue
				}
				trend = append(trend, DailyCount{Date: *bucket.KeyAsString, Count: bucket.DocCount})
			}
		}
	}
	return bySeverity, trend
}

// vulnSeverityBreakdown 按严重级别统计漏洞分布
func vulnSeverityBreakdown(db *gorm.DB) map[string]int64 {
	var rows []struct {
		Severity string
		Count    int64
	}
	if err := db.Model(&models.VulnerabilityModel{}).
		Select("severity, count(*) as `count`").
		Group("severity").Scan(&rows).Error; err != nil {
		logrus.Errorf("漏洞分布查询失败 %s", err)
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Severity] = row.Count
	}
	return result
}

// DashboardView 看板汇总接口处理函数
func (MetricApi) DashboardView(c *gin.Context) {
	ctx := context.Background()
	since := time.Now().Add(-24 * time.Hour)

	data := DashboardResponse{
		Alerts: AlertSummary{
			Total:      countAlerts(ctx, false, ""),
			Unresolved: countAlerts(ctx, true, ""),
			Critical:   countAlerts(ctx, true, "critical"),
			High:       countAlerts(ctx, true, "high"),
		},
		Agents: wazuh_service.Stats(),
	}
	data.Alerts.BySeverity, data.AlertTrend = alertBreakdown(ctx)

	// 最近24小时新增告警
	last24hQuery := elastic.NewRangeQuery("timestamp").Gte(since.Format(time.DateTime))
	if count, err := global.ES.Count(es_models.AlertModel{}.Index()).
		Query(last24hQuery).Do(ctx); err == nil {
		data.Alerts.Last24h = count
	}

	// 漏洞概览
	db := global.DB.Model(&models.VulnerabilityModel{})
	db.Count(&data.Vulns.Total)
	global.DB.Model(&models.VulnerabilityModel{}).
		Where("detected_at >= ?", since).Count(&data.Vulns.Last24h)
	openStatus := []string{"open", "in_progress"}
	global.DB.Model(&models.VulnerabilityModel{}).
		Where("status IN ?", openStatus).Count(&data.Vulns.Open)
	global.DB.Model(&models.VulnerabilityModel{}).
		Where("status IN ? AND severity = ?", openStatus, "critical").Count(&data.Vulns.Critical)
	global.DB.Model(&models.VulnerabilityModel{}).
		Where("status IN ? AND severity = ?", openStatus, "high").Count(&data.Vulns.High)
	data.Vulns.BySeverity = vulnSeverityBreakdown(global.DB)

	// 最近一次流水线扫描
	if latest, ok := pipeline_store.Latest(); ok {
		data.LatestPipeline = &latest
	}

	// 评分快照：优先读取定时任务维护的快照，缺失时实时计算
	if snapshot, ok := score_service.LoadSnapshot(ctx); ok {
		data.Score = &snapshot
	} else if snapshot, err := score_service.ComputeSnapshot(ctx); err == nil {
		data.Score = &snapshot
	}

	response.OkWithData(data, c)
}
