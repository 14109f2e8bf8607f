package alert_api

// File: internal/api/alert_api/stats.go
// Description: 告警统计API接口，按严重级别/状态/分类聚合计数，
// 并返回最近7天按天的告警时序分布

import (
	"context"
	"encoding/json"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

// TermCount 单个聚合桶的统计结果
type TermCount struct {
	Key   string `json:"key"`   // 聚合维度值
	Count int64  `json:"count"` // 文档数量
}

// DateCount 单日告警统计结果
type DateCount struct {
	Date  string `json:"date"`  // 日期（yyyy-MM-dd）
	Count int64  `json:"count"` // 当日告警数量
}

// StatsResponse 告警统计响应结构体
type StatsResponse struct {
	Total      int64       `json:"total"`      // 告警总数
	BySeverity []TermCount `json:"bySeverity"` // 按严重级别分布
	ByStatus   []TermCount `json:"byStatus"`   // 按处置状态分布
	ByCategory []TermCount `json:"byCategory"` // 按分类分布
	Trend      []DateCount `json:"trend"`      // 最近7天按天时序分布
}

// termsAgg ES terms聚合结果解析结构体
type termsAgg struct {
	Buckets []struct {
		Key      string `json:"key"`
		DocCount int64  `json:"doc_count"`
	} `json:"buckets"`
}

// parseTerms 解析terms聚合结果为标准化列表
func parseTerms(aggs elastic.Aggregations, name string) []TermCount {
	list := make([]TermCount, 0)
	raw, ok := aggs[name]
	if !ok {
		return list
	}
	var data termsAgg
	if err := json.Unmarshal(raw, &data); err != nil {
		logrus.Errorf("聚合结果解析失败 %s %s", name, err)
		return list
	}
	for _, bucket := range data.Buckets {
		list = append(list, TermCount{Key: bucket.Key, Count: bucket.DocCount})
	}
	return list
}

// StatsView 告警统计接口处理函数
func (AlertApi) StatsView(c *gin.Context) {
	// 最近7天时间范围（含今天）
	now := time.Now()
	startDay := now.AddDate(0, 0, -6).Format(time.DateOnly)
	endDay := now.Format(time.DateOnly)

	// 按天聚合的日期直方图：无数据的日期填充0，强制扩展边界覆盖完整7天
	trendAgg := elastic.NewDateHistogramAggregation().
		Field("timestamp").
		CalendarInterval("day").
		Format("yyyy-MM-dd").
		MinDocCount(0).
		ExtendedBounds(startDay, endDay)

	// 时序聚合限定最近7天，分布聚合基于全量告警
	trendFiltered := elastic.NewFilterAggregation().
		Filter(elastic.NewRangeQuery("timestamp").
			Gte(startDay + " 00:00:00").
			Lte(endDay + " 23:59:59")).
		SubAggregation("daily", trendAgg)

	res, err := global.ES.Search(es_models.AlertModel{}.Index()).
		Aggregation("by_severity", elastic.NewTermsAggregation().Field("severity")).
		Aggregation("by_status", elastic.NewTermsAggregation().Field("status")).
		Aggregation("by_category", elastic.NewTermsAggregation().Field("category")).
		Aggregation("trend", trendFiltered).
		Size(0).
		Do(context.Background())
	if err != nil {
		logrus.Errorf("告警统计查询失败 %s", err)
		response.FailWithServer("告警统计查询失败", c)
		return
	}

	data := StatsResponse{
		Total:      res.Hits.TotalHits.Value,
		BySeverity: parseTerms(res.Aggregations, "by_severity"),
		ByStatus:   parseTerms(res.Aggregations, "by_status"),
		ByCategory: parseTerms(res.Aggregations, "by_category"),
		Trend:      make([]DateCount, 0, 7),
	}

	// 解析过滤聚合下的时序直方图
	if filtered, found := res.Aggregations.Filter("trend"); found {
		if agg, ok := filtered.Aggregations.DateHistogram("daily"); ok {
			for _, bucket := range agg.Buckets {
				if bucket.KeyAsString == nil {
					continue
				}
				data.Trend = append(data.Trend, DateCount{
					Date:  *bucket.KeyAsString,
					Count: bucket.DocCount,
				})
			}
		}
	}

	response.OkWithData(data, c)
}
