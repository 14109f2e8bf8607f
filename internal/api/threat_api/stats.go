package threat_api

// File: internal/api/threat_api/stats.go
// Description: 威胁评分统计API接口，按分类聚合计数并统计平均评分与高危IP Top10

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

// ClassCount 单个分类的统计结果
type ClassCount struct {
	Classification string `json:"classification"` // 威胁分类
	Count          int64  `json:"count"`          // 记录数量
}

// TopIp 高危源IP统计结果
type TopIp struct {
	SourceIp string  `json:"sourceIp"` // 源IP
	MaxScore float64 `json:"maxScore"` // 最高威胁评分
	Count    int64   `json:"count"`    // 分析次数
}

// StatsResponse 威胁评分统计响应结构体
type StatsResponse struct {
	Total            int64        `json:"total"`            // 分析记录总数
	Last24h          int64        `json:"last24h"`          // 最近24小时分析记录数
	AvgScore         float64      `json:"avgScore"`         // 平均威胁评分
	ByClassification []ClassCount `json:"byClassification"` // 按分类分布
	TopSourceIps     []TopIp      `json:"topSourceIps"`     // 高危源IP Top10
}

// StatsView 威胁评分统计接口处理函数
func (ThreatApi) StatsView(c *gin.Context) {
	// 高危IP聚合：按源IP分组，子聚合取最高评分，按最高评分降序取Top10
	topIpAgg := elastic.NewTermsAggregation().
		Field("sourceIp").
		Size(10).
		OrderByAggregation("max_score", false).
		SubAggregation("max_score", elastic.NewMaxAggregation().Field("threatScore"))

	// 最近24小时分析量聚合
	since := time.Now().Add(-24 * time.Hour).Format(time.DateTime)
	last24hAgg := elastic.NewFilterAggregation().
		Filter(elastic.NewRangeQuery("timestamp").Gte(since))

	res, err := global.ES.Search(es_models.ThreatModel{}.Index()).
		Aggregation("by_classification", elastic.NewTermsAggregation().Field("classification")).
		Aggregation("avg_score", elastic.NewAvgAggregation().Field("threatScore")).
		Aggregation("top_ips", topIpAgg).
		Aggregation("last_24h", last24hAgg).
		Size(0).
		Do(context.Background())
	if err != nil {
		logrus.Errorf("威胁评分统计查询失败 %s", err)
		response.FailWithServer("威胁评分统计查询失败", c)
		return
	}

	data := StatsResponse{
		Total:            res.Hits.TotalHits.Value,
		ByClassification: make([]ClassCount, 0),
		TopSourceIps:     make([]TopIp, 0, 10),
	}

	// 解析平均评分
	if avg, found := res.Aggregations.Avg("avg_score"); found && avg.Value != nil {
		data.AvgScore = *avg.Value
	}

	// 解析最近24小时分析量
	if filter, found := res.Aggregations.Filter("last_24h"); found {
		data.Last24h = filter.DocCount
	}

	// 解析分类分布
	var classAgg struct {
		Buckets []struct {
			Key      string `json:"key"`
			DocCount int64  `json:"doc_count"`
		} `json:"buckets"`
	}
	if raw, ok := res.Aggregations["by_classification"]; ok {
		if err := json.Unmarshal(raw, &classAgg); err == nil {
			for _, bucket := range classAgg.Buckets {
				data.ByClassification = append(data.ByClassification, ClassCount{
					Classification: bucket.Key,
					Count:          bucket.DocCount,
				})
			}
		}
	}

	// 解析高危IP Top10
	if terms, found := res.Aggregations.Terms("top_ips"); found {
		for _, bucket := range terms.Buckets {
			item := TopIp{
				SourceIp: bucket.Key.(string),
				Count:    bucket.DocCount,
			}
			if maxAgg, ok := bucket.Max("max_score"); ok && maxAgg.Value != nil {
				item.MaxScore = *maxAgg.Value
			}
			data.TopSourceIps = append(data.TopSourceIps, item)
		}
	}

	response.OkWithData(data, c)
}
