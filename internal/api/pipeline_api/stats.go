package pipeline_api

// File: internal/api/pipeline_api/stats.go
// Description: 流水线扫描统计API接口，基于保留窗口内的结果汇总通过率与问题分布

import (
	"sentinelops/internal/service/redis_service/pipeline_store"
	"sentinelops/internal/service/scan_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsResponse 流水线扫描统计响应结构体
type StatsResponse struct {
	Total    int                  `json:"total"`    // 保留窗口内的扫描总次数
	Passed   int                  `json:"passed"`   // 通过次数
	Failed   int                  `json:"failed"`   // 失败次数
	PassRate float64              `json:"passRate"` // 通过率 0-1
	Issues   scan_service.Summary `json:"issues"`   // 各级别问题累计
}

// StatsView 流水线扫描统计接口处理函数
func (PipelineApi) StatsView(c *gin.Context) {
	results, err := pipeline_store.All()
	if err != nil {
		logrus.Errorf("扫描结果查询失败 %s", err)
		response.FailWithServer("扫描结果查询失败", c)
		return
	}

	var data StatsResponse
	for _, result := range results {
		data.Total++
		if result.Status == "passed" {
			data.Passed++
		} else {
			data.Failed++
		}
		data.Issues.TotalIssues += result.Summary.TotalIssues
		data.Issues.Critical += result.Summary.Critical
		data.Issues.High += result.Summary.High
		data.Issues.Medium += result.Summary.Medium
		data.Issues.Low += result.Summary.Low
	}
	if data.Total > 0 {
		data.PassRate = float64(data.Passed) / float64(data.Total)
	}

	response.OkWithData(data, c)
}
