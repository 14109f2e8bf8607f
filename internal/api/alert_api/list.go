package alert_api

// File: internal/api/alert_api/list.go
// Description: 告警列表查询API接口

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

// ListRequest 告警列表查询请求参数结构体，包含分页参数和多维度筛选条件
type ListRequest struct {
	models.PageInfo        // 嵌入分页基础参数
	Severity        string `form:"severity"`  // 严重级别筛选
	Status          string `form:"status"`    // 处置状态筛选
	Source          string `form:"source"`    // 告警来源筛选
	Category        string `form:"category"`  // 告警分类筛选
	SourceIp        string `form:"sourceIp"`  // 攻击源IP筛选
	Search          string `form:"search"`    // 告警内容全文搜索
	StartDate       string `form:"startDate"` // 告警开始时间
	EndDate         string `form:"endDate"`   // 告警结束时间
}

// buildListQuery 根据筛选条件构建ES布尔查询
func buildListQuery(cr ListRequest) *elastic.BoolQuery {
	query := elastic.NewBoolQuery()

	// 1. 严重级别筛选：精确匹配
	if cr.Severity != "" {
		query = query.Filter(elastic.NewTermQuery("severity", cr.Severity))
	}

	// 2. 处置状态筛选：精确匹配
	if cr.Status != "" {
		query = query.Filter(elastic.NewTermQuery("status", cr.Status))
	}

	// 3. 告警来源筛选：精确匹配
	if cr.Source != "" {
		query = query.Filter(elastic.NewTermQuery("source", cr.Source))
	}

	// 4. 告警分类筛选：精确匹配
	if cr.Category != "" {
		query = query.Filter(elastic.NewTermQuery("category", cr.Category))
	}

	// 5. 源IP筛选：精确匹配
	if cr.SourceIp != "" {
		query = query.Filter(elastic.NewTermQuery("sourceIp", cr.SourceIp))
	}

	// 6. 全文搜索：匹配告警消息与规则名称，搜索词为合法IP时额外匹配源IP
	if cr.Search != "" {
		search := elastic.NewBoolQuery().
			Should(elastic.NewMultiMatchQuery(cr.Search, "message", "rule.name")).
			MinimumNumberShouldMatch(1)
		// sourceIp字段为ip类型，非IP搜索词直接查询会报解析错误
		if net.ParseIP(cr.Search) != nil {
			search.Should(elastic.NewTermQuery("sourceIp", cr.Search))
		}
		query = query.Must(search)
	}

	// 7. 时间范围筛选：支持开始时间/结束时间单独或组合筛选，自动兼容多时间格式
	if cr.StartDate != "" || cr.EndDate != "" {
		rangeQuery := elastic.NewRangeQuery("timestamp")

		if cr.StartDate != "" {
			if startTime, err := parseTime(cr.StartDate); err == nil {
				rangeQuery = rangeQuery.Gte(startTime)
			} else {
				logrus.Warnf("无效的开始时间格式: %s, 错误: %v", cr.StartDate, err) // 日志警告，不阻断查询
			}
		}

		if cr.EndDate != "" {
			if endTime, err := parseTime(cr.EndDate); err == nil {
				rangeQuery = rangeQuery.Lte(endTime)
			} else {
				logrus.Warnf("无效的结束时间格式: %s, 错误: %v", cr.EndDate, err)
			}
		}

		query = query.Filter(rangeQuery)
	}

	return query
}

// ListView 告警列表查询接口，支持多条件组合筛选、时间范围解析、分页控制，从ES查询并返回标准化响应
func (AlertApi) ListView(c *gin.Context) {
	// 绑定并校验查询参数
	cr := middleware.GetBind[ListRequest](c)

	limit := cr.GetLimit()
	page := cr.GetPage()
	offset := cr.GetOffset()

	query := buildListQuery(cr)

	// 执行ES查询：指定索引、查询条件、排序规则、分页参数
	res, err := global.ES.Search(es_models.AlertModel{}.Index()).
		Query(query).
		Sort("timestamp", false). // 按告警时间降序（最新告警在前）
		Size(limit).
		From(offset).
		Do(context.Background())

	if err != nil {
		logrus.Errorf("告警查询失败 %s", err)
		response.FailWithServer("告警查询失败", c)
		return
	}

	// 解析查询结果：总条数 + 告警数据列表
	count := res.Hits.TotalHits.Value
	var list = make([]es_models.AlertModel, 0, limit)

	for _, hit := range res.Hits.Hits {
		var data es_models.AlertModel
		err = json.Unmarshal(hit.Source, &data)
		if err != nil {
			logrus.Errorf("json解析失败 %s %s %s", err, hit.Source, hit.Id)
			continue // 解析失败跳过当前数据，继续处理下一条
		}
		data.AlertID = hit.Id // 文档ID即告警业务ID
		list = append(list, data)
	}

	// 返回标准化分页响应
	response.OkWithPage(list, count, page, limit, c)
}

// parseTime 解析时间字符串，支持两种常用格式（yyyy-MM-dd HH:mm:ss / yyyy-MM-dd），解析失败返回错误
func parseTime(timeStr string) (string, error) {
	// 尝试解析为完整时间格式
	if t, err := time.Parse(time.DateTime, timeStr); err == nil {
		return t.Format(time.DateTime), nil
	}

	// 尝试解析为日期格式，自动补全时间部分为00:00:00
	if t, err := time.Parse(time.DateOnly, timeStr); err == nil {
		return t.Format(time.DateTime), nil
	}

	return "", fmt.Errorf("不支持的时间格式: %s，仅支持 yyyy-MM-dd HH:mm:ss 或 yyyy-MM-dd", timeStr)
}
