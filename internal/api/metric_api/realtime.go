package metric_api

// File: internal/api/metric_api/realtime.go
// Description: 实时运行指标API接口，返回系统资源快照、WS在线连接数
// 及最近一分钟的告警流量（每分钟告警数、最新告警、高危告警数）

import (
	"context"
	"encoding/json"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/service/sysinfo"
	"sentinelops/internal/service/ws_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

// RealtimeResponse 实时运行指标响应结构体
type RealtimeResponse struct {
	Resource            sysinfo.ResourceMessage `json:"resource"`            // 系统资源快照
	Connections         int                     `json:"connections"`         // WS在线连接数
	AlertsPerMinute     int64                   `json:"alertsPerMinute"`     // 最近一分钟告警数
	RecentAlerts        []es_models.AlertModel  `json:"recentAlerts"`        // 最近一分钟的最新告警
	HighPriorityThreats int64                   `json:"highPriorityThreats"` // 最近一分钟critical/high告警数
}

// lastMinuteQuery 最近一分钟时间窗口的告警范围查询
func lastMinuteQuery(since time.Time) *elastic.RangeQuery {
	return elastic.NewRangeQuery("timestamp").Gte(since.Format(time.DateTime))
}

// highPriorityQuery 最近一分钟内critical/high级别告警的组合查询
func highPriorityQuery(since time.Time) *elastic.BoolQuery {
	return elastic.NewBoolQuery().
		Filter(lastMinuteQuery(since)).
		Filter(elastic.NewTermsQuery("severity", "critical", "high"))
}

// RealtimeView 实时运行指标接口处理函数
// 资源快照直接读取定时任务缓存，告警流量现场查询ES，查询失败降级为零值
func (MetricApi) RealtimeView(c *gin.Context) {
	ctx := context.Background()
	since := time.Now().Add(-time.Minute)

	data := RealtimeResponse{
		Resource:     sysinfo.Latest(),
		Connections:  ws_service.ConnectionCount(),
		RecentAlerts: make([]es_models.AlertModel, 0, 10),
	}

	// 最近一分钟的告警总数及最新10条
	res, err := global.ES.Search(es_models.AlertModel{}.Index()).
		Query(lastMinuteQuery(since)).
		Sort("timestamp", false).
		Size(10).
		Do(ctx)
	if err != nil {
		logrus.Errorf("实时告警查询失败 %s", err)
	} else {
		data.AlertsPerMinute = res.Hits.TotalHits.Value
		for _, hit := range res.Hits.Hits {
			var alert es_models.AlertModel
			if err := json.Unmarshal(hit.Source, &alert); err != nil {
				continue
			}
			alert.AlertID = hit.Id
			data.RecentAlerts = append(data.RecentAlerts, alert)
		}
	}

	// 最近一分钟的critical/high告警数
	if count, err := global.ES.Count(es_models.AlertModel{}.Index()).
		Query(highPriorityQuery(since)).Do(ctx); err != nil {
		logrus.Errorf("实时高危告警计数失败 %s", err)
	} else {
		data.HighPriorityThreats = count
	}

	response.OkWithData(data, c)
}
