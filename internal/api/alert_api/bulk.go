package alert_api

// File: internal/api/alert_api/bulk.go
// Description: 告警批量导入API接口，逐条写入并统计成功/失败数，单条失败不中断整批

import (
	"context"
	"fmt"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// BulkRequest 告警批量导入请求参数结构体
type BulkRequest struct {
	Alerts []CreateRequest `json:"alerts" binding:"required,min=1" label:"告警列表"` // 待导入的告警列表（必填）
}

// BulkError 单条导入失败信息
type BulkError struct {
	AlertID string `json:"alertId"` // 失败的告警ID
	Msg     string `json:"msg"`     // 失败原因
}

// BulkResponse 批量导入结果统计
type BulkResponse struct {
	Total    int         `json:"total"`    // 提交总数
	Inserted int         `json:"inserted"` // 写入成功数
	Failed   int         `json:"failed"`   // 写入失败数
	Errors   []BulkError `json:"errors"`   // 失败详情列表
}

// BulkView 告警批量导入接口处理函数
func (AlertApi) BulkView(c *gin.Context) {
	cr := middleware.GetBind[BulkRequest](c)
	log := middleware.GetLog(c)
	logID := middleware.GetLogID(c)

	result := BulkResponse{Total: len(cr.Alerts)}
	ctx := context.Background()

	for _, item := range cr.Alerts {
		alert := buildAlert(item)
		_, err := global.ES.Index().
			Index(alert.Index()).
			Id(alert.AlertID).
			OpType("create").
			BodyJson(alert).
			Do(ctx)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, BulkError{
				AlertID: alert.AlertID,
				Msg:     "告警已存在或写入失败",
			})
			continue
		}
		result.Inserted++
		// 逐条推送事件，保持与单条创建一致的下游行为
		mq_service.PublishEvent("alert:new", alert, logID)
		mq_service.PublishRoomEvent(fmt.Sprintf("alerts-%s", alert.Severity), "alert:severity", alert, logID)
	}

	log.Infof("告警批量写入完成 总数 %d 成功 %d 失败 %d", result.Total, result.Inserted, result.Failed)

	response.OkWithCreated(result, c)
}
