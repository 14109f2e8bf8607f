package alert_api

// File: internal/api/alert_api/update.go
// Description: 告警更新API接口，支持状态流转、指派、标签及处置备注追加，
// 状态置为resolved时自动补全解决时间与解决人

import (
	"context"
	"encoding/json"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

// UpdateUri 告警更新路径参数
type UpdateUri struct {
	ID string `uri:"id" binding:"required"` // 告警业务ID
}

// UpdateRequest 告警更新请求参数结构体，均为可选字段，仅更新提交的字段
type UpdateRequest struct {
	Status     *string  `json:"status" binding:"omitempty,oneof=new investigating resolved false_positive"` // 处置状态
	AssignedTo *string  `json:"assignedTo"` // 指派处置人
	Severity   *string  `json:"severity" binding:"omitempty,oneof=critical high medium low"` // 严重级别修订
	Tags       []string `json:"tags"` // 标签全量替换
	Note       *string  `json:"note"` // 追加一条处置备注
}

// UpdateView 告警更新接口处理函数
// 采用读取-修改-回写方式更新，保留未提交字段的原值
func (AlertApi) UpdateView(c *gin.Context) {
	uri := middleware.GetBind[UpdateUri](c)
	log := middleware.GetLog(c)

	// 请求体单独绑定（路径参数已由Uri中间件绑定）
	var cr UpdateRequest
	if err := c.ShouldBindJSON(&cr); err != nil {
		response.FailWithError(err, c)
		return
	}

	ctx := context.Background()

	// 读取当前告警文档
	res, err := global.ES.Get().
		Index(es_models.AlertModel{}.Index()).
		Id(uri.ID).
		Do(ctx)
	if err != nil {
		if elastic.IsNotFound(err) {
			response.FailWithNotFound("告警不存在", c)
			return
		}
		logrus.Errorf("告警查询失败 %s", err)
		response.FailWithServer("告警查询失败", c)
		return
	}

	var alert es_models.AlertModel
	if err := json.Unmarshal(res.Source, &alert); err != nil {
		logrus.Errorf("json解析失败 %s %s", err, res.Id)
		response.FailWithServer("数据解析失败", c)
		return
	}
	alert.AlertID = res.Id

	auth := middleware.GetAuth(c)
	now := time.Now().Format(time.DateTime)

	// 按提交字段修改
	if cr.Status != nil {
		alert.Status = *cr.Status
		// 状态置为resolved时补全解决时间与解决人
		if *cr.Status == es_models.AlertStatusResolved {
			alert.ResolvedAt = now
			alert.ResolvedBy = auth.Email
		}
	}
	if cr.AssignedTo != nil {
		alert.AssignedTo = *cr.AssignedTo
	}
	if cr.Severity != nil {
		alert.Severity = *cr.Severity
	}
	if cr.Tags != nil {
		alert.Tags = cr.Tags
	}
	if cr.Note != nil && *cr.Note != "" {
		alert.Notes = append(alert.Notes, es_models.AlertNote{
			Author:    auth.Email,
			Content:   *cr.Note,
			Timestamp: now,
		})
	}

	// 回写全量文档
	_, err = global.ES.Index().
		Index(alert.Index()).
		Id(alert.AlertID).
		BodyJson(alert).
		Do(ctx)
	if err != nil {
		log.WithField("alert_id", alert.AlertID).Errorf("告警更新失败 %s", err)
		response.FailWithServer("告警更新失败", c)
		return
	}

	log.Infof("告警更新成功 %s 状态 %s 操作人 %s", alert.AlertID, alert.Status, auth.Email)

	// 经MQ推送alert:updated事件
	mq_service.PublishEvent("alert:updated", alert, middleware.GetLogID(c))

	response.OkWithData(alert, c)
}
