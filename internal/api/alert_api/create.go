package alert_api

// File: internal/api/alert_api/create.go
// Description: 告警创建API接口，写入ES后经MQ推送alert:new事件到WS客户端

import (
	"context"
	"fmt"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateRequest 告警创建请求参数结构体
type CreateRequest struct {
	AlertID   string               `json:"alertId"`                                                                  // 告警业务ID，缺省自动生成
	Timestamp string               `json:"timestamp"`                                                                // 告警发生时间，缺省当前时间
	Source    string               `json:"source" binding:"required" label:"来源"`                                    // 告警来源（必填）
	SourceIp  string               `json:"sourceIp"`                                                                 // 攻击源IP
	DestIp    string               `json:"destIp"`                                                                   // 攻击目标IP
	Severity  string               `json:"severity" binding:"required,oneof=critical high medium low" label:"级别"` // 严重级别（必填）
	Category  string               `json:"category" binding:"required" label:"分类"`                                  // 告警分类（必填）
	Rule      es_models.AlertRule  `json:"rule"`                                                                     // 命中的检测规则
	Message   string               `json:"message" binding:"required" label:"描述"`                                   // 告警描述（必填）
	Tags      []string             `json:"tags"`                                                                     // 标签列表
	Metadata  map[string]string    `json:"metadata"`                                                                 // 扩展元数据
}

// buildAlert 将创建请求组装为告警存储模型，补全缺省字段
func buildAlert(cr CreateRequest) es_models.AlertModel {
	if cr.AlertID == "" {
		cr.AlertID = fmt.Sprintf("ALERT-%s", uuid.New().String())
	}
	if cr.Timestamp == "" {
		cr.Timestamp = time.Now().Format(time.DateTime)
	}
	return es_models.AlertModel{
		AlertID:   cr.AlertID,
		Timestamp: cr.Timestamp,
		Source:    cr.Source,
		SourceIp:  cr.SourceIp,
		DestIp:    cr.DestIp,
		Severity:  cr.Severity,
		Category:  cr.Category,
		Rule:      cr.Rule,
		Message:   cr.Message,
		Status:    es_models.AlertStatusNew,
		Tags:      cr.Tags,
		Metadata:  cr.Metadata,
	}
}

// CreateView 告警创建接口处理函数
// 文档ID使用告警业务ID，OpType=create确保重复告警写入报错而非覆盖
func (AlertApi) CreateView(c *gin.Context) {
	cr := middleware.GetBind[CreateRequest](c)
	log := middleware.GetLog(c)

	alert := buildAlert(cr)

	_, err := global.ES.Index().
		Index(alert.Index()).
		Id(alert.AlertID).
		OpType("create"). // 同ID文档已存在时报版本冲突，防止重复告警覆盖
		BodyJson(alert).
		Do(context.Background())
	if err != nil {
		log.WithField("alert_id", alert.AlertID).Errorf("告警写入失败 %s", err)
		response.FailWithMsg("告警已存在或写入失败", c)
		return
	}

	log.Infof("告警创建成功 %s 级别 %s 来源 %s", alert.AlertID, alert.Severity, alert.Source)

	// 经MQ推送事件：全量广播alert:new + 按严重级别房间定向推送
	logID := middleware.GetLogID(c)
	mq_service.PublishEvent("alert:new", alert, logID)
	mq_service.PublishRoomEvent(fmt.Sprintf("alerts-%s", alert.Severity), "alert:severity", alert, logID)

	response.OkWithCreated(alert, c)
}
