package threat_api

// File: internal/api/threat_api/analyze.go
// Description: 威胁分析API接口，调用ML评分引擎对源IP评分，
// 评分结果持久化到ES威胁索引，high_risk及以上分类经MQ推送threat:detected事件

import (
	"context"
	"fmt"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/ml_service"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/service/score_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyzeRequest 威胁分析请求参数结构体
type AnalyzeRequest struct {
	SourceIp      string   `json:"sourceIp" binding:"required,ip" label:"源IP"` // 被分析的源IP（必填）
	RelatedAlerts []string `json:"relatedAlerts"`                                // 关联告警ID列表
}

// AnalyzeView 威胁分析接口处理函数
func (ThreatApi) AnalyzeView(c *gin.Context) {
	cr := middleware.GetBind[AnalyzeRequest](c)
	log := middleware.GetLog(c)

	// 调用评分引擎（不可用时自动降级为模拟评分）
	pred := ml_service.Predict(cr.SourceIp, cr.RelatedAlerts)

	// 分类以平台阈值为准，不信任引擎侧分类
	threat := es_models.ThreatModel{
		ThreatID:       fmt.Sprintf("THREAT-%s", uuid.New().String()),
		Timestamp:      time.Now().Format(time.DateTime),
		SourceIp:       pred.SourceIp,
		ThreatScore:    pred.ThreatScore,
		Classification: score_service.Classify(pred.ThreatScore),
		Confidence:     pred.Confidence,
		Features:       pred.Features,
		RelatedAlerts:  pred.RelatedAlerts,
		ModelVersion:   pred.ModelVersion,
	}

	_, err := global.ES.Index().
		Index(threat.Index()).
		Id(threat.ThreatID).
		OpType("create").
		BodyJson(threat).
		Do(context.Background())
	if err != nil {
		log.WithField("source_ip", cr.SourceIp).Errorf("威胁评分写入失败 %s", err)
		response.FailWithServer("威胁评分写入失败", c)
		return
	}

	log.Infof("威胁分析完成 %s 源IP %s 评分 %.1f 分类 %s",
		threat.ThreatID, threat.SourceIp, threat.ThreatScore, threat.Classification)

	// 仅high_risk及以上分类经MQ推送threat:detected事件
	if notifyWorthy(threat.Classification) {
		mq_service.PublishEvent("threat:detected", threat, middleware.GetLogID(c))
	}

	response.OkWithCreated(threat, c)
}

// notifyWorthy 判断威胁分类是否达到实时推送阈值
func notifyWorthy(classification string) bool {
	return classification == es_models.ClassificationHighRisk ||
		classification == es_models.ClassificationAttack
}
