package threat_api

// File: internal/api/threat_api/model.go
// Description: ML模型管理API接口，提供模型训练触发与状态查询

import (
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/ml_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// TrainView 触发模型训练接口处理函数（仅管理员）
func (ThreatApi) TrainView(c *gin.Context) {
	log := middleware.GetLog(c)
	auth := middleware.GetAuth(c)

	result, err := ml_service.Train()
	if err != nil {
		log.WithField("operator", auth.Email).Errorf("模型训练触发失败 %s", err)
		response.FailWithServer("模型训练触发失败", c)
		return
	}

	log.Infof("模型训练任务已触发 %s 操作人 %s", result.JobID, auth.Email)

	response.OkWithData(result, c)
}

// ModelStatusView 查询模型状态接口处理函数
func (ThreatApi) ModelStatusView(c *gin.Context) {
	response.OkWithData(ml_service.Status(), c)
}
