package agent_api

// File: internal/api/agent_api/restart.go
// Description: 代理重启API接口（仅管理员），经MQ推送agent:status事件

import (
	"fmt"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/service/wazuh_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// RestartRequest 代理重启路径参数
type RestartRequest struct {
	ID string `uri:"id" binding:"required"` // 代理ID
}

// RestartView 代理重启接口处理函数
// 重启为变更操作：Wazuh不可用时不降级，直接返回错误
func (AgentApi) RestartView(c *gin.Context) {
	cr := middleware.GetBind[RestartRequest](c)
	log := middleware.GetLog(c)
	auth := middleware.GetAuth(c)

	if err := wazuh_service.Restart(cr.ID); err != nil {
		log.Errorf("代理重启失败 %s", err)
		response.FailWithServer(fmt.Sprintf("代理重启失败 %s", err), c)
		return
	}

	log.Infof("代理重启指令已下发 %s 操作人 %s", cr.ID, auth.Email)

	// 经MQ推送agent:status事件
	mq_service.PublishEvent("agent:status", gin.H{
		"agentId": cr.ID,
		"action":  "restart",
	}, middleware.GetLogID(c))

	response.OkWithMsg("代理重启指令已下发", c)
}
