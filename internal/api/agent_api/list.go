package agent_api

// File: internal/api/agent_api/list.go
// Description: 代理列表与详情查询API接口

import (
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/wazuh_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ListView 代理列表查询接口处理函数
func (AgentApi) ListView(c *gin.Context) {
	agents := wazuh_service.Agents()
	response.OkWithList(agents, int64(len(agents)), c)
}

// DetailRequest 代理详情查询路径参数
type DetailRequest struct {
	ID string `uri:"id" binding:"required"` // 代理ID
}

// DetailView 代理详情查询接口处理函数
func (AgentApi) DetailView(c *gin.Context) {
	cr := middleware.GetBind[DetailRequest](c)
	agent, ok := wazuh_service.AgentByID(cr.ID)
	if !ok {
		response.FailWithNotFound("代理不存在", c)
		return
	}
	response.OkWithData(agent, c)
}

// StatsView 代理状态统计接口处理函数
func (AgentApi) StatsView(c *gin.Context) {
	response.OkWithData(wazuh_service.Stats(), c)
}
