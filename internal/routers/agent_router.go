package routers

// File: internal/routers/agent_router.go
// Description: Wazuh代理管理相关路由模块

import (
	"sentinelops/internal/api"
	"sentinelops/internal/api/agent_api"
	"sentinelops/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AgentRouter 注册代理管理相关路由
func AgentRouter(r *gin.RouterGroup) {
	app := api.App.AgentApi

	// GET /api/agents - 代理列表查询接口
	r.GET("agents", app.ListView)
	// GET /api/agents/stats/summary - 代理状态统计接口
	r.GET("agents/stats/summary", app.StatsView)
	// GET /api/agents/:id - 代理详情查询接口
	r.GET("agents/:id", middleware.BindUriMiddleware[agent_api.DetailRequest], app.DetailView)
	// POST /api/agents/:id/restart - 代理重启接口（仅管理员）
	r.POST("agents/:id/restart", middleware.AdminMiddleware,
		middleware.BindUriMiddleware[agent_api.RestartRequest], app.RestartView)
}
