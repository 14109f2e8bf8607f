package routers

// File: internal/routers/threat_router.go
// Description: ML威胁分析相关路由模块

import (
	"sentinelops/internal/api"
	"sentinelops/internal/api/threat_api"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"

	"github.com/gin-gonic/gin"
)

// ThreatRouter 注册威胁分析相关路由
func ThreatRouter(r *gin.RouterGroup) {
	app := api.App.ThreatApi
	writer := middleware.RoleMiddleware(models.RoleAdmin, models.RoleAnalyst)

	// GET /api/threats - 威胁评分列表查询接口
	r.GET("threats", middleware.BindQueryMiddleware[threat_api.ListRequest], app.ListView)
	// GET /api/threats/stats - 威胁评分统计接口
	r.GET("threats/stats", app.StatsView)
	// POST /api/threats/analyze - 威胁分析接口
	r.POST("threats/analyze", writer, middleware.BindJsonMiddleware[threat_api.AnalyzeRequest], app.AnalyzeView)
	// POST /api/threats/train - 触发模型训练接口（仅管理员）
	r.POST("threats/train", middleware.AdminMiddleware, app.TrainView)
	// GET /api/threats/model/status - 模型状态查询接口
	r.GET("threats/model/status", app.ModelStatusView)
}
