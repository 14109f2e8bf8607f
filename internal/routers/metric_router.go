package routers

// File: internal/routers/metric_router.go
// Description: 安全态势指标相关路由模块

import (
	"sentinelops/internal/api"

	"github.com/gin-gonic/gin"
)

// MetricRouter 注册态势指标相关路由
func MetricRouter(r *gin.RouterGroup) {
	app := api.App.MetricApi

	// GET /api/metrics/dashboard - 看板汇总接口
	r.GET("metrics/dashboard", app.DashboardView)
	// GET /api/metrics/security-score - 安全评分接口（实时计算）
	r.GET("metrics/security-score", app.SecurityScoreView)
	// GET /api/metrics/realtime - 实时运行指标接口（读取缓存快照）
	r.GET("metrics/realtime", app.RealtimeView)
}
