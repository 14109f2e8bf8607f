package routers

// File: internal/routers/alert_router.go
// Description: 告警相关路由模块

import (
	"sentinelops/internal/api"
	"sentinelops/internal/api/alert_api"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"

	"github.com/gin-gonic/gin"
)

// AlertRouter 注册告警相关路由
func AlertRouter(r *gin.RouterGroup) {
	app := api.App.AlertApi
	// 写操作要求analyst及以上角色
	writer := middleware.RoleMiddleware(models.RoleAdmin, models.RoleAnalyst)

	// GET /api/alerts - 告警列表查询接口
	r.GET("alerts", middleware.BindQueryMiddleware[alert_api.ListRequest], app.ListView)
	// GET /api/alerts/stats - 告警统计接口
	r.GET("alerts/stats", app.StatsView)
	// GET /api/alerts/:id - 告警详情查询接口
	r.GET("alerts/:id", middleware.BindUriMiddleware[alert_api.DetailRequest], app.DetailView)
	// POST /api/alerts - 告警创建接口
	r.POST("alerts", writer, middleware.BindJsonMiddleware[alert_api.CreateRequest], app.CreateView)
	// POST /api/alerts/bulk - 告警批量导入接口
	r.POST("alerts/bulk", writer, middleware.BindJsonMiddleware[alert_api.BulkRequest], app.BulkView)
	// PATCH /api/alerts/:id - 告警更新接口
	r.PATCH("alerts/:id", writer, middleware.BindUriMiddleware[alert_api.UpdateUri], app.UpdateView)
}
