package routers

// File: internal/routers/pipeline_router.go
// Description: 流水线扫描结果相关路由模块

import (
	"sentinelops/internal/api"
	"sentinelops/internal/api/pipeline_api"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"

	"github.com/gin-gonic/gin"
)

// PipelineRouter 注册流水线扫描相关路由
func PipelineRouter(r *gin.RouterGroup) {
	app := api.App.PipelineApi
	writer := middleware.RoleMiddleware(models.RoleAdmin, models.RoleAnalyst)

	// GET /api/pipeline/results - 扫描结果列表查询接口
	r.GET("pipeline/results", middleware.BindQueryMiddleware[models.PageInfo], app.ListView)
	// GET /api/pipeline/results/latest - 最近一次扫描结果查询接口
	r.GET("pipeline/results/latest", app.LatestView)
	// POST /api/pipeline/results - CI侧扫描结果上报接口
	r.POST("pipeline/results", writer, middleware.BindJsonMiddleware[pipeline_api.SubmitRequest], app.SubmitView)
	// GET /api/pipeline/stats - 流水线扫描统计接口
	r.GET("pipeline/stats", app.StatsView)
}
