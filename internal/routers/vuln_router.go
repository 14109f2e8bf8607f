package routers

// File: internal/routers/vuln_router.go
// Description: 漏洞管理相关路由模块

import (
	"sentinelops/internal/api"
	"sentinelops/internal/api/vuln_api"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"

	"github.com/gin-gonic/gin"
)

// VulnRouter 注册漏洞管理相关路由
func VulnRouter(r *gin.RouterGroup) {
	app := api.App.VulnApi
	writer := middleware.RoleMiddleware(models.RoleAdmin, models.RoleAnalyst)

	// GET /api/vulnerabilities - 漏洞列表查询接口
	r.GET("vulnerabilities", middleware.BindQueryMiddleware[vuln_api.ListRequest], app.ListView)
	// GET /api/vulnerabilities/stats - 漏洞统计接口
	r.GET("vulnerabilities/stats", app.StatsView)
	// POST /api/vulnerabilities - 漏洞手工录入接口
	r.POST("vulnerabilities", writer, middleware.BindJsonMiddleware[vuln_api.CreateRequest], app.CreateView)
	// PATCH /api/vulnerabilities/:id - 漏洞更新接口
	r.PATCH("vulnerabilities/:id", writer, middleware.BindUriMiddleware[vuln_api.UpdateUri], app.UpdateView)
	// POST /api/vulnerabilities/import/trivy - Trivy扫描报告导入接口
	r.POST("vulnerabilities/import/trivy", writer,
		middleware.BindJsonMiddleware[vuln_api.ImportTrivyRequest], app.ImportTrivyView)
	// POST /api/vulnerabilities/import/semgrep - Semgrep扫描报告导入接口
	r.POST("vulnerabilities/import/semgrep", writer,
		middleware.BindJsonMiddleware[vuln_api.ImportSemgrepRequest], app.ImportSemgrepView)
}
