package routers

// File: internal/routers/enter.go
// Description: 路由模块，负责初始化Gin引擎、注册API路由并启动HTTP服务

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// startTime 服务启动时间，用于健康检查上报运行时长
var startTime = time.Now()

// Run 初始化路由引擎并启动HTTP服务
func Run() {
	// 获取系统配置信息
	system := global.Config.System
	// 设置Gin运行模式（debug/release/test）
	gin.SetMode(system.Mode)

	// 创建默认Gin引擎
	r := gin.Default()

	// 健康检查接口，免认证
	r.GET("health", func(c *gin.Context) {
		response.OkWithData(gin.H{
			"status":  "ok",
			"version": global.Version,
			"uptime":  int64(time.Since(startTime).Seconds()),
		}, c)
	})

	// 创建API根路由分组
	g := r.Group("api")
	g.Use(middleware.LogMiddleware, middleware.AuthMiddleware) // 白名单外的接口必须登录才能使用

	// 路由注册
	AuthRouter(g)     // 认证相关路由
	AlertRouter(g)    // 告警相关路由
	VulnRouter(g)     // 漏洞相关路由
	ThreatRouter(g)   // 威胁分析相关路由
	MetricRouter(g)   // 态势指标相关路由
	AgentRouter(g)    // 代理管理相关路由
	PipelineRouter(g) // 流水线扫描相关路由
	WsRouter(g)       // WebSocket实时推送路由

	// 未匹配路由统一返回404
	r.NoRoute(func(c *gin.Context) {
		response.FailWithNotFound("接口不存在", c)
	})

	// 获取HTTP服务监听地址
	webAddr := system.WebAddr
	logrus.Infof("web addr run %s", webAddr)

	// 启动HTTP服务
	r.Run(webAddr)
}
