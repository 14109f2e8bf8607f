package routers

// File: internal/routers/ws_router.go
// Description: WebSocket实时推送路由模块

import (
	"sentinelops/internal/api"

	"github.com/gin-gonic/gin"
)

// WsRouter 注册WebSocket实时推送路由
func WsRouter(r *gin.RouterGroup) {
	app := api.App.WsApi

	// GET /api/ws - WebSocket连接升级接口（浏览器客户端经token查询参数认证）
	r.GET("ws", app.WsView)
}
