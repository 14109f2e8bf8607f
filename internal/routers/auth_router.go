package routers

// File: internal/routers/auth_router.go
// Description: 认证相关路由模块

import (
	"sentinelops/internal/api"
	"sentinelops/internal/api/auth_api"
	"sentinelops/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AuthRouter 注册认证相关路由
func AuthRouter(r *gin.RouterGroup) {
	app := api.App.AuthApi

	// POST /api/auth/login - 用户登录接口（白名单免认证）
	r.POST("auth/login", middleware.BindJsonMiddleware[auth_api.LoginRequest], app.LoginView)
	// GET /api/auth/captcha - 图片验证码生成接口（白名单免认证）
	r.GET("auth/captcha", app.CaptchaView)
	// POST /api/auth/register - 用户注册接口（白名单免认证）
	r.POST("auth/register", middleware.BindJsonMiddleware[auth_api.RegisterRequest], app.RegisterView)
	// GET /api/auth/me - 查询当前登录用户信息接口
	r.GET("auth/me", app.MeView)
	// POST /api/auth/refresh - Token刷新接口
	r.POST("auth/refresh", app.RefreshView)
}
