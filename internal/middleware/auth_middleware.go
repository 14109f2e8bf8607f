package middleware

// File: internal/middleware/auth_middleware.go
// Description: 中间件模块，提供JWT认证和角色权限校验中间件
// Token通过Authorization请求头以Bearer方式携带，
// 浏览器WS客户端无法设置请求头，兼容token查询参数携带

import (
	"sentinelops/internal/global"
	"sentinelops/internal/utils"
	"sentinelops/internal/utils/jwts"
	"sentinelops/internal/utils/response"
	"strings"

	"github.com/gin-gonic/gin"
)

// extractToken 从Authorization请求头中提取Bearer Token，
// 请求头缺失时回退到token查询参数（WS连接场景）
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return c.Query("token")
	}
	// 兼容 "Bearer <token>" 与裸token两种形式
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}

// AuthMiddleware JWT认证中间件，验证请求头中的Token有效性
func AuthMiddleware(c *gin.Context) {
	// 检查当前请求路径是否在白名单中
	path := c.Request.URL.Path
	if utils.InList(global.Config.WhiteList, path) {
		// 在白名单中，直接放行
		c.Next()
		return
	}
	// 从Authorization请求头获取token
	token := extractToken(c)
	if token == "" {
		response.FailWithAuth("缺少认证凭证", c)
		c.Abort()
		return
	}
	// 解析并验证token
	claims, err := jwts.ParseToken(token)
	if err != nil {
		// 认证失败，返回错误响应并终止请求链
		response.FailWithAuth("认证失败", c)
		c.Abort()
		return
	}
	// 将解析后的claims信息存储在请求上下文中
	c.Set("claims", claims)
	// 认证通过，继续处理请求
	c.Next()
}

// GetAuth 获取当前请求的认证信息
func GetAuth(c *gin.Context) *jwts.Claims {
	return c.MustGet("claims").(*jwts.Claims)
}

// RoleMiddleware 角色校验中间件工厂，要求当前用户角色在给定列表中
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetAuth(c)
		// 校验用户角色是否在允许列表中
		if !utils.InList(roles, claims.Role) {
			response.FailWithRole(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware 管理员角色校验中间件，在JWT认证基础上验证用户角色
func AdminMiddleware(c *gin.Context) {
	claims := GetAuth(c)
	// 校验用户角色是否为管理员
	if claims.Role != "admin" {
		// 角色认证失败，返回错误响应并终止请求链
		response.FailWithRole(c)
		c.Abort()
		return
	}
	// 角色校验通过，继续处理请求
	c.Next()
}
