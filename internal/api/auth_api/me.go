package auth_api

// File: internal/api/auth_api/me.go
// Description: 当前登录用户信息API接口

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// MeView 查询当前登录用户信息接口
func (AuthApi) MeView(c *gin.Context) {
	// 从上下文获取已认证的用户信息
	auth := middleware.GetAuth(c)
	var user models.UserModel
	// 从数据库查询用户信息
	err := global.DB.Take(&user, auth.UserID).Error
	if err != nil {
		response.FailWithNotFound("用户不存在", c)
		return
	}

	// 返回成功响应及用户信息数据
	response.OkWithData(profile(user), c)
}
