package auth_api

// File: internal/api/auth_api/refresh.go
// Description: Token刷新API接口，为已认证用户签发新Token

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/jwts"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// RefreshView Token刷新接口处理函数
// 基于当前有效Token重新查询用户信息并签发新Token，角色变更会在刷新后生效
func (AuthApi) RefreshView(c *gin.Context) {
	auth := middleware.GetAuth(c)
	log := middleware.GetLog(c)

	// 重新查询用户，确保已删除/降权的账号不能续期
	var user models.UserModel
	err := global.DB.Take(&user, auth.UserID).Error
	if err != nil {
		response.FailWithAuth("用户不存在", c)
		return
	}

	token, err := jwts.GetToken(jwts.ClaimsUserInfo{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		log.Errorf("token刷新失败 %s", err)
		response.FailWithServer("Token刷新失败", c)
		return
	}

	response.OkWithData(gin.H{"token": token}, c)
}
