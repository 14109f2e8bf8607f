package auth_api

// File: internal/api/auth_api/register.go
// Description: 用户注册API接口，注册成功后直接签发Token完成登录

import (
	"fmt"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/user_service"
	"sentinelops/internal/utils/jwts"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 用户注册请求参数结构体
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" label:"邮箱"`           // 登录邮箱（必填）
	Password string `json:"password" binding:"required,min=8" label:"密码"`        // 密码（必填，至少8位）
	Name     string `json:"name" binding:"required" label:"名称"`                  // 显示名称（必填）
	Role     string `json:"role" binding:"omitempty,oneof=admin analyst viewer"` // 用户角色，缺省analyst
}

// RegisterView 用户注册接口处理函数，注册成功后返回Token及用户信息
func (AuthApi) RegisterView(c *gin.Context) {
	// 获取绑定的注册请求参数
	cr := middleware.GetBind[RegisterRequest](c)

	// 获取上下文日志实例
	log := middleware.GetLog(c)
	// 初始化用户服务
	us := user_service.NewUserService(log)
	// 调用服务层创建用户方法
	user, err := us.Create(user_service.UserCreateRequest{
		Email:    cr.Email,
		Password: cr.Password,
		Name:     cr.Name,
		Role:     cr.Role,
	})
	if err != nil {
		log.Errorf("创建用户失败 %s", err)
		response.FailWithMsg(fmt.Sprintf("创建用户失败 %s", err), c)
		return
	}

	// 注册即登录，签发JWT Token
	token, err := jwts.GetToken(jwts.ClaimsUserInfo{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		log.Errorf("token生成失败 %s", err)
		response.FailWithServer("注册失败", c)
		return
	}

	log.Infof("创建用户成功 %s 角色 %s", user.Email, user.Role)
	// 返回注册成功结果（Token及用户信息）
	response.OkWithCreated(LoginResponse{
		Token: token,
		User:  profile(user),
	}, c)
}
