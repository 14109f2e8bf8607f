package auth_api

// File: internal/api/auth_api/login.go
// Description: 用户登录API接口

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/service/log_service"
	"sentinelops/internal/utils/captcha"
	"sentinelops/internal/utils/jwts"
	"sentinelops/internal/utils/pwd"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
)

// LoginRequest 用户登录请求参数结构体
type LoginRequest struct {
	Email       string `json:"email" binding:"required,email" label:"邮箱"` // 登录邮箱（必填）
	Password    string `json:"password" binding:"required" label:"密码"`    // 密码（必填）
	CaptchaID   string `json:"captchaID"`                                   // 验证码ID（启用验证码时必填）
	CaptchaCode string `json:"captchaCode"`                                 // 验证码内容（启用验证码时必填）
}

// LoginResponse 用户登录响应结构体
type LoginResponse struct {
	Token string      `json:"token"` // JWT Token
	User  UserProfile `json:"user"`  // 用户信息
}

// UserProfile 对外输出的用户信息结构体
type UserProfile struct {
	UserID        uint   `json:"userID"`        // 用户ID
	Email         string `json:"email"`         // 登录邮箱
	Name          string `json:"name"`          // 显示名称
	Role          string `json:"role"`          // 用户角色
	LastLoginDate string `json:"lastLoginDate"` // 最后登录时间
}

// profile 将用户模型转换为对外输出结构
func profile(user models.UserModel) UserProfile {
	lastLogin := ""
	if user.LastLoginDate != nil {
		lastLogin = user.LastLoginDate.Format(time.DateTime)
	}
	return UserProfile{
		UserID:        user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		LastLoginDate: lastLogin,
	}
}

// LoginView 用户登录接口处理函数
func (AuthApi) LoginView(c *gin.Context) {
	// 获取绑定的登录请求参数
	cr := middleware.GetBind[LoginRequest](c)
	log := middleware.GetLog(c)
	// 创建用户登录日志服务
	loginLog := log_service.NewLoginLog(c)

	// 启用图片验证码时校验验证码
	if global.Config.System.Captcha {
		if cr.CaptchaID == "" || cr.CaptchaCode == "" {
			loginLog.FailLog(cr.Email, "未输入图片验证码")
			response.FailWithMsg("请输入图片验证码", c)
			return
		}
		if !captcha.CaptchaStore.Verify(cr.CaptchaID, cr.CaptchaCode, true) {
			loginLog.FailLog(cr.Email, "图片验证码验证失败")
			response.FailWithMsg("图片验证码验证失败", c)
			return
		}
	}

	// 根据邮箱查询用户信息
	var user models.UserModel
	if err := global.DB.Take(&user, "email = ?", cr.Email).Error; err != nil {
		log.Warnf("登录失败 邮箱未注册 %s", cr.Email)
		loginLog.FailLog(cr.Email, "邮箱未注册")
		response.FailWithAuth("邮箱或密码错误", c)
		return
	}

	// 验证密码是否匹配
	if !pwd.CompareHashAndPassword(user.Password, cr.Password) {
		log.Warnf("登录失败 密码错误 %s", cr.Email)
		loginLog.FailLog(cr.Email, "密码错误")
		response.FailWithAuth("邮箱或密码错误", c)
		return
	}

	// 生成JWT Token
	token, err := jwts.GetToken(jwts.ClaimsUserInfo{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		log.Errorf("token生成失败 %s", err)
		response.FailWithServer("登录失败", c)
		return
	}

	// 更新用户最后登录时间
	now := time.Now()
	if err := global.DB.Model(&user).Update("last_login_date", now).Error; err != nil {
		log.Errorf("更新最后登录时间失败 %s", err)
	}
	user.LastLoginDate = &now

	log.Infof("用户登录成功 %s", user.Email)
	// 登录成功，记录登录日志
	loginLog.SuccessLog(user.ID, cr.Email)
	// 返回登录成功结果（Token及用户信息）
	response.OkWithData(LoginResponse{
		Token: token,
		User:  profile(user),
	}, c)
}
