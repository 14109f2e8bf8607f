package log_service

// File: internal/service/log_service/login_log.go
// Description: 日志服务模块，负责用户登录审计日志的记录，包括成功/失败登录日志的存储

import (
	"sentinelops/internal/core"
	"sentinelops/internal/global"
	"sentinelops/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginLogService 登录日志服务结构体
type LoginLogService struct {
	IP   string // 客户端IP地址
	Addr string // 客户端地理位置
	Uas  string // 客户端User-Agent
}

// NewLoginLog 创建LoginLogService实例的构造函数
func NewLoginLog(c *gin.Context) *LoginLogService {
	return &LoginLogService{
		IP:   c.ClientIP(),                 // 从上下文获取客户端IP
		Addr: core.GetIpAddr(c.ClientIP()), // 地理位置信息
		Uas:  c.Request.UserAgent(),
	}
}

// SuccessLog 记录登录成功日志
func (l LoginLogService) SuccessLog(userID uint, email string) {
	l.save(userID, email, models.LoginSuccess, "")
}

// FailLog 记录登录失败日志
func (l LoginLogService) FailLog(email string, errorMsg string) {
	l.save(0, email, models.LoginFailed, errorMsg)
}

// save 内部日志存储方法，统一处理登录日志的持久化
func (l LoginLogService) save(userID uint, email string, status string, errorMsg string) {
	global.DB.Create(&models.LogModel{
		Email:    email,
		IP:       l.IP,
		Addr:     l.Addr,
		UserID:   userID,
		Status:   status,
		Uas:      l.Uas,
		ErrorMsg: errorMsg,
	})
}
