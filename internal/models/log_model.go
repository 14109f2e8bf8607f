package models

// File: internal/models/log_model.go
// Description: 登录日志表模型，记录平台账号的登录审计信息

// 登录状态常量
const (
	LoginSuccess = "success" // 登录成功
	LoginFailed  = "failed"  // 登录失败
)

// LogModel 登录日志表
type LogModel struct {
	Model
	Email    string `gorm:"size:128;index" json:"email"` // 登录邮箱
	IP       string `gorm:"size:64" json:"ip"`           // 来源IP
	Addr     string `gorm:"size:128" json:"addr"`        // IP归属地
	UserID   uint   `json:"userId"`                      // 用户ID，登录失败时为0
	Status   string `gorm:"size:16" json:"status"`       // 登录状态 success failed
	Uas      string `gorm:"size:256" json:"uas"`         // User-Agent
	ErrorMsg string `gorm:"size:128" json:"errorMsg"`    // 失败原因
}

func (LogModel) TableName() string {
	return "login_logs"
}
