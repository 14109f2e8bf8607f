package models

// File: internal/models/user_model.go
// Description: 用户表模型，存储平台账号信息与角色权限

import "time"

// 用户角色常量
const (
	RoleAdmin   = "admin"   // 管理员，拥有全部权限
	RoleAnalyst = "analyst" // 分析师，可创建与更新安全数据
	RoleViewer  = "viewer"  // 访客，只读
)

// UserModel 用户表
type UserModel struct {
	Model
	Email         string     `gorm:"size:128;uniqueIndex" json:"email"`   // 登录邮箱，唯一
	Password      string     `gorm:"size:128" json:"-"`                   // bcrypt密码哈希，不对外输出
	Name          string     `gorm:"size:64" json:"name"`                 // 显示名称
	Role          string     `gorm:"size:16;default:analyst" json:"role"` // 角色 admin analyst viewer
	LastLoginDate *time.Time `json:"lastLoginDate"`                       // 最后登录时间
}

func (UserModel) TableName() string {
	return "users"
}
