package auth_api

// File: internal/api/auth_api/enter.go
// Description: 认证相关API接口入口

// AuthApi 认证API结构体
type AuthApi struct {
}
