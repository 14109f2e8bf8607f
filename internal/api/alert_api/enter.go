package alert_api

// File: internal/api/alert_api/enter.go
// Description: 安全告警API接口入口

// AlertApi 告警API结构体
type AlertApi struct {
}
