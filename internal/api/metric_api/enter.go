package metric_api

// File: internal/api/metric_api/enter.go
// Description: 安全态势指标API接口入口

// MetricApi 指标API结构体
type MetricApi struct {
}
