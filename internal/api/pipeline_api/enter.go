package pipeline_api

// File: internal/api/pipeline_api/enter.go
// Description: 流水线扫描结果API接口入口

// PipelineApi 流水线API结构体
type PipelineApi struct {
}
