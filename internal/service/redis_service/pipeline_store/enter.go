package pipeline_store

// File: internal/service/redis_service/pipeline_store/enter.go
// Description: 流水线扫描结果存储模块，基于Redis列表实现扫描结果的有界存储，
// 新结果头插并裁剪到最近100条，避免结果无限增长

import (
	"context"
	"encoding/json"
	"sentinelops/internal/global"
	"sentinelops/internal/service/scan_service"
)

// pipelineKey 流水线扫描结果的Redis列表Key
const pipelineKey = "pipeline_scan_results"

// maxResults 保留的最近结果条数
const maxResults = 100

// PipelineResult 单次流水线扫描的汇总结果
type PipelineResult struct {
	ID          string               `json:"id"`          // 结果唯一标识
	PipelineID  string               `json:"pipelineId"`  // 流水线标识
	ProjectName string               `json:"projectName"` // 项目名称
	Branch      string               `json:"branch"`      // 分支名称
	CommitSha   string               `json:"commitSha"`   // 提交SHA
	BuildNumber string               `json:"buildNumber"` // 构建号
	Status      string               `json:"status"`      // 扫描状态 passed failed
	ScanType    string               `json:"scanType"`    // 扫描类型 trivy semgrep
	Summary     scan_service.Summary `json:"summary"`     // 严重级别分布统计
	Timestamp   string               `json:"timestamp"`   // 扫描完成时间
}

// MarshalBinary 实现encoding.BinaryMarshaler接口
func (p PipelineResult) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary 实现encoding.BinaryUnmarshaler接口
func (p *PipelineResult) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// Push 头插一条扫描结果并裁剪列表到最近maxResults条
func Push(result PipelineResult) error {
	ctx := context.Background()
	err := global.Redis.LPush(ctx, pipelineKey, result).Err()
	if err != nil {
		return err
	}
	// 裁剪列表，仅保留最近的maxResults条
	return global.Redis.LTrim(ctx, pipelineKey, 0, maxResults-1).Err()
}

// List 分页查询扫描结果，按时间倒序（最新在前）
func List(page, limit int) (results []PipelineResult, count int64, err error) {
	ctx := context.Background()
	count, err = global.Redis.LLen(ctx, pipelineKey).Result()
	if err != nil {
		return nil, 0, err
	}
	start := int64((page - 1) * limit)
	stop := start + int64(limit) - 1
	raws, err := global.Redis.LRange(ctx, pipelineKey, start, stop).Result()
	if err != nil {
		return nil, 0, err
	}
	results = make([]PipelineResult, 0, len(raws))
	for _, raw := range raws {
		var result PipelineResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, count, nil
}

// Latest 查询最近一条扫描结果
func Latest() (result PipelineResult, ok bool) {
	err := global.Redis.LIndex(context.Background(), pipelineKey, 0).Scan(&result)
	if err != nil {
		return result, false
	}
	return result, true
}

// All 查询全部已保留的扫描结果，用于统计聚合
func All() (results []PipelineResult, err error) {
	raws, err := global.Redis.LRange(context.Background(), pipelineKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	results = make([]PipelineResult, 0, len(raws))
	for _, raw := range raws {
		var result PipelineResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
