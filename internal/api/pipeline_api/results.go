package pipeline_api

// File: internal/api/pipeline_api/results.go
// Description: 流水线扫描结果API接口，CI侧上报扫描汇总结果，
// 结果存入Redis有界列表并经MQ推送pipeline:completed事件

import (
	"fmt"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/service/redis_service/pipeline_store"
	"sentinelops/internal/service/scan_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubmitRequest 扫描结果上报请求参数结构体
// Summary缺省时由服务端根据report自行统计，防止CI侧伪造计数
type SubmitRequest struct {
	PipelineID  string                    `json:"pipelineId" binding:"required" label:"流水线标识"` // 流水线标识（必填）
	ProjectName string                    `json:"projectName" binding:"required" label:"项目名称"` // 项目名称（必填）
	Branch      string                    `json:"branch"`                                        // 分支名称
	CommitSha   string                    `json:"commitSha"`                                     // 提交SHA
	BuildNumber string                    `json:"buildNumber"`                                   // 构建号
	Status      string                    `json:"status" binding:"omitempty,oneof=passed failed"` // 扫描状态
	ScanType    string                    `json:"scanType" binding:"required,oneof=trivy semgrep" label:"扫描类型"` // 扫描类型（必填）
	Report      *scan_service.TrivyReport `json:"report"`                                        // Trivy原始报告，提交时服务端统计Summary
	Summary     *scan_service.Summary     `json:"summary"`                                       // CI侧预统计的Summary
}

// SubmitView 扫描结果上报接口处理函数
func (PipelineApi) SubmitView(c *gin.Context) {
	cr := middleware.GetBind[SubmitRequest](c)
	log := middleware.GetLog(c)

	// Summary优先由服务端根据原始报告统计
	var summary scan_service.Summary
	switch {
	case cr.Report != nil:
		summary = scan_service.CountTrivySeverities(*cr.Report)
	case cr.Summary != nil:
		summary = *cr.Summary
	default:
		response.FailWithMsg("report与summary至少提交一项", c)
		return
	}

	// 状态缺省按严重级别推断：存在critical/high即failed
	status := cr.Status
	if status == "" {
		status = "passed"
		if summary.Critical > 0 || summary.High > 0 {
			status = "failed"
		}
	}

	result := pipeline_store.PipelineResult{
		ID:          fmt.Sprintf("PIPE-%s", uuid.New().String()),
		PipelineID:  cr.PipelineID,
		ProjectName: cr.ProjectName,
		Branch:      cr.Branch,
		CommitSha:   cr.CommitSha,
		BuildNumber: cr.BuildNumber,
		Status:      status,
		ScanType:    cr.ScanType,
		Summary:     summary,
		Timestamp:   time.Now().Format(time.DateTime),
	}

	if err := pipeline_store.Push(result); err != nil {
		log.WithField("pipeline_id", cr.PipelineID).Errorf("扫描结果存储失败 %s", err)
		response.FailWithServer("扫描结果存储失败", c)
		return
	}

	log.Infof("流水线扫描结果已提交 %s 项目 %s 状态 %s 问题数 %d",
		cr.PipelineID, cr.ProjectName, status, summary.TotalIssues)

	// 经MQ推送pipeline:completed事件
	mq_service.PublishEvent("pipeline:completed", result, middleware.GetLogID(c))

	response.OkWithCreated(result, c)
}

// ListView 扫描结果列表查询接口处理函数，按时间倒序分页
func (PipelineApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[models.PageInfo](c)

	results, count, err := pipeline_store.List(cr.GetPage(), cr.GetLimit())
	if err != nil {
		logrus.Errorf("扫描结果查询失败 %s", err)
		response.FailWithServer("扫描结果查询失败", c)
		return
	}

	response.OkWithPage(results, count, cr.GetPage(), cr.GetLimit(), c)
}

// LatestView 最近一次扫描结果查询接口处理函数
func (PipelineApi) LatestView(c *gin.Context) {
	result, ok := pipeline_store.Latest()
	if !ok {
		response.FailWithNotFound("暂无扫描结果", c)
		return
	}
	response.OkWithData(result, c)
}
