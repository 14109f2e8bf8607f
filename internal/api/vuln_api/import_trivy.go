package vuln_api

// File: internal/api/vuln_api/import_trivy.go
// Description: Trivy扫描报告导入API接口，归一化后逐条入库，
// 单条失败不中断整批，返回成功/失败统计

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/service/scan_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ImportTrivyRequest Trivy报告导入请求参数结构体
type ImportTrivyRequest struct {
	ProjectName   string                  `json:"projectName" binding:"required" label:"项目名称"` // 所属项目（必填）
	PipelineBuild string                  `json:"pipelineBuild"`                                 // 流水线构建号
	Report        scan_service.TrivyReport `json:"report" binding:"required" label:"扫描报告"`     // Trivy原始报告（必填）
}

// ImportResponse 扫描报告导入结果统计
type ImportResponse struct {
	Total    int      `json:"total"`    // 报告中的记录总数
	Inserted int      `json:"inserted"` // 入库成功数
	Failed   int      `json:"failed"`   // 失败数（归一化失败+入库失败）
	Errors   []string `json:"errors"`   // 失败详情
}

// ImportTrivyView Trivy扫描报告导入接口处理函数
func (VulnApi) ImportTrivyView(c *gin.Context) {
	cr := middleware.GetBind[ImportTrivyRequest](c)
	log := middleware.GetLog(c)

	records, errs := scan_service.NormalizeTrivy(cr.Report, cr.ProjectName, cr.PipelineBuild)

	result := ImportResponse{Total: len(records) + len(errs)}
	for _, err := range errs {
		result.Failed++
		result.Errors = append(result.Errors, err.Error())
	}

	// 逐条入库，失败计数但不中断，入库成功的记录推送vuln:new事件
	for i := range records {
		if err := global.DB.Create(&records[i]).Error; err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Inserted++
		mq_service.PublishEvent("vuln:new", records[i], middleware.GetLogID(c))
	}

	log.Infof("trivy报告导入完成 项目 %s 总数 %d 成功 %d 失败 %d",
		cr.ProjectName, result.Total, result.Inserted, result.Failed)

	response.OkWithCreated(result, c)
}
