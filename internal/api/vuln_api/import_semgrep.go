package vuln_api

// File: internal/api/vuln_api/import_semgrep.go
// Description: Semgrep扫描报告导入API接口，归一化后逐条入库

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/service/scan_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ImportSemgrepRequest Semgrep报告导入请求参数结构体
type ImportSemgrepRequest struct {
	ProjectName   string                     `json:"projectName" binding:"required" label:"项目名称"` // 所属项目（必填）
	PipelineBuild string                     `json:"pipelineBuild"`                                 // 流水线构建号
	Report        scan_service.SemgrepReport `json:"report" binding:"required" label:"扫描报告"`     // Semgrep原始报告（必填）
}

// ImportSemgrepView Semgrep扫描报告导入接口处理函数
func (VulnApi) ImportSemgrepView(c *gin.Context) {
	cr := middleware.GetBind[ImportSemgrepRequest](c)
	log := middleware.GetLog(c)

	records, errs := scan_service.NormalizeSemgrep(cr.Report, cr.ProjectName, cr.PipelineBuild)

	result := ImportResponse{Total: len(records) + len(errs)}
	for _, err := range errs {
		result.Failed++
		result.Errors = append(result.Errors, err.Error())
	}

	for i := range records {
		if err := global.DB.Create(&records[i]).Error; err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Inserted++
		mq_service.PublishEvent("vuln:new", records[i], middleware.GetLogID(c))
	}

	log.Infof("semgrep报告导入完成 项目 %s 总数 %d 成功 %d 失败 %d",
		cr.ProjectName, result.Total, result.Inserted, result.Failed)

	response.OkWithCreated(result, c)
}
