package vuln_api

// File: internal/api/vuln_api/create.go
// Description: 漏洞手工录入API接口

import (
	"fmt"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/service/mq_service"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateRequest 漏洞手工录入请求参数结构体
type CreateRequest struct {
	Title       string            `json:"title" binding:"required" label:"标题"`                                      // 漏洞标题（必填）
	Severity    string            `json:"severity" binding:"required,oneof=critical high medium low" label:"级别"`  // 严重级别（必填）
	CveID       string            `json:"cveId"`                                                                     // CVE编号
	ScanType    string            `json:"scanType" binding:"omitempty,oneof=dependency sast container"`             // 扫描类型
	Component   models.Component  `json:"affectedComponent"`                                                         // 受影响组件
	Description string            `json:"description"`                                                               // 详细描述
	Remediation string            `json:"remediation"`                                                               // 修复建议
	References  []string          `json:"references"`                                                                // 参考链接
	ProjectName string            `json:"projectName"`                                                               // 所属项目
	DueDate     *time.Time        `json:"dueDate"`                                                                   // 处置截止时间
	Metadata    map[string]string `json:"metadata"`                                                                  // 扩展元数据
}

// CreateView 漏洞手工录入接口处理函数
func (VulnApi) CreateView(c *gin.Context) {
	cr := middleware.GetBind[CreateRequest](c)
	log := middleware.GetLog(c)

	vuln := models.VulnerabilityModel{
		VulnID:      fmt.Sprintf("VULN-%s", uuid.New().String()),
		Title:       cr.Title,
		Severity:    cr.Severity,
		CveID:       cr.CveID,
		Source:      "manual",
		ScanType:    cr.ScanType,
		Status:      "open",
		Component:   cr.Component,
		Description: cr.Description,
		Remediation: cr.Remediation,
		References:  cr.References,
		ProjectName: cr.ProjectName,
		DetectedAt:  time.Now(),
		DueDate:     cr.DueDate,
		Metadata:    cr.Metadata,
	}

	if err := global.DB.Create(&vuln).Error; err != nil {
		log.WithField("title", cr.Title).Errorf("漏洞创建失败 %s", err)
		response.FailWithMsg("漏洞创建失败", c)
		return
	}

	log.Infof("漏洞记录创建成功 %s 级别 %s", vuln.VulnID, vuln.Severity)
	// 经MQ推送vuln:new事件
	mq_service.PublishEvent("vuln:new", vuln, middleware.GetLogID(c))

	response.OkWithCreated(vuln, c)
}
