package vuln_api

// File: internal/api/vuln_api/update.go
// Description: 漏洞更新API接口，支持状态流转与处置字段修订，
// 状态置为fixed时自动补全修复时间

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/response"
	"time"

	"github.com/gin-gonic/gin"
)

// UpdateUri 漏洞更新路径参数
type UpdateUri struct {
	ID string `uri:"id" binding:"required"` // 漏洞业务ID
}

// UpdateRequest 漏洞更新请求参数结构体，均为可选字段
type UpdateRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=open in_progress fixed wont_fix"` // 状态
	Severity    *string    `json:"severity" binding:"omitempty,oneof=critical high medium low"`      // 严重级别修订
	Remediation *string    `json:"remediation"`                                                      // 修复建议
	DueDate     *time.Time `json:"dueDate"`                                                          // 处置截止时间
}

// UpdateView 漏洞更新接口处理函数
func (VulnApi) UpdateView(c *gin.Context) {
	uri := middleware.GetBind[UpdateUri](c)
	log := middleware.GetLog(c)

	var cr UpdateRequest
	if err := c.ShouldBindJSON(&cr); err != nil {
		response.FailWithError(err, c)
		return
	}

	// 按业务ID查询漏洞记录
	var vuln models.VulnerabilityModel
	if err := global.DB.Take(&vuln, "vuln_id = ?", uri.ID).Error; err != nil {
		response.FailWithNotFound("漏洞不存在", c)
		return
	}

	if cr.Status != nil {
		vuln.Status = *cr.Status
		// 状态置为fixed时补全修复时间
		if *cr.Status == "fixed" && vuln.FixedAt == nil {
			now := time.Now()
			vuln.FixedAt = &now
		}
	}
	if cr.Severity != nil {
		vuln.Severity = *cr.Severity
	}
	if cr.Remediation != nil {
		vuln.Remediation = *cr.Remediation
	}
	if cr.DueDate != nil {
		vuln.DueDate = cr.DueDate
	}

	if err := global.DB.Save(&vuln).Error; err != nil {
		log.WithField("vuln_id", vuln.VulnID).Errorf("漏洞更新失败 %s", err)
		response.FailWithServer("漏洞更新失败", c)
		return
	}

	log.Infof("漏洞记录更新成功 %s 状态 %s", vuln.VulnID, vuln.Status)

	response.OkWithData(vuln, c)
}
