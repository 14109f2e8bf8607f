package vuln_api

// File: internal/api/vuln_api/list.go
// Description: 漏洞列表查询API接口，支持级别/状态/来源/项目筛选与标题模糊搜索

import (
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListRequest 漏洞列表查询请求参数结构体
type ListRequest struct {
	models.PageInfo        // 嵌入分页基础参数
	Severity        string `form:"severity"`    // 严重级别筛选
	Status          string `form:"status"`      // 状态筛选
	Source          string `form:"source"`      // 来源筛选 trivy semgrep manual
	ScanType        string `form:"scanType"`    // 扫描类型筛选
	ProjectName     string `form:"projectName"` // 所属项目筛选
	CveID           string `form:"cveId"`       // CVE编号筛选
}

// ListView 漏洞列表查询接口处理函数
func (VulnApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	query := global.DB.Model(&models.VulnerabilityModel{})
	if cr.Severity != "" {
		query = query.Where("severity = ?", cr.Severity)
	}
	if cr.Status != "" {
		query = query.Where("status = ?", cr.Status)
	}
	if cr.Source != "" {
		query = query.Where("source = ?", cr.Source)
	}
	if cr.ScanType != "" {
		query = query.Where("scan_type = ?", cr.ScanType)
	}
	if cr.ProjectName != "" {
		query = query.Where("project_name = ?", cr.ProjectName)
	}
	if cr.CveID != "" {
		query = query.Where("cve_id = ?", cr.CveID)
	}
	// 标题模糊搜索
	if cr.Key != "" {
		query = query.Where("title LIKE ?", "%"+cr.Key+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		logrus.Errorf("漏洞统计查询失败 %s", err)
		response.FailWithServer("漏洞查询失败", c)
		return
	}

	var list = make([]models.VulnerabilityModel, 0, cr.GetLimit())
	err := query.Order("detected_at desc").
		Offset(cr.GetOffset()).
		Limit(cr.GetLimit()).
		Find(&list).Error
	if err != nil {
		logrus.Errorf("漏洞列表查询失败 %s", err)
		response.FailWithServer("漏洞查询失败", c)
		return
	}

	response.OkWithPage(list, count, cr.GetPage(), cr.GetLimit(), c)
}
