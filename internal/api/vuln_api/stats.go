package vuln_api

// File: internal/api/vuln_api/stats.go
// Description: 漏洞统计API接口，按级别/状态/来源分组计数并返回高频CVE Top10

import (
	"sentinelops/internal/global"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GroupCount 单个分组的统计结果
type GroupCount struct {
	Key   string `json:"key" gorm:"column:key"`     // 分组维度值
	Count int64  `json:"count" gorm:"column:count"` // 记录数量
}

// StatsResponse 漏洞统计响应结构体
type StatsResponse struct {
	Total      int64        `json:"total"`      // 漏洞总数
	Open       int64        `json:"open"`       // 未修复数（open + in_progress）
	BySeverity []GroupCount `json:"bySeverity"` // 按严重级别分布
	ByStatus   []GroupCount `json:"byStatus"`   // 按状态分布
	BySource   []GroupCount `json:"bySource"`   // 按来源分布
	TopCves    []GroupCount `json:"topCves"`    // 高频CVE Top10
}

// groupBy 按指定字段分组计数
func groupBy(field string) (list []GroupCount, err error) {
	err = global.DB.Model(&models.VulnerabilityModel{}).
		Select(field + " as `key`, count(*) as `count`").
		Group(field).
		Order("`count` desc").
		Scan(&list).Error
	return
}

// StatsView 漏洞统计接口处理函数
func (VulnApi) StatsView(c *gin.Context) {
	var data StatsResponse
	db := global.DB.Model(&models.VulnerabilityModel{})

	if err := db.Count(&data.Total).Error; err != nil {
		logrus.Errorf("漏洞统计查询失败 %s", err)
		response.FailWithServer("漏洞统计查询失败", c)
		return
	}
	global.DB.Model(&models.VulnerabilityModel{}).
		Where("status IN ?", []string{"open", "in_progress"}).
		Count(&data.Open)

	var err error
	if data.BySeverity, err = groupBy("severity"); err != nil {
		logrus.Errorf("漏洞级别分布查询失败 %s", err)
		response.FailWithServer("漏洞统计查询失败", c)
		return
	}
	data.ByStatus, _ = groupBy("status")
	data.BySource, _ = groupBy("source")

	// 高频CVE Top10，排除无CVE编号的记录
	global.DB.Model(&models.VulnerabilityModel{}).
		Select("cve_id as `key`, count(*) as `count`").
		Where("cve_id != ''").
		Group("cve_id").
		Order("`count` desc").
		Limit(10).
		Scan(&data.TopCves)

	response.OkWithData(data, c)
}
