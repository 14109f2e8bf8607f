package models

// File: internal/models/vulnerability_model.go
// Description: 漏洞表模型，存储来自Trivy、Semgrep及人工录入的漏洞记录

import "time"

// Component 受影响组件信息，内嵌到漏洞记录中
type Component struct {
	Name    string `gorm:"size:255" json:"name"`   // 组件名称（包名或文件路径）
	Version string `gorm:"size:64" json:"version"` // 组件版本
	Type    string `gorm:"size:32" json:"type"`    // 组件类型（library、code等）
	Path    string `gorm:"size:255" json:"path"`   // 组件所在路径
}

// VulnerabilityModel 漏洞表
type VulnerabilityModel struct {
	Model
	VulnID        string            `gorm:"size:64;uniqueIndex" json:"vulnId"`                           // 漏洞唯一业务ID
	Title         string            `gorm:"size:255" json:"title"`                                       // 漏洞标题
	Severity      string            `gorm:"size:16;index" json:"severity"`                               // 严重级别 critical high medium low
	CveID         string            `gorm:"size:32;index" json:"cveId"`                                  // CVE编号
	Source        string            `gorm:"size:32" json:"source"`                                       // 来源 trivy semgrep manual
	ScanType      string            `gorm:"size:16" json:"scanType"`                                     // 扫描类型 dependency sast container
	Status        string            `gorm:"size:16;default:open;index" json:"status"`                    // 状态 open in_progress fixed wont_fix
	Component     Component         `gorm:"embedded;embeddedPrefix:component_" json:"affectedComponent"` // 受影响组件
	FixedVersion  string            `gorm:"size:64" json:"fixedVersion"`                                 // 修复版本
	Description   string            `gorm:"type:text" json:"description"`                                // 详细描述
	Remediation   string            `gorm:"type:text" json:"remediation"`                                // 修复建议
	References    []string          `gorm:"serializer:json" json:"references"`                           // 参考链接列表
	ProjectName   string            `gorm:"size:128;index" json:"projectName"`                           // 所属项目
	PipelineBuild string            `gorm:"size:64" json:"pipelineBuild"`                                // 发现该漏洞的流水线构建号
	DetectedAt    time.Time         `json:"detectedAt"`                                                  // 首次发现时间
	FixedAt       *time.Time        `json:"fixedAt"`                                                     // 修复时间
	DueDate       *time.Time        `json:"dueDate"`                                                     // 处置截止时间
	Metadata      map[string]string `gorm:"serializer:json" json:"metadata"`                             // 扩展元数据
}

func (VulnerabilityModel) TableName() string {
	return "vulnerabilities"
}
