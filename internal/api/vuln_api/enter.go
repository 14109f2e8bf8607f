package vuln_api

// File: internal/api/vuln_api/enter.go
// Description: 漏洞管理API接口入口

// VulnApi 漏洞API结构体
type VulnApi struct {
}
