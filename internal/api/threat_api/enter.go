package threat_api

// File: internal/api/threat_api/enter.go
// Description: ML威胁分析API接口入口

// ThreatApi 威胁分析API结构体
type ThreatApi struct {
}
