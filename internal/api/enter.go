package api

// File: internal/api/enter.go
// Description: 系统Api入口

import (
	"sentinelops/internal/api/agent_api"
	"sentinelops/internal/api/alert_api"
	"sentinelops/internal/api/auth_api"
	"sentinelops/internal/api/metric_api"
	"sentinelops/internal/api/pipeline_api"
	"sentinelops/internal/api/threat_api"
	"sentinelops/internal/api/vuln_api"
	"sentinelops/internal/api/ws_api"
)

// Api 全局Api定义
type Api struct {
	AuthApi     auth_api.AuthApi
	AlertApi    alert_api.AlertApi
	VulnApi     vuln_api.VulnApi
	ThreatApi   threat_api.ThreatApi
	MetricApi   metric_api.MetricApi
	AgentApi    agent_api.AgentApi
	PipelineApi pipeline_api.PipelineApi
	WsApi       ws_api.WsApi
}

var App = Api{}
