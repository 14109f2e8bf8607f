package agent_api

// File: internal/api/agent_api/enter.go
// Description: Wazuh代理管理API接口入口

// AgentApi 代理API结构体
type AgentApi struct {
}
