package wazuh_service

// File: internal/service/wazuh_service/enter.go
// Description: Wazuh代理管理API客户端模块，封装token认证、代理列表/详情/统计
// 查询及代理重启操作，Wazuh不可用时读接口降级为模拟数据，写接口直接报错

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sentinelops/internal/global"
	"time"

	"github.com/sirupsen/logrus"
)

// Agent Wazuh代理信息
type Agent struct {
	ID            string `json:"id"`            // 代理ID
	Name          string `json:"name"`          // 代理名称
	IP            string `json:"ip"`            // 代理IP
	Status        string `json:"status"`        // 状态 active disconnected never_connected
	OS            string `json:"os"`            // 操作系统
	Version       string `json:"version"`       // 代理版本
	LastKeepAlive string `json:"lastKeepAlive"` // 最后心跳时间
	Group         string `json:"group"`         // 所属分组
}

// StatsSummary 代理状态统计
type StatsSummary struct {
	Total          int `json:"total"`          // 代理总数
	Active         int `json:"active"`         // 在线数
	Disconnected   int `json:"disconnected"`   // 离线数
	NeverConnected int `json:"neverConnected"` // 从未连接数
}

// client 构建带超时的HTTP客户端，Wazuh默认自签证书，跳过校验
func client() *http.Client {
	timeout := global.Config.Wazuh.Timeout
	if timeout <= 0 {
		timeout = 10
	}
	return &http.Client{
		Timeout: time.Duration(timeout) * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

// authenticate 通过基础认证获取Wazuh API的JWT token
func authenticate() (string, error) {
	cfg := global.Config.Wazuh
	req, err := http.NewRequest(http.MethodPost, cfg.Addr+"/security/user/authenticate", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(cfg.User, cfg.Password)
	resp, err := client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("wazuh认证失败 %d %s", resp.StatusCode, string(raw))
	}
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Data.Token, nil
}

// request 携带token请求Wazuh API并解析响应
func request(method, path string, out any) error {
	token, err := authenticate()
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, global.Config.Wazuh.Addr+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("wazuh请求失败 %d %s", resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// wazuhAgentItem Wazuh API返回的代理原始结构
type wazuhAgentItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IP            string `json:"ip"`
	Status        string `json:"status"`
	Version       string `json:"version"`
	LastKeepAlive string `json:"lastKeepAlive"`
	OS            struct {
		Name string `json:"name"`
	} `json:"os"`
	Group []string `json:"group"`
}

// convertAgent 将Wazuh原始代理结构转换为平台代理结构
func convertAgent(item wazuhAgentItem) Agent {
	group := ""
	if len(item.Group) > 0 {
		group = item.Group[0]
	}
	return Agent{
		ID:            item.ID,
		Name:          item.Name,
		IP:            item.IP,
		Status:        item.Status,
		OS:            item.OS.Name,
		Version:       item.Version,
		LastKeepAlive: item.LastKeepAlive,
		Group:         group,
	}
}

// Agents 查询代理列表，Wazuh不可用时降级为模拟数据
func Agents() []Agent {
	if global.Config.Wazuh.Addr != "" {
		var body struct {
			Data struct {
				AffectedItems []wazuhAgentItem `json:"affected_items"`
			} `json:"data"`
		}
		err := request(http.MethodGet, "/agents", &body)
		if err == nil {
			agents := make([]Agent, 0, len(body.Data.AffectedItems))
			for _, item := range body.Data.AffectedItems {
				agents = append(agents, convertAgent(item))
			}
			return agents
		}
		logrus.Warnf("wazuh代理列表查询失败，使用模拟数据 %s", err)
	}
	return mockAgents()
}

// AgentByID 查询单个代理详情
func AgentByID(id string) (Agent, bool) {
	for _, agent := range Agents() {
		if agent.ID == id {
			return agent, true
		}
	}
	return Agent{}, false
}

// Stats 统计代理状态分布
func Stats() (s StatsSummary) {
	for _, agent := range Agents() {
		s.Total++
		switch agent.Status {
		case "active":
			s.Active++
		case "disconnected":
			s.Disconnected++
		default:
			s.NeverConnected++
		}
	}
	return s
}

// Restart 重启指定代理，写操作不降级，Wazuh不可用时直接返回错误
func Restart(id string) error {
	if global.Config.Wazuh.Addr == "" {
		return errors.New("wazuh未配置，无法执行代理重启")
	}
	return request(http.MethodPut, fmt.Sprintf("/agents/%s/restart", id), nil)
}

// mockAgents 模拟代理数据，用于Wazuh未部署时的演示与联调
func mockAgents() []Agent {
	now := time.Now()
	return []Agent{
		{
			ID:            "001",
			Name:          "web-server-01",
			IP:            "10.0.1.10",
			Status:        "active",
			OS:            "Ubuntu 22.04",
			Version:       "4.7.0",
			LastKeepAlive: now.Add(-30 * time.Second).Format("2006-01-02 15:04:05"),
			Group:         "web",
		},
		{
			ID:            "002",
			Name:          "db-server-01",
			IP:            "10.0.1.20",
			Status:        "active",
			OS:            "Debian 12",
			Version:       "4.7.0",
			LastKeepAlive: now.Add(-45 * time.Second).Format("2006-01-02 15:04:05"),
			Group:         "database",
		},
		{
			ID:            "003",
			Name:          "legacy-app-01",
			IP:            "10.0.2.30",
			Status:        "disconnected",
			OS:            "CentOS 7",
			Version:       "4.5.2",
			LastKeepAlive: now.Add(-2 * time.Hour).Format("2006-01-02 15:04:05"),
			Group:         "legacy",
		},
	}
}
