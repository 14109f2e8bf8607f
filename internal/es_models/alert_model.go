package es_models

// File: internal/es_models/alert_model.go
// Description: Elasticsearch告警数据模型模块，定义安全告警的存储结构、ES索引名及索引映射配置

import (
	_ "embed"
	"sentinelops/internal/global"
)

// 告警严重级别常量
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// 告警状态常量
const (
	AlertStatusNew           = "new"
	AlertStatusInvestigating = "investigating"
	AlertStatusResolved      = "resolved"
	AlertStatusFalsePositive = "false_positive"
)

// AlertRule 告警命中的检测规则信息
type AlertRule struct {
	ID          string `json:"id"`          // 规则ID
	Name        string `json:"name"`        // 规则名称
	Description string `json:"description"` // 规则描述
}

// AlertNote 告警处置备注
type AlertNote struct {
	Author    string `json:"author"`    // 备注人邮箱
	Content   string `json:"content"`   // 备注内容
	Timestamp string `json:"timestamp"` // 备注时间
}

// AlertModel Elasticsearch告警数据存储结构体，文档ID使用AlertID
type AlertModel struct {
	AlertID          string            `json:"alertId"`          // 告警唯一业务标识
	Timestamp        string            `json:"timestamp"`        // 告警发生时间
	Source           string            `json:"source"`           // 告警来源（wazuh、ids、manual等）
	SourceIp         string            `json:"sourceIp"`         // 攻击源IP地址
	DestIp           string            `json:"destIp"`           // 攻击目标IP地址
	Severity         string            `json:"severity"`         // 严重级别 critical high medium low
	Category         string            `json:"category"`         // 告警分类（intrusion、malware等）
	Rule             AlertRule         `json:"rule"`             // 命中的检测规则
	Message          string            `json:"message"`          // 告警描述信息
	Status           string            `json:"status"`           // 处置状态
	AssignedTo       string            `json:"assignedTo"`       // 当前处置人
	AiThreatScore    float64           `json:"aiThreatScore"`    // ML威胁评分 0-100
	AiClassification string            `json:"aiClassification"` // ML威胁分类
	Tags             []string          `json:"tags"`             // 标签列表
	Metadata         map[string]string `json:"metadata"`         // 扩展元数据
	ResolvedAt       string            `json:"resolvedAt"`       // 解决时间
	ResolvedBy       string            `json:"resolvedBy"`       // 解决人
	Notes            []AlertNote       `json:"notes"`            // 处置备注列表
}

// Index 获取告警数据在Elasticsearch中的存储索引名，从全局配置读取
func (alert AlertModel) Index() string {
	return global.Config.Alert.AlertIndex
}

//go:embed alert_mapping.json
var alertMapping string // 嵌入ES索引映射配置文件，避免硬编码

// Mappings 返回Elasticsearch告警索引的映射配置，用于索引初始化
func (alert AlertModel) Mappings() string {
	return alertMapping
}
