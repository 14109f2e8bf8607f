package es_models

// File: internal/es_models/threat_model.go
// Description: Elasticsearch威胁评分数据模型模块，定义ML威胁分析结果的存储结构及索引映射配置

import (
	_ "embed"
	"sentinelops/internal/global"
)

// 威胁分类常量，按评分阈值划分
const (
	ClassificationAttack     = "attack"     // 评分 >= 80
	ClassificationHighRisk   = "high_risk"  // 评分 >= 60
	ClassificationSuspicious = "suspicious" // 评分 >= 40
	ClassificationNormal     = "normal"     // 其余
)

// ThreatModel Elasticsearch威胁评分数据存储结构体，文档ID使用ThreatID
type ThreatModel struct {
	ThreatID       string             `json:"threatId"`       // 威胁记录唯一业务标识
	Timestamp      string             `json:"timestamp"`      // 分析时间
	SourceIp       string             `json:"sourceIp"`       // 被分析的源IP
	ThreatScore    float64            `json:"threatScore"`    // ML威胁评分 0-100
	Classification string             `json:"classification"` // 威胁分类 attack high_risk suspicious normal
	Confidence     float64            `json:"confidence"`     // 模型置信度 0-1
	Features       map[string]float64 `json:"features"`       // 模型输入特征
	RelatedAlerts  []string           `json:"relatedAlerts"`  // 关联的告警ID列表
	ModelVersion   string             `json:"modelVersion"`   // 模型版本
}

// Index 获取威胁评分数据在Elasticsearch中的存储索引名，从全局配置读取
func (threat ThreatModel) Index() string {
	return global.Config.Alert.ThreatIndex
}

//go:embed threat_mapping.json
var threatMapping string

// Mappings 返回Elasticsearch威胁评分索引的映射配置，用于索引初始化
func (threat ThreatModel) Mappings() string {
	return threatMapping
}
