package flags

// File: internal/flags/seed.go
// Description: 演示数据写入模块，创建默认账号并向告警索引、漏洞库、
// 威胁索引写入示例数据，用于本地联调与演示环境初始化

import (
	"context"
	"fmt"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/models"
	"sentinelops/internal/service/user_service"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Seed 写入演示数据
func Seed() {
	seedUsers()
	seedAlerts()
	seedVulns()
	seedThreats()
	logrus.Infof("演示数据写入完成")
}

// seedUsers 创建默认演示账号
func seedUsers() {
	us := user_service.NewUserService(global.Log)
	accounts := []user_service.UserCreateRequest{
		{Email: "admin@sentinelops.local", Password: "Admin@12345", Name: "平台管理员", Role: models.RoleAdmin},
		{Email: "analyst@sentinelops.local", Password: "Analyst@12345", Name: "安全分析师", Role: models.RoleAnalyst},
		{Email: "viewer@sentinelops.local", Password: "Viewer@12345", Name: "只读访客", Role: models.RoleViewer},
	}
	for _, account := range accounts {
		if _, err := us.Create(account); err != nil {
			logrus.Warnf("演示账号创建跳过 %s", err)
		}
	}
}

// seedAlerts 写入示例告警
func seedAlerts() {
	now := time.Now()
	alerts := []es_models.AlertModel{
		{
			Source: "wazuh", SourceIp: "203.0.113.45", DestIp: "10.0.1.10",
			Severity: "critical", Category: "intrusion",
			Rule:    es_models.AlertRule{ID: "5710", Name: "sshd: brute force trying to get access", Description: "多次SSH认证失败"},
			Message: "检测到针对web-server-01的SSH暴力破解", Status: es_models.AlertStatusNew,
			Tags: []string{"ssh", "brute-force"},
		},
		{
			Source: "wazuh", SourceIp: "198.51.100.23", DestIp: "10.0.1.20",
			Severity: "high", Category: "malware",
			Rule:    es_models.AlertRule{ID: "52502", Name: "clamav: virus detected", Description: "病毒文件落盘"},
			Message: "db-server-01检测到恶意文件", Status: es_models.AlertStatusInvestigating,
			Tags: []string{"malware"},
		},
		{
			Source: "ids", SourceIp: "192.0.2.77", DestIp: "10.0.1.10",
			Severity: "medium", Category: "scan",
			Rule:    es_models.AlertRule{ID: "40101", Name: "portscan detected", Description: "端口扫描行为"},
			Message: "来自192.0.2.77的端口扫描", Status: es_models.AlertStatusNew,
		},
	}
	ctx := context.Background()
	for i, alert := range alerts {
		alert.AlertID = fmt.Sprintf("ALERT-%s", uuid.New().String())
		alert.Timestamp = now.Add(-time.Duration(i) * time.Hour).Format(time.DateTime)
		_, err := global.ES.Index().
			Index(alert.Index()).
			Id(alert.AlertID).
			BodyJson(alert).
			Do(ctx)
		if err != nil {
			logrus.Warnf("示例告警写入失败 %s", err)
		}
	}
}

// seedVulns 写入示例漏洞
func seedVulns() {
	now := time.Now()
	vulns := []models.VulnerabilityModel{
		{
			VulnID: fmt.Sprintf("VULN-%s", uuid.New().String()),
			Title:  "lodash原型链污染", Severity: "critical", CveID: "CVE-2019-10744",
			Source: "trivy", ScanType: "container", Status: "open",
			Component:    models.Component{Name: "lodash", Version: "4.17.11", Type: "library", Path: "package-lock.json"},
			FixedVersion: "4.17.12", ProjectName: "payment-service", DetectedAt: now,
		},
		{
			VulnID: fmt.Sprintf("VULN-%s", uuid.New().String()),
			Title:  "SQL语句拼接用户输入", Severity: "high",
			Source: "semgrep", ScanType: "sast", Status: "open",
			Component:   models.Component{Name: "src/repo/order.js", Type: "code", Path: "src/repo/order.js:42"},
			Description: "检测到SQL注入风险", ProjectName: "order-service", DetectedAt: now,
		},
	}
	for i := range vulns {
		if err := global.DB.Create(&vulns[i]).Error; err != nil {
			logrus.Warnf("示例漏洞写入失败 %s", err)
		}
	}
}

// seedThreats 写入示例威胁评分
func seedThreats() {
	threat := es_models.ThreatModel{
		ThreatID:       fmt.Sprintf("THREAT-%s", uuid.New().String()),
		Timestamp:      time.Now().Format(time.DateTime),
		SourceIp:       "203.0.113.45",
		ThreatScore:    87.5,
		Classification: es_models.ClassificationAttack,
		Confidence:     0.91,
		Features:       map[string]float64{"alert_count": 6, "failed_logins": 42},
		ModelVersion:   "mock-1.0.0",
	}
	_, err := global.ES.Index().
		Index(threat.Index()).
		Id(threat.ThreatID).
		BodyJson(threat).
		Do(context.Background())
	if err != nil {
		logrus.Warnf("示例威胁评分写入失败 %s", err)
	}
}
