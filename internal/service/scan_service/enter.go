package scan_service

// File: internal/service/scan_service/enter.go
// Description: 扫描结果归一化服务模块，将Trivy与Semgrep的原始扫描输出
// 转换为平台统一的漏洞记录结构，并统计流水线扫描严重级别分布

import (
	"fmt"
	"sentinelops/internal/models"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TrivyVulnerability Trivy单条漏洞原始结构
type TrivyVulnerability struct {
	VulnerabilityID  string   `json:"VulnerabilityID"`  // CVE编号
	PkgName          string   `json:"PkgName"`          // 受影响包名
	InstalledVersion string   `json:"InstalledVersion"` // 当前安装版本
	FixedVersion     string   `json:"FixedVersion"`     // 修复版本
	Title            string   `json:"Title"`            // 漏洞标题
	Description      string   `json:"Description"`      // 漏洞描述
	Severity         string   `json:"Severity"`         // 严重级别（大写）
	References       []string `json:"References"`       // 参考链接
}

// TrivyResult Trivy单个扫描目标的结果
type TrivyResult struct {
	Target          string               `json:"Target"`          // 扫描目标（镜像层、锁文件等）
	Type            string               `json:"Type"`            // 目标类型
	Vulnerabilities []TrivyVulnerability `json:"Vulnerabilities"` // 漏洞列表
}

// TrivyReport Trivy扫描报告顶层结构
type TrivyReport struct {
	ArtifactName string        `json:"ArtifactName"` // 被扫描产物名称
	Results      []TrivyResult `json:"Results"`      // 各目标扫描结果
}

// SemgrepFinding Semgrep单条发现的原始结构
type SemgrepFinding struct {
	CheckID string `json:"check_id"` // 规则ID
	Path    string `json:"path"`     // 命中文件路径
	Start   struct {
		Line int `json:"line"` // 起始行号
		Col  int `json:"col"`  // 起始列号
	} `json:"start"`
	Extra struct {
		Message  string `json:"message"`  // 规则描述
		Severity string `json:"severity"` // ERROR WARNING INFO
		Fix      string `json:"fix"`      // 规则建议的修复写法
		Lines    string `json:"lines"`    // 命中的源码片段
		Metadata struct {
			Cwe        []string `json:"cwe"`        // CWE编号列表
			References []string `json:"references"` // 参考链接
		} `json:"metadata"`
	} `json:"extra"`
}

// SemgrepReport Semgrep扫描报告顶层结构
type SemgrepReport struct {
	Results []SemgrepFinding `json:"results"` // 发现列表
}

// Summary 流水线扫描严重级别分布统计
type Summary struct {
	TotalIssues int `json:"totalIssues"` // 问题总数
	Critical    int `json:"critical"`
	High        int `json:"high"`
	Medium      int `json:"medium"`
	Low         int `json:"low"`
}

// normalizeSeverity 将Trivy严重级别归一化为平台小写级别，未知级别按medium处理
func normalizeSeverity(s string) string {
	switch strings.ToLower(s) {
	case "critical":
		return "critical"
	case "high":
		return "high"
	case "medium":
		return "medium"
	case "low":
		return "low"
	default:
		return "medium"
	}
}

// semgrepSeverity 将Semgrep严重级别映射为平台级别
// ERROR -> critical，WARNING -> high，INFO -> medium，其余 -> low
func semgrepSeverity(s string) string {
	switch strings.ToUpper(s) {
	case "ERROR":
		return "critical"
	case "WARNING":
		return "high"
	case "INFO":
		return "medium"
	default:
		return "low"
	}
}

// NormalizeTrivy 将Trivy扫描报告归一化为漏洞记录列表
// 单条记录缺失关键字段时跳过并记录错误，不影响其余记录
func NormalizeTrivy(report TrivyReport, projectName, pipelineBuild string) (records []models.VulnerabilityModel, errs []error) {
	now := time.Now()
	for _, result := range report.Results {
		for _, v := range result.Vulnerabilities {
			if v.VulnerabilityID == "" && v.Title == "" {
				errs = append(errs, fmt.Errorf("trivy记录缺少漏洞标识 target=%s pkg=%s", result.Target, v.PkgName))
				continue
			}
			title := v.Title
			if title == "" {
				title = fmt.Sprintf("%s in %s", v.VulnerabilityID, v.PkgName)
			}
			records = append(records, models.VulnerabilityModel{
				VulnID:   fmt.Sprintf("VULN-%s", uuid.New().String()),
				Title:    title,
				Severity: normalizeSeverity(v.Severity),
				CveID:    v.VulnerabilityID,
				Source:   "trivy",
				ScanType: "container",
				Status:   "open",
				Component: models.Component{
					Name:    v.PkgName,
					Version: v.InstalledVersion,
					Type:    result.Type,
					Path:    result.Target,
				},
				FixedVersion:  v.FixedVersion,
				Description:   v.Description,
				References:    v.References,
				ProjectName:   projectName,
				PipelineBuild: pipelineBuild,
				DetectedAt:    now,
			})
		}
	}
	return records, errs
}

// NormalizeSemgrep 将Semgrep扫描报告归一化为漏洞记录列表
func NormalizeSemgrep(report SemgrepReport, projectName, pipelineBuild string) (records []models.VulnerabilityModel, errs []error) {
	now := time.Now()
	for _, f := range report.Results {
		if f.CheckID == "" {
			errs = append(errs, fmt.Errorf("semgrep记录缺少规则标识 path=%s", f.Path))
			continue
		}
		cve := ""
		if len(f.Extra.Metadata.Cwe) > 0 {
			cve = f.Extra.Metadata.Cwe[0]
		}
		records = append(records, models.VulnerabilityModel{
			VulnID:   fmt.Sprintf("VULN-%s", uuid.New().String()),
			Title:    f.CheckID,
			Severity: semgrepSeverity(f.Extra.Severity),
			CveID:    cve,
			Source:   "semgrep",
			ScanType: "sast",
			Status:   "open",
			Component: models.Component{
				Name: f.Path,
				Type: "code",
				Path: fmt.Sprintf("%s:%d", f.Path, f.Start.Line),
			},
			Description:   f.Extra.Message,
			Remediation:   f.Extra.Fix,
			References:    f.Extra.Metadata.References,
			ProjectName:   projectName,
			PipelineBuild: pipelineBuild,
			DetectedAt:    now,
			Metadata: map[string]string{
				"line": strconv.Itoa(f.Start.Line),
				"col":  strconv.Itoa(f.Start.Col),
				"code": f.Extra.Lines,
			},
		})
	}
	return records, errs
}

// CountTrivySeverities 统计Trivy报告中各严重级别的漏洞数量，未知级别计入low
func CountTrivySeverities(report TrivyReport) (s Summary) {
	for _, result := range report.Results {
		for _, v := range result.Vulnerabilities {
			s.TotalIssues++
			switch strings.ToLower(v.Severity) {
			case "critical":
				s.Critical++
			case "high":
				s.High++
			case "medium":
				s.Medium++
			default:
				s.Low++
			}
		}
	}
	return s
}
