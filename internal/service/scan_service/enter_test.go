package scan_service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trivyReport() TrivyReport {
	return TrivyReport{
		ArtifactName: "payment-service:1.4.2",
		Results: []TrivyResult{
			{
				Target: "package-lock.json",
				Type:   "npm",
				Vulnerabilities: []TrivyVulnerability{
					{
						VulnerabilityID:  "CVE-2019-10744",
						PkgName:          "lodash",
						InstalledVersion: "4.17.11",
						FixedVersion:     "4.17.12",
						Title:            "lodash: prototype pollution",
						Severity:         "CRITICAL",
					},
					{
						VulnerabilityID:  "CVE-2021-23337",
						PkgName:          "lodash",
						InstalledVersion: "4.17.11",
						Severity:         "UNKNOWN",
					},
				},
			},
		},
	}
}

func TestNormalizeTrivy(t *testing.T) {
	records, errs := NormalizeTrivy(trivyReport(), "payment-service", "build-88")
	require.Empty(t, errs)
	require.Len(t, records, 2)

	first := records[0]
	assert.True(t, strings.HasPrefix(first.VulnID, "VULN-"))
	assert.Equal(t, "lodash: prototype pollution", first.Title)
	assert.Equal(t, "critical", first.Severity)
	assert.Equal(t, "CVE-2019-10744", first.CveID)
	assert.Equal(t, "trivy", first.Source)
	assert.Equal(t, "container", first.ScanType)
	assert.Equal(t, "open", first.Status)
	assert.Equal(t, "lodash", first.Component.Name)
	assert.Equal(t, "4.17.11", first.Component.Version)
	assert.Equal(t, "package-lock.json", first.Component.Path)
	assert.Equal(t, "4.17.12", first.FixedVersion)
	assert.Equal(t, "payment-service", first.ProjectName)
	assert.Equal(t, "build-88", first.PipelineBuild)

	// 未知级别的漏洞记录按medium落库
	second := records[1]
	assert.Equal(t, "medium", second.Severity)
	assert.Equal(t, "CVE-2021-23337 in lodash", second.Title) // 无标题时拼接生成
}

func TestNormalizeTrivySkipsInvalidRecord(t *testing.T) {
	report := TrivyReport{
		Results: []TrivyResult{
			{
				Target: "go.sum",
				Vulnerabilities: []TrivyVulnerability{
					{PkgName: "broken"}, // 既无CVE编号也无标题
					{VulnerabilityID: "CVE-2024-0001", PkgName: "x/net", Severity: "HIGH"},
				},
			},
		},
	}
	records, errs := NormalizeTrivy(report, "gateway", "")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "broken")
	require.Len(t, records, 1)
	assert.Equal(t, "high", records[0].Severity)
}

func TestNormalizeSemgrep(t *testing.T) {
	report := SemgrepReport{Results: []SemgrepFinding{
		{
			CheckID: "go.lang.security.audit.sqli.string-concat",
			Path:    "internal/repo/order.go",
		},
	}}
	report.Results[0].Start.Line = 42
	report.Results[0].Start.Col = 7
	report.Results[0].Extra.Message = "SQL built from user input"
	report.Results[0].Extra.Severity = "ERROR"
	report.Results[0].Extra.Fix = "use parameterized queries"
	report.Results[0].Extra.Lines = `rows, _ := db.Query("SELECT * FROM orders WHERE id = " + id)`
	report.Results[0].Extra.Metadata.Cwe = []string{"CWE-89"}

	records, errs := NormalizeSemgrep(report, "order-service", "build-12")
	require.Empty(t, errs)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "go.lang.security.audit.sqli.string-concat", record.Title)
	assert.Equal(t, "critical", record.Severity)
	assert.Equal(t, "CWE-89", record.CveID)
	assert.Equal(t, "semgrep", record.Source)
	assert.Equal(t, "sast", record.ScanType)
	assert.Equal(t, "code", record.Component.Type)
	assert.Equal(t, "internal/repo/order.go:42", record.Component.Path)
	assert.Equal(t, "SQL built from user input", record.Description)
	assert.Equal(t, "use parameterized queries", record.Remediation)
	assert.Equal(t, "42", record.Metadata["line"])
	assert.Equal(t, "7", record.Metadata["col"])
	assert.Contains(t, record.Metadata["code"], "db.Query")
}

func TestNormalizeSemgrepSkipsMissingCheckID(t *testing.T) {
	report := SemgrepReport{Results: []SemgrepFinding{{Path: "a.go"}}}
	records, errs := NormalizeSemgrep(report, "demo", "")
	assert.Empty(t, records)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "a.go")
}

func TestSemgrepSeverity(t *testing.T) {
	assert.Equal(t, "critical", semgrepSeverity("ERROR"))
	assert.Equal(t, "high", semgrepSeverity("WARNING"))
	assert.Equal(t, "medium", semgrepSeverity("INFO"))
	assert.Equal(t, "medium", semgrepSeverity("info")) // 大小写不敏感
	assert.Equal(t, "low", semgrepSeverity("EXPERIMENT"))
}

func TestCountTrivySeverities(t *testing.T) {
	summary := CountTrivySeverities(trivyReport())
	assert.Equal(t, 2, summary.TotalIssues)
	assert.Equal(t, 1, summary.Critical)
	assert.Equal(t, 0, summary.High)
	assert.Equal(t, 0, summary.Medium)
	assert.Equal(t, 1, summary.Low) // 统计口径里未知级别计入low
}
