package metric_api

import (
	"sentinelops/internal/models"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVulnSeverityBreakdown(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.VulnerabilityModel{}))

	now := time.Now()
	vulns := []models.VulnerabilityModel{
		{VulnID: "VULN-1", Title: "a", Severity: "critical", Status: "open", DetectedAt: now},
		{VulnID: "VULN-2", Title: "b", Severity: "critical", Status: "fixed", DetectedAt: now},
		{VulnID: "VULN-3", Title: "c", Severity: "high", Status: "open", DetectedAt: now},
		{VulnID: "VULN-4", Title: "d", Severity: "low", Status: "wont_fix", DetectedAt: now},
	}
	for i := range vulns {
		require.NoError(t, db.Create(&vulns[i]).Error)
	}

	breakdown := vulnSeverityBreakdown(db)
	assert.Equal(t, int64(2), breakdown["critical"])
	assert.Equal(t, int64(1), breakdown["high"])
	assert.Equal(t, int64(1), breakdown["low"])
	assert.NotContains(t, breakdown, "medium")
}
