package vuln_api

import (
	"net/http"
	"net/http/httptest"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUpdateRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	global.Log = logrus.NewEntry(logrus.New())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.VulnerabilityModel{}))
	global.DB = db

	r := gin.New()
	r.PATCH("/api/vulnerabilities/:id", middleware.LogMiddleware,
		middleware.BindUriMiddleware[UpdateUri], VulnApi{}.UpdateView)
	return r
}

func seedVuln(t *testing.T, vulnID string) {
	vuln := models.VulnerabilityModel{
		VulnID:     vulnID,
		Title:      "lodash原型链污染",
		Severity:   "high",
		Source:     "trivy",
		ScanType:   "container",
		Status:     "open",
		DetectedAt: time.Now(),
	}
	require.NoError(t, global.DB.Create(&vuln).Error)
}

func patchVuln(r *gin.Engine, vulnID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/vulnerabilities/"+vulnID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateAcceptsWontFix(t *testing.T) {
	r := setupUpdateRouter(t)
	seedVuln(t, "VULN-1")

	w := patchVuln(r, "VULN-1", `{"status":"wont_fix"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var vuln models.VulnerabilityModel
	require.NoError(t, global.DB.Take(&vuln, "vuln_id = ?", "VULN-1").Error)
	assert.Equal(t, "wont_fix", vuln.Status)
	assert.Nil(t, vuln.FixedAt)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	r := setupUpdateRouter(t)
	seedVuln(t, "VULN-2")

	w := patchVuln(r, "VULN-2", `{"status":"ignored"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFixedSetsFixedAt(t *testing.T) {
	r := setupUpdateRouter(t)
	seedVuln(t, "VULN-3")

	w := patchVuln(r, "VULN-3", `{"status":"fixed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var vuln models.VulnerabilityModel
	require.NoError(t, global.DB.Take(&vuln, "vuln_id = ?", "VULN-3").Error)
	assert.Equal(t, "fixed", vuln.Status)
	require.NotNil(t, vuln.FixedAt)
}

func TestUpdateMissingVuln(t *testing.T) {
	r := setupUpdateRouter(t)

	w := patchVuln(r, "VULN-404", `{"status":"fixed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
