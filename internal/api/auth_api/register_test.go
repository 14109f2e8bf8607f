package auth_api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sentinelops/internal/config"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/jwts"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRegisterRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Expires: 3600,
			Issuer:  "sentinelops",
			Secret:  "unit-test-secret",
		},
	}
	global.Log = logrus.NewEntry(logrus.New())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	global.DB = db

	r := gin.New()
	r.POST("/api/auth/register", middleware.LogMiddleware,
		middleware.BindJsonMiddleware[RegisterRequest], AuthApi{}.RegisterView)
	return r
}

func postRegister(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterIssuesToken(t *testing.T) {
	r := setupRegisterRouter(t)

	w := postRegister(r, `{"email":"new@sentinelops.local","password":"Passw0rd!234","name":"新分析师"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string      `json:"token"`
			User  UserProfile `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "analyst", resp.Data.User.Role) // 缺省角色

	// 注册即登录，签发的Token可直接通过REST认证
	claims, err := jwts.ParseToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "new@sentinelops.local", claims.Email)
	assert.Equal(t, "analyst", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRegisterRouter(t)

	w := postRegister(r, `{"email":"dup@sentinelops.local","password":"Passw0rd!234","name":"甲"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postRegister(r, `{"email":"dup@sentinelops.local","password":"Passw0rd!234","name":"乙"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "邮箱已注册")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := setupRegisterRouter(t)

	w := postRegister(r, `{"email":"weak@sentinelops.local","password":"short","name":"弱口令"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
