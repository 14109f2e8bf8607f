package jwts

import (
	"sentinelops/internal/config"
	"sentinelops/internal/global"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setJwtConfig(issuer string) {
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Expires: 3600,
			Issuer:  issuer,
			Secret:  "unit-test-secret",
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setJwtConfig("sentinelops")

	info := ClaimsUserInfo{UserID: 7, Email: "analyst@sentinelops.local", Role: "analyst"}
	token, err := GetToken(info)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, info, claims.ClaimsUserInfo)
	assert.Equal(t, "sentinelops", claims.Issuer)
}

func TestParseTokenRejectsBadToken(t *testing.T) {
	setJwtConfig("sentinelops")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	setJwtConfig("someone-else")
	token, err := GetToken(ClaimsUserInfo{UserID: 1, Email: "a@a.com", Role: "viewer"})
	require.NoError(t, err)

	// 切换签发人配置后原Token应被拒绝
	setJwtConfig("sentinelops")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
