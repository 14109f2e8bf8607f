package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInList(t *testing.T) {
	roles := []string{"admin", "analyst", "viewer"}
	assert.True(t, InList(roles, "admin"))
	assert.True(t, InList(roles, "viewer"))
	assert.False(t, InList(roles, "root"))
	assert.False(t, InList([]string{}, "admin"))
	assert.True(t, InList([]int{1, 2, 3}, 2))
}
