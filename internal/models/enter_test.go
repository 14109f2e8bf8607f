package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageInfoDefaults(t *testing.T) {
	var p PageInfo
	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, 20, p.GetLimit())
	assert.Equal(t, 0, p.GetOffset())
}

func TestPageInfoNormalization(t *testing.T) {
	p := PageInfo{Page: -3, Limit: 999}
	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, 100, p.GetLimit()) // 每页条数上限100

	p = PageInfo{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.GetOffset())
}
