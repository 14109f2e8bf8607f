package threat_api

import (
	"sentinelops/internal/es_models"
	"sentinelops/internal/service/score_service"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyWorthy(t *testing.T) {
	assert.False(t, notifyWorthy(es_models.ClassificationNormal))
	assert.False(t, notifyWorthy(es_models.ClassificationSuspicious))
	assert.True(t, notifyWorthy(es_models.ClassificationHighRisk))
	assert.True(t, notifyWorthy(es_models.ClassificationAttack))
}

func TestNotifyWorthyFollowsClassifyThresholds(t *testing.T) {
	// 低分分析结果不推送实时事件，60分及以上推送
	assert.False(t, notifyWorthy(score_service.Classify(39.9)))
	assert.False(t, notifyWorthy(score_service.Classify(59.9)))
	assert.True(t, notifyWorthy(score_service.Classify(60)))
	assert.True(t, notifyWorthy(score_service.Classify(87.5)))
}
