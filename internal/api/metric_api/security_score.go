package metric_api

// File: internal/api/metric_api/security_score.go
// Description: 安全评分API接口，实时采集评分因子计算当前评分及处置建议

import (
	"context"
	"sentinelops/internal/service/score_service"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SecurityScoreView 安全评分接口处理函数，实时计算而非读取快照
func (MetricApi) SecurityScoreView(c *gin.Context) {
	snapshot, err := score_service.ComputeSnapshot(context.Background())
	if err != nil {
		logrus.Errorf("安全评分计算失败 %s", err)
		response.FailWithServer("安全评分计算失败", c)
		return
	}
	response.OkWithData(snapshot, c)
}
