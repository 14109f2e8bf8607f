package cron_service

// File: internal/service/cron_service/refresh_score.go
// Description: 安全评分快照刷新定时任务，在分布式锁保护下采集评分因子，
// 计算最新评分并写入Redis快照，供看板接口读取

import (
	"context"
	"sentinelops/internal/service/redis_service/score_lock"
	"sentinelops/internal/service/score_service"

	"github.com/sirupsen/logrus"
)

// RefreshScoreSnapshot 评分快照刷新定时任务入口函数
func RefreshScoreSnapshot() {
	// 获取分布式锁，抢不到说明其他实例正在刷新，直接跳过
	if err := score_lock.Lock(); err != nil {
		return
	}
	defer score_lock.UnLock()

	ctx := context.Background()
	snapshot, err := score_service.ComputeSnapshot(ctx)
	if err != nil {
		logrus.Errorf("评分快照计算失败 %s", err)
		return
	}
	if err := score_service.SaveSnapshot(ctx, snapshot); err != nil {
		logrus.Errorf("评分快照写入失败 %s", err)
		return
	}
	logrus.Infof("评分快照刷新完成 score=%d status=%s", snapshot.Score, snapshot.Status)
}
