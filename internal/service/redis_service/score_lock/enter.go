package score_lock

// File: internal/service/redis_service/score_lock/enter.go
// Description: 安全评分快照分布式锁模块，基于Redis的RedSync实现互斥锁，
// 防止多实例并发刷新评分快照导致重复计算

import (
	"sentinelops/internal/global"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
)

// mutexName 评分快照锁名称
const mutexName = "security_score_refresh_lock"

var (
	mutex    *redsync.Mutex
	onceLock sync.Once
)

// getMutex 获取评分快照分布式锁实例（懒加载）
func getMutex() *redsync.Mutex {
	onceLock.Do(func() {
		pool := goredis.NewPool(global.Redis)
		rs := redsync.New(pool)
		mutex = rs.NewMutex(mutexName,
			redsync.WithExpiry(50*time.Second),           // 锁过期时间50秒，小于快照刷新周期
			redsync.WithTries(1),                         // 锁获取重试次数1次，抢不到说明其他实例在刷新
			redsync.WithRetryDelay(500*time.Millisecond), // 重试间隔500毫秒
		)
	})
	return mutex
}

// Lock 获取评分快照刷新锁
func Lock() error {
	return getMutex().Lock()
}

// UnLock 释放评分快照刷新锁
func UnLock() (bool, error) {
	return getMutex().Unlock()
}
