package cron_service

// File: internal/service/cron_service/heartbeat_checker.go
// Description: WS心跳检测定时任务入口函数，调用WebSocket服务的心跳检测逻辑

import "sentinelops/internal/service/ws_service"

// HeartbeatChecker WS心跳检测定时任务入口函数
func HeartbeatChecker() {
	ws_service.HeartbeatChecker()
}
