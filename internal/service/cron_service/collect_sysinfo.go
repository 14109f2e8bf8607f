package cron_service

// File: internal/service/cron_service/collect_sysinfo.go
// Description: 系统资源采集定时任务入口函数，周期性刷新资源快照缓存

import "sentinelops/internal/service/sysinfo"

// CollectSysinfo 系统资源采集定时任务入口函数
func CollectSysinfo() {
	sysinfo.Collect()
}
