package sysinfo

// File: internal/service/sysinfo/enter.go
// Description: 系统资源信息采集服务模块，基于gopsutil库获取CPU、内存、磁盘
// 等资源使用情况，由定时任务周期采集并缓存，实时监控接口直接读取缓存快照

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/sirupsen/logrus"
)

// ResourceMessage 系统资源信息结构体
type ResourceMessage struct {
	CpuCount    int64   `json:"cpuCount"`    // CPU内核数（逻辑核心）
	CpuUseRate  float32 `json:"cpuUseRate"`  // CPU使用率（百分比）
	MemTotal    int64   `json:"memTotal"`    // 内存容量（字节）
	MemUseRate  float32 `json:"memUseRate"`  // 内存使用率（百分比）
	DiskTotal   int64   `json:"diskTotal"`   // 磁盘容量（字节）
	DiskUseRate float32 `json:"diskUseRate"` // 磁盘使用率（百分比）
	Uptime      int64   `json:"uptime"`      // 系统运行时间（秒）
	CollectedAt string  `json:"collectedAt"` // 采集时间
}

var (
	latest ResourceMessage
	mu     sync.RWMutex
)

// Collect 采集系统资源信息并刷新缓存快照，由定时任务周期调用
func Collect() {
	// 获取CPU逻辑核心数（true表示包含超线程）
	cpuCount, err := cpu.Counts(true)
	if err != nil {
		logrus.Errorf("cpu核心数采集失败 %s", err)
		return
	}

	// 获取CPU整体使用率（采样间隔1秒，false表示获取整体CPU使用率而非单个核心）
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err != nil {
		logrus.Errorf("cpu使用率采集失败 %s", err)
		return
	}

	// 获取系统虚拟内存信息
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logrus.Errorf("内存信息采集失败 %s", err)
		return
	}

	// 获取系统根目录的磁盘使用情况
	diskInfo, err := disk.Usage("/")
	if err != nil {
		logrus.Errorf("磁盘信息采集失败 %s", err)
		return
	}

	// 获取系统运行时间
	uptime, err := host.Uptime()
	if err != nil {
		logrus.Errorf("系统运行时间采集失败 %s", err)
		return
	}

	message := ResourceMessage{
		CpuCount:    int64(cpuCount),
		CpuUseRate:  float32(cpuPercent[0]),
		MemTotal:    int64(memInfo.Total),
		MemUseRate:  float32(memInfo.UsedPercent),
		DiskTotal:   int64(diskInfo.Total),
		DiskUseRate: float32(diskInfo.UsedPercent),
		Uptime:      int64(uptime),
		CollectedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	mu.Lock()
	latest = message
	mu.Unlock()
}

// Latest 读取最近一次采集的资源快照
func Latest() ResourceMessage {
	mu.RLock()
	defer mu.RUnlock()
	return latest
}
