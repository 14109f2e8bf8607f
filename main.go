package main

import (
	"sentinelops/internal/core"
	"sentinelops/internal/flags"
	"sentinelops/internal/global"
	"sentinelops/internal/routers"
	"sentinelops/internal/service/cron_service"
	"sentinelops/internal/service/mq_service"
)

func main() {
	flags.Parse()                        // 解析命令行参数
	global.Config = core.ReadConfig()    // 读取配置文件
	core.InitIPDB()                      // 初始化IP地址数据库
	core.SetLogDefault()                 // 设置默认日志配置
	global.Log = core.GetLogger()        // 获取日志实例
	global.DB = core.GetDB()             // 获取数据库实例
	global.Redis = core.GetRedisClient() // 获取Redis实例
	global.ES = core.ConnectEs()         // 连接ElasticSearch
	global.Queue = core.InitMQ()         // 初始化消息队列
	flags.Run()                          // 运行命令行参数
	mq_service.Run()                     // 启动MQ事件分发服务
	cron_service.Run()                   // 启动定时任务
	routers.Run()                        // 启动路由
}
