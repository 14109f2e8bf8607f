package mq_service

// File: internal/service/mq_service/enter.go
// Description: MQ服务初始化模块，负责MQ队列声明与消费者协程启动，
// API侧写入事件经MQ队列中转后由消费协程推送到WebSocket客户端

import (
	"sentinelops/internal/global"

	"github.com/sirupsen/logrus"
)

// Run MQ核心资源初始化：声明事件队列并启动消费协程
func Run() {
	// 获取全局MQ配置
	cfg := global.Config.MQ

	// 声明业务所需的MQ队列
	queueDeclare(cfg.WsTopic)

	// 异步启动队列的消费者协程
	go registerConsumer(cfg.WsTopic, wsConsumer)
}

// queueDeclare 声明MQ队列
func queueDeclare(queueName string) {
	_, err := global.Queue.QueueDeclare(
		queueName, // 队列名称
		false,     // 持久性（false表示队列非持久化，服务重启后队列消失）
		false,     // 自动删除（false表示队列不会自动删除）
		false,     // 排他性（false表示非排他队列，多个消费者可连接）
		false,     // 非阻塞（false表示阻塞等待队列声明完成）
		nil,       // 额外配置参数
	)
	if err != nil {
		// 队列声明失败为致命错误，终止程序
		logrus.Fatalf("声明队列失败: %v", err)
		return
	}
	logrus.Infof("%s 声明队列成功", queueName)
}
