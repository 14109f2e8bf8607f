package core

// File: internal/core/mq.go
// Description: RabbitMQ连接初始化模块，创建并返回MQ通道实例

import (
	"sentinelops/internal/global"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// InitMQ 初始化RabbitMQ连接并创建通道
func InitMQ() *amqp.Channel {
	cfg := global.Config.MQ

	// 建立TCP连接
	conn, err := amqp.Dial(cfg.Addr())
	if err != nil {
		logrus.Fatalf("无法连接到 RabbitMQ: %v", err)
	}

	// 创建MQ通道（Channel），用于消息收发
	ch, err := conn.Channel()
	if err != nil {
		logrus.Fatalf("无法打开通道: %v", err)
	}

	logrus.Infof("RabbitMQ连接成功")
	return ch
}
