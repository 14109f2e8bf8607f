package mq_service

// File: internal/service/mq_service/register_consumer.go
// Description: MQ通用消费者注册模块，完成消息队列监听及自定义处理函数调用

import (
	"log"
	"sentinelops/internal/global"
)

// registerConsumer 通用MQ消费者注册函数
func registerConsumer(queueName string, fun func(msg []byte)) {
	// 注册MQ消费者，监听指定队列
	msgs, err := global.Queue.Consume(
		queueName, // 消费的目标队列名称
		"",        // 消费者标识（空表示由MQ自动分配）
		true,      // 自动确认消息
		false,     // 排他性
		false,     // 非本地
		false,     // 非阻塞
		nil,       // 额外配置参数
	)
	if err != nil {
		// 消费者注册失败时终止程序
		log.Fatalf("无法注册消费者: %v", err)
	}

	// 循环监听并处理队列消息
	for d := range msgs {
		fun(d.Body)
	}
}
