package mq_service

// File: internal/service/mq_service/ws_consumer.go
// Description: WebSocket事件消费处理函数，反序列化MQ事件并分发到WS连接

import (
	"encoding/json"
	"sentinelops/internal/service/ws_service"

	"github.com/sirupsen/logrus"
)

// wsConsumer 通用MQ消费者处理函数，用于处理WebSocket事件消息
func wsConsumer(req []byte) {
	var msg EventMsg
	err := json.Unmarshal(req, &msg)
	if err != nil {
		logrus.Errorf("事件消息反序列化失败 %s", err)
		return
	}
	// 按目标房间分发：空房间表示全量广播
	if msg.Room == "" {
		ws_service.Publish(msg.Event, msg.Data, msg.LogID)
		return
	}
	ws_service.PublishRoom(msg.Room, msg.Event, msg.Data, msg.LogID)
}
