package mq_service

// File: internal/service/mq_service/send_event.go
// Description: 事件发布模块，API侧业务写入后将事件投递到MQ队列，
// 由消费协程统一推送到WebSocket客户端，实现多实例间的事件扇出

import (
	"encoding/json"
	"sentinelops/internal/global"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// EventMsg MQ中转的事件消息结构
type EventMsg struct {
	LogID string `json:"logID"`          // 请求追踪ID
	Event string `json:"event"`          // 事件名称，如 alert:new
	Room  string `json:"room,omitempty"` // 目标房间，空表示全量广播
	Data  any    `json:"data"`           // 事件数据体
}

// publish 将事件消息投递到MQ队列
func publish(msg EventMsg) {
	body, err := json.Marshal(msg)
	if err != nil {
		logrus.Errorf("事件消息序列化失败 %s", err)
		return
	}
	err = global.Queue.Publish(
		"",                       // 默认交换器
		global.Config.MQ.WsTopic, // 路由键即队列名
		false,                    // 强制标志
		false,                    // 立即标志
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		logrus.Errorf("事件消息投递失败 %s", err)
	}
}

// PublishEvent 发布全量广播事件
func PublishEvent(event string, data any, logID string) {
	publish(EventMsg{LogID: logID, Event: event, Data: data})
}

// PublishRoomEvent 发布房间定向事件
func PublishRoomEvent(room, event string, data any, logID string) {
	publish(EventMsg{LogID: logID, Event: event, Room: room, Data: data})
}
