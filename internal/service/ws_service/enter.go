package ws_service

// File: internal/service/ws_service/enter.go
// Description: WebSocket连接管理与消息推送服务模块，基于sync.Map实现并发安全的WS连接存储，
// 提供连接添加、移除、房间订阅及全量/房间消息广播能力，支撑服务端实时事件推送

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Conn WebSocket连接最小写入接口，便于测试替换
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// WSConn 单个WebSocket连接的状态封装
type WSConn struct {
	conn       Conn                // 底层WS连接
	rooms      map[string]struct{} // 已订阅的房间集合
	mu         sync.Mutex          // 保护连接写入与状态读写
	lastActive time.Time           // 最后活跃时间，由Pong帧和业务消息刷新
	email      string              // 连接所属用户邮箱
}

// EventMessage 推送给客户端的统一事件结构
type EventMessage struct {
	Event     string `json:"event"`     // 事件名称，如 alert:new
	Data      any    `json:"data"`      // 事件数据体
	Timestamp string `json:"timestamp"` // 事件推送时间
}

// WsStore WebSocket连接存储容器，key为连接地址
var WsStore = sync.Map{}

// AddWs 添加WebSocket连接到存储容器
func AddWs(addr string, conn Conn, email string) *WSConn {
	wsConn := &WSConn{
		conn:       conn,
		rooms:      map[string]struct{}{},
		lastActive: time.Now(),
		email:      email,
	}
	WsStore.Store(addr, wsConn)
	return wsConn
}

// RemoveWs 从存储容器移除指定地址的WebSocket连接并关闭底层连接
func RemoveWs(addr string) {
	value, ok := WsStore.LoadAndDelete(addr)
	if !ok {
		return
	}
	wsConn := value.(*WSConn)
	wsConn.mu.Lock()
	wsConn.conn.Close()
	wsConn.mu.Unlock()
}

// Subscribe 将连接加入指定房间
func (w *WSConn) Subscribe(room string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rooms[room] = struct{}{}
}

// Unsubscribe 将连接移出指定房间
func (w *WSConn) Unsubscribe(room string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.rooms, room)
}

// Touch 刷新连接的最后活跃时间
func (w *WSConn) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastActive = time.Now()
}

// inRoom 判断连接是否已订阅指定房间
func (w *WSConn) inRoom(room string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.rooms[room]
	return ok
}

// write 并发安全地向连接写入文本消息
func (w *WSConn) write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteMessage(websocket.TextMessage, data)
}

// marshalEvent 序列化统一事件结构
func marshalEvent(event string, data any) ([]byte, error) {
	return json.Marshal(EventMessage{
		Event:     event,
		Data:      data,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	})
}

// Publish 向所有在线的WebSocket客户端广播事件
func Publish(event string, data any, logID string) {
	msg, err := marshalEvent(event, data)
	if err != nil {
		logrus.Errorf("事件序列化失败 %s", err)
		return
	}
	log := logrus.WithField("logID", logID).WithField("event", event)
	var count int // 统计推送成功的客户端数量

	// 遍历所有在线WS连接执行消息推送
	WsStore.Range(func(key, value any) bool {
		wsConn := value.(*WSConn)
		err := wsConn.write(msg)
		if err != nil {
			// 单连接推送失败，记录日志后继续遍历
			log.WithField("addr", key).Errorf("消息推送失败 %s", err)
			return true
		}
		count++
		return true
	})
	log.WithField("ws_count", count).Info("消息推送完成")
}

// PublishRoom 向订阅了指定房间的WebSocket客户端推送事件
func PublishRoom(room, event string, data any, logID string) {
	msg, err := marshalEvent(event, data)
	if err != nil {
		logrus.Errorf("事件序列化失败 %s", err)
		return
	}
	log := logrus.WithField("logID", logID).WithField("event", event).WithField("room", room)
	var count int

	WsStore.Range(func(key, value any) bool {
		wsConn := value.(*WSConn)
		if !wsConn.inRoom(room) {
			return true
		}
		err := wsConn.write(msg)
		if err != nil {
			log.WithField("addr", key).Errorf("消息推送失败 %s", err)
			return true
		}
		count++
		return true
	})
	log.WithField("ws_count", count).Info("房间消息推送完成")
}

// getConnectionCount 获取当前在线连接数
func getConnectionCount() (count int) {
	WsStore.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

// ConnectionCount 获取当前在线连接数（对外）
func ConnectionCount() int {
	return getConnectionCount()
}
