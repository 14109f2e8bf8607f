package ws_api

// File: internal/api/ws_api/enter.go
// Description: WebSocket实时推送API接口，完成HTTP到WS的连接升级，
// 连接注册到ws_service后循环读取客户端的订阅/退订指令

import (
	"encoding/json"
	"net/http"
	"sentinelops/internal/service/ws_service"
	"sentinelops/internal/utils"
	"sentinelops/internal/utils/jwts"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WsApi WebSocket API结构体
type WsApi struct {
}

// UP WebSocket连接升级器实例
// 配置读写缓冲区大小，关闭跨域Origin检查（适配测试/内网场景），用于将HTTP连接升级为WS连接
var UP = websocket.Upgrader{
	ReadBufferSize:  1024, // 读缓冲区大小1024字节
	WriteBufferSize: 1024, // 写缓冲区大小1024字节
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有Origin跨域连接（生产环境需根据实际场景限制）
	},
}

// clientCommand 客户端发送的订阅控制指令
type clientCommand struct {
	Action string `json:"action"` // 指令类型 subscribe unsubscribe
	Room   string `json:"room"`   // 目标房间，如 alerts-critical
}

// validRooms 客户端可订阅的房间列表
var validRooms = []string{
	"alerts-critical", "alerts-high", "alerts-medium", "alerts-low",
}

// WsView WebSocket通信接口处理函数
// 完成HTTP到WS的连接升级，注册连接后循环读取客户端订阅指令，
// Pong帧与业务消息均刷新连接活跃时间，连接异常时注销并关闭
func (WsApi) WsView(c *gin.Context) {
	// 1. 将HTTP连接升级为WebSocket连接
	conn, err := UP.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.Errorf("ws升级失败 %s", err)
		return
	}

	// 2. 注册连接到存储容器（认证中间件已通过，email来自claims）
	email := ""
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(*jwts.Claims); ok {
			email = claims.Email
		}
	}
	addr := conn.RemoteAddr().String()
	wsConn := ws_service.AddWs(addr, conn, email)
	logrus.Infof("客户端连接成功 %s", addr)

	// 3. Pong帧刷新连接活跃时间，配合服务端心跳Ping
	conn.SetPongHandler(func(appData string) error {
		wsConn.Touch()
		return nil
	})

	// 4. 循环读取客户端消息，处理订阅/退订指令
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			break // 读取失败（如客户端断开），退出循环
		}
		wsConn.Touch()

		var cmd clientCommand
		if err := json.Unmarshal(p, &cmd); err != nil {
			continue // 非指令消息直接忽略
		}
		if !utils.InList(validRooms, cmd.Room) {
			continue
		}
		switch cmd.Action {
		case "subscribe":
			wsConn.Subscribe(cmd.Room)
		case "unsubscribe":
			wsConn.Unsubscribe(cmd.Room)
		}
	}

	// 5. 连接清理：注销并关闭WS连接，记录断开日志
	ws_service.RemoveWs(addr)
	logrus.Infof("客户端断开连接 %s", addr)
}
