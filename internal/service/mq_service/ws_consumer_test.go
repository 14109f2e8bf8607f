package mq_service

import (
	"encoding/json"
	"sentinelops/internal/service/ws_service"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConn 记录写入帧的测试连接
type stubConn struct {
	mu     sync.Mutex
	frames [][]byte
}

func (s *stubConn) WriteMessage(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, data)
	return nil
}

func (s *stubConn) Close() error { return nil }

func (s *stubConn) events(t *testing.T) []ws_service.EventMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []ws_service.EventMessage
	for _, frame := range s.frames {
		var msg ws_service.EventMessage
		require.NoError(t, json.Unmarshal(frame, &msg))
		list = append(list, msg)
	}
	return list
}

func TestWsConsumerBroadcast(t *testing.T) {
	conn := &stubConn{}
	ws_service.AddWs("10.8.0.1:7001", conn, "a@sentinelops.local")
	defer ws_service.RemoveWs("10.8.0.1:7001")

	body, err := json.Marshal(EventMsg{
		LogID: "log-7",
		Event: "vuln:new",
		Data:  map[string]string{"vulnId": "VULN-7", "severity": "critical"},
	})
	require.NoError(t, err)
	wsConsumer(body)

	events := conn.events(t)
	require.Len(t, events, 1)
	assert.Equal(t, "vuln:new", events[0].Event)
	assert.NotEmpty(t, events[0].Timestamp)
}

func TestWsConsumerRoomDispatch(t *testing.T) {
	member := &stubConn{}
	outsider := &stubConn{}
	wsConn := ws_service.AddWs("10.8.0.2:7002", member, "b@sentinelops.local")
	ws_service.AddWs("10.8.0.3:7003", outsider, "c@sentinelops.local")
	defer ws_service.RemoveWs("10.8.0.2:7002")
	defer ws_service.RemoveWs("10.8.0.3:7003")

	wsConn.Subscribe("alerts-critical")

	body, err := json.Marshal(EventMsg{
		LogID: "log-8",
		Event: "alert:severity",
		Room:  "alerts-critical",
		Data:  map[string]string{"alertId": "ALERT-8"},
	})
	require.NoError(t, err)
	wsConsumer(body)

	require.Len(t, member.events(t), 1)
	assert.Empty(t, outsider.events(t)) // 未订阅房间的连接不收事件
}

func TestWsConsumerIgnoresBadPayload(t *testing.T) {
	conn := &stubConn{}
	ws_service.AddWs("10.8.0.4:7004", conn, "d@sentinelops.local")
	defer ws_service.RemoveWs("10.8.0.4:7004")

	wsConsumer([]byte("{not json"))
	assert.Empty(t, conn.events(t))
}
