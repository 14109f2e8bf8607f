package ws_service

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn 记录写入帧的测试连接
type fakeConn struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) events(t *testing.T) []EventMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []EventMessage
	for _, frame := range f.frames {
		var msg EventMessage
		require.NoError(t, json.Unmarshal(frame, &msg))
		list = append(list, msg)
	}
	return list
}

func TestPublishBroadcast(t *testing.T) {
	a := &fakeConn{}
	b := &fakeConn{}
	AddWs("10.0.0.1:1001", a, "a@sentinelops.local")
	AddWs("10.0.0.2:1002", b, "b@sentinelops.local")
	defer RemoveWs("10.0.0.1:1001")
	defer RemoveWs("10.0.0.2:1002")

	Publish("alert:new", map[string]string{"alertId": "ALERT-1"}, "log-1")

	for _, conn := range []*fakeConn{a, b} {
		events := conn.events(t)
		require.Len(t, events, 1)
		assert.Equal(t, "alert:new", events[0].Event)
		assert.NotEmpty(t, events[0].Timestamp)
	}
}

func TestPublishRoomOnlyHitsSubscribers(t *testing.T) {
	subscriber := &fakeConn{}
	outsider := &fakeConn{}
	wsConn := AddWs("10.0.0.3:1003", subscriber, "sub@sentinelops.local")
	AddWs("10.0.0.4:1004", outsider, "out@sentinelops.local")
	defer RemoveWs("10.0.0.3:1003")
	defer RemoveWs("10.0.0.4:1004")

	wsConn.Subscribe("alerts-critical")
	PublishRoom("alerts-critical", "alert:severity", map[string]string{"severity": "critical"}, "log-2")

	require.Len(t, subscriber.events(t), 1)
	assert.Equal(t, "alert:severity", subscriber.events(t)[0].Event)
	assert.Empty(t, outsider.events(t))

	// 退订后不再接收房间消息
	wsConn.Unsubscribe("alerts-critical")
	PublishRoom("alerts-critical", "alert:severity", nil, "log-3")
	assert.Len(t, subscriber.events(t), 1)
}

func TestRemoveWsClosesConn(t *testing.T) {
	conn := &fakeConn{}
	AddWs("10.0.0.5:1005", conn, "c@sentinelops.local")
	before := ConnectionCount()

	RemoveWs("10.0.0.5:1005")

	assert.True(t, conn.closed)
	assert.Equal(t, before-1, ConnectionCount())

	// 重复移除不产生副作用
	RemoveWs("10.0.0.5:1005")
}
