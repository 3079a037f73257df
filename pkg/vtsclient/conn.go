package vtsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// ========================= low-level =========================

const (
	maxFrameSize  = 16 << 20
	pingInterval  = 20 * time.Second
	closeGraceful = 500 * time.Millisecond
)

func (v *VTS) wsURL() string {
	return fmt.Sprintf("ws://%s:%d", v.cfg.Host, v.cfg.Port)
}

// dial — устанавливает websocket до VTube Studio.
func (v *VTS) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, v.wsURL(), nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(maxFrameSize)
	return conn, nil
}

// безопасно закрыть текущее соединение
func (v *VTS) closeConn() {
	v.wmu.Lock()
	conn := v.conn
	v.wmu.Unlock()
	if conn == nil {
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
		time.Now().Add(closeGraceful))
	_ = conn.Close()
}

// startPing — фоновый ws-ping, чтобы соединение не считалось мёртвым
// при долгом простое.
func (v *VTS) startPing(conn *websocket.Conn) {
	v.stopPing() // на всякий
	v.pingStop = make(chan struct{})
	stop := v.pingStop

	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				v.wmu.Lock()
				_ = conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeTimeout))
				v.wmu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

func (v *VTS) stopPing() {
	if v.pingStop != nil {
		close(v.pingStop)
		v.pingStop = nil
	}
}
