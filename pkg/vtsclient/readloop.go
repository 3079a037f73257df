package vtsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
)

// readLoop — единственный читатель сокета. Живёт, пока живо соединение;
// каждый кадр разбирается и маршрутизируется ровно один раз, в порядке
// доставки транспортом. Нечитаемый кадр логируется и отбрасывается —
// цикл не падает. conn и readDone приходят параметрами: поля VTS после
// повторного Start принадлежат уже следующей сессии.
func (v *VTS) readLoop(ctx context.Context, conn *websocket.Conn, readDone chan struct{}) {
	defer close(readDone)

	// по отмене контекста закрываем сокет, чтобы ReadMessage вернулся;
	// полный teardown делает сам цикл на ошибке чтения
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-readDone:
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if !v.closed.Load() {
				v.log.Warn().Err(err).Msg("connection lost")
				v.teardown()
			}
			return
		}

		env, derr := decodeEnvelope(frame)
		if derr != nil {
			v.log.Warn().Err(derr).Msg("dropping malformed frame")
			continue
		}
		v.route(env)
	}
}

// route — ветвление по виду сообщения: APIError и ответы уходят в реестр
// ожидающих запросов, события — обработчикам, остальное — в лог.
func (v *VTS) route(env *Envelope) {
	switch {
	case env.MessageType == MessageTypeAPIError:
		if env.RequestID == "" {
			v.log.Warn().RawJSON("data", env.Data).Msg("api error without request id, dropped")
			return
		}
		var ed ErrorData
		if err := json.Unmarshal(env.Data, &ed); err != nil {
			v.pending.reject(env.RequestID, fmt.Errorf("%w: bad APIError data: %v", ErrMalformedMessage, err))
			return
		}
		v.pending.reject(env.RequestID, &RequestError{ErrorID: ed.ErrorID, Message: ed.Message})

	case strings.HasSuffix(env.MessageType, "Event"):
		v.events.dispatch(&Event{
			Type:      env.MessageType,
			Timestamp: env.Timestamp,
			Data:      env.Data,
		})

	case env.RequestID != "":
		v.pending.resolve(env.RequestID, env)

	default:
		v.log.Warn().Str("message_type", env.MessageType).Msg("unroutable frame dropped")
	}
}
