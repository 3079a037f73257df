package vtsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================= фейковый VTube Studio =========================

// syncConn — серверная сторона с сериализованной записью: обработчики
// тестов пишут в сокет и из фоновых горутин тоже.
type syncConn struct {
	mu sync.Mutex
	c  *websocket.Conn
}

func (s *syncConn) send(requestID, messageType string, data any) {
	env := Envelope{
		APIName:     APIName,
		APIVersion:  APIVersion,
		Timestamp:   time.Now().UnixMilli(),
		RequestID:   requestID,
		MessageType: messageType,
	}
	if data != nil {
		raw, _ := json.Marshal(data)
		env.Data = raw
	}
	frame, _ := json.Marshal(&env)
	s.sendRaw(frame)
}

func (s *syncConn) sendRaw(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.c.WriteMessage(websocket.TextMessage, frame)
}

type fakeHandler func(c *syncConn, env *Envelope)

// newFakeVTS — in-process websocket-сервер, говорящий конвертами API.
func newFakeVTS(t *testing.T, handler fakeHandler) (*httptest.Server, Config) {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer raw.Close()
		conn := &syncConn{c: raw}
		for {
			_, frame, err := raw.ReadMessage()
			if err != nil {
				return
			}
			var env Envelope
			if err := json.Unmarshal(frame, &env); err != nil {
				continue
			}
			handler(conn, &env)
		}
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return srv, Config{
		Host:            u.Hostname(),
		Port:            port,
		PluginName:      "TestPlugin",
		PluginDeveloper: "Tester",
	}
}

// withAuth — стандартное поведение аутентификации: выдаёт token по
// запросу и подтверждает Authenticate только с ним.
func withAuth(token string, tokenRequests *atomic.Int32, next fakeHandler) fakeHandler {
	return func(c *syncConn, env *Envelope) {
		switch env.MessageType {
		case MessageTypeAuthenticationTokenRequest:
			if tokenRequests != nil {
				tokenRequests.Add(1)
			}
			c.send(env.RequestID, MessageTypeAuthenticationTokenResponse, AuthenticationTokenResponseData{
				AuthenticationToken: token,
			})
		case MessageTypeAuthenticationRequest:
			var data AuthenticationRequestData
			_ = json.Unmarshal(env.Data, &data)
			resp := AuthenticationResponseData{Authenticated: data.AuthenticationToken == token}
			if !resp.Authenticated {
				resp.Reason = "token does not match"
			}
			c.send(env.RequestID, MessageTypeAuthenticationResponse, resp)
		default:
			if next != nil {
				next(c, env)
			}
		}
	}
}

func startClient(t *testing.T, cfg Config) (*VTS, string) {
	t.Helper()
	v := New(cfg, zerolog.Nop())
	token, err := v.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(v.Close)
	return v, token
}

// ========================= сценарии =========================

func TestStartRequestsNewTokenAndSavesIt(t *testing.T) {
	var tokenRequests atomic.Int32
	_, cfg := newFakeVTS(t, withAuth("tok-123", &tokenRequests, nil))
	cfg.AuthFile = filepath.Join(t.TempDir(), "vts_token.txt")
	cfg.SaveAuthToken = true

	v, token := startClient(t, cfg)

	assert.Equal(t, "tok-123", token)
	assert.True(t, v.Connected())
	assert.True(t, v.Authenticated())
	assert.Equal(t, int32(1), tokenRequests.Load())

	saved, err := readToken(cfg.AuthFile)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", saved)
}

func TestStartReusesSavedToken(t *testing.T) {
	var tokenRequests atomic.Int32
	_, cfg := newFakeVTS(t, withAuth("tok-123", &tokenRequests, nil))
	cfg.AuthFile = filepath.Join(t.TempDir(), "vts_token.txt")
	require.NoError(t, writeToken(cfg.AuthFile, "tok-123"))

	v, token := startClient(t, cfg)

	assert.Equal(t, "tok-123", token)
	assert.True(t, v.Authenticated())
	// токен взят из файла — новый не запрашивался
	assert.Equal(t, int32(0), tokenRequests.Load())
}

func TestStartFallsBackWhenSavedTokenRejected(t *testing.T) {
	var tokenRequests atomic.Int32
	_, cfg := newFakeVTS(t, withAuth("fresh", &tokenRequests, nil))
	cfg.AuthFile = filepath.Join(t.TempDir(), "vts_token.txt")
	cfg.SaveAuthToken = true
	require.NoError(t, writeToken(cfg.AuthFile, "stale"))

	v, token := startClient(t, cfg)

	assert.Equal(t, "fresh", token)
	assert.True(t, v.Authenticated())
	assert.Equal(t, int32(1), tokenRequests.Load())

	saved, err := readToken(cfg.AuthFile)
	require.NoError(t, err)
	assert.Equal(t, "fresh", saved)
}

func TestStartConnectionRefused(t *testing.T) {
	srv, cfg := newFakeVTS(t, nil)
	srv.Close() // порт больше никто не слушает

	v := New(cfg, zerolog.Nop())
	_, err := v.Start(context.Background())
	require.Error(t, err)
	assert.False(t, v.Connected())
	assert.False(t, v.Authenticated())
}

func TestStartTokenRequestDenied(t *testing.T) {
	_, cfg := newFakeVTS(t, func(c *syncConn, env *Envelope) {
		if env.MessageType == MessageTypeAuthenticationTokenRequest {
			c.send(env.RequestID, MessageTypeAPIError, ErrorData{
				ErrorID: ErrorCodeAuthenticationTokenRequestDenied,
				Message: "user denied the plugin",
			})
		}
	})

	v := New(cfg, zerolog.Nop())
	_, err := v.Start(context.Background())
	require.Error(t, err)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.False(t, v.Connected())
	assert.False(t, v.Authenticated())
}

func TestAPIErrorSurfacesToCaller(t *testing.T) {
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		c.send(env.RequestID, MessageTypeAPIError, ErrorData{
			ErrorID: 8,
			Message: "Not authenticated",
		})
	}))

	v, _ := startClient(t, cfg)

	_, err := v.Statistics(context.Background())
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, ErrorCode(8), reqErr.ErrorID)
	assert.Equal(t, "Not authenticated", reqErr.Message)

	// ошибка одного запроса не трогает сессию
	assert.True(t, v.Connected())
}

func TestConcurrentRequestsPermutedResponses(t *testing.T) {
	const n = 5
	var (
		mu     sync.Mutex
		queued []*Envelope
	)
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		if env.MessageType != MessageTypeParameterValueRequest {
			return
		}
		mu.Lock()
		queued = append(queued, env)
		ready := len(queued) == n
		var batch []*Envelope
		if ready {
			batch = queued
			queued = nil
		}
		mu.Unlock()
		if !ready {
			return
		}
		// отвечаем в обратном порядке прихода
		for i := len(batch) - 1; i >= 0; i-- {
			var req ParameterValueRequestData
			_ = json.Unmarshal(batch[i].Data, &req)
			c.send(batch[i].RequestID, "ParameterValueResponse", Parameter{Name: req.Name, Value: float64(i)})
		}
	}))

	v, _ := startClient(t, cfg)

	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := v.ParameterValue(context.Background(), fmt.Sprintf("param-%d", i))
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = out.Name
		}(i)
	}
	wg.Wait()

	// перестановка порядка ответов не перепутала адресатов
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("param-%d", i), results[i])
	}
}

func TestEventsDispatchedInOrder(t *testing.T) {
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		if env.MessageType != MessageTypeEventSubscriptionRequest {
			return
		}
		c.send(env.RequestID, "EventSubscriptionResponse", EventSubscriptionResponseData{
			SubscribedEventCount: 1,
			SubscribedEvents:     []string{EventTypeTest},
		})
		// три события подписанного вида плюс одно чужого
		for _, p := range []string{"P1", "P2", "P3"} {
			c.send("", EventTypeTest, TestEventData{YourTestMessage: p})
		}
		c.send("", EventTypeModelLoaded, ModelLoadedEventData{ModelName: "ignored"})
	}))

	v, _ := startClient(t, cfg)

	got := make(chan string, 8)
	other := make(chan string, 8)
	v.OnEvent(EventTypeTest, func(ev *Event) {
		var data TestEventData
		_ = ev.Bind(&data)
		got <- data.YourTestMessage
	})
	v.OnEvent(EventTypeModelClicked, func(ev *Event) { other <- ev.Type })

	_, err := v.SubscribeEvent(context.Background(), EventTypeTest, TestEventConfig{TestMessageForEvent: "hi"})
	require.NoError(t, err)

	for _, want := range []string{"P1", "P2", "P3"} {
		assert.Equal(t, want, recvEvent(t, got))
	}
	assertNoEvent(t, got)
	assertNoEvent(t, other)
}

func TestCloseFailsAllPendingAndRejectsNewRequests(t *testing.T) {
	// сервер молчит на всё, кроме аутентификации
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {}))

	v, _ := startClient(t, cfg)

	const k = 3
	errCh := make(chan error, k)
	for i := 0; i < k; i++ {
		go func() {
			_, err := v.SendRequest(context.Background(), MessageTypeStatisticsRequest, nil)
			errCh <- err
		}()
	}

	// дождёмся, пока все трое зарегистрируются
	require.Eventually(t, func() bool { return v.pending.len() == k },
		2*time.Second, 10*time.Millisecond)

	v.Close()

	for i := 0; i < k; i++ {
		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrConnectionClosed)
		case <-time.After(2 * time.Second):
			t.Fatal("pending request survived Close")
		}
	}

	// следующий запрос падает сразу, не трогая сеть
	_, err := v.Statistics(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.False(t, v.Connected())
	assert.False(t, v.Authenticated())

	// повторный Close — no-op
	v.Close()
}

func TestRequestTimeoutAndLateResponseDiscarded(t *testing.T) {
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		switch env.MessageType {
		case MessageTypeStatisticsRequest:
			// отвечаем заведомо позже дедлайна клиента
			id := env.RequestID
			go func() {
				time.Sleep(300 * time.Millisecond)
				c.send(id, "StatisticsResponse", StatisticsResponseData{Framerate: 60})
			}()
		case MessageTypeParameterValueRequest:
			c.send(env.RequestID, "ParameterValueResponse", Parameter{Name: "ok"})
		}
	}))
	cfg.RequestTimeout = 100 * time.Millisecond

	v, _ := startClient(t, cfg)

	_, err := v.Statistics(context.Background())
	assert.ErrorIs(t, err, ErrRequestTimeout)
	assert.Equal(t, 0, v.pending.len())

	// опоздавший ответ проглатывается, цикл чтения жив
	time.Sleep(400 * time.Millisecond)
	out, err := v.ParameterValue(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
}

func TestMalformedFramesAreDropped(t *testing.T) {
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		if env.MessageType != MessageTypeStatisticsRequest {
			return
		}
		c.sendRaw([]byte(`this is not json`))
		c.sendRaw([]byte(`{"apiName":"WrongAPI","messageType":"StatisticsResponse"}`))
		c.send(env.RequestID, "StatisticsResponse", StatisticsResponseData{Framerate: 75})
	}))

	v, _ := startClient(t, cfg)

	out, err := v.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75, out.Framerate)
}

func TestStartTwiceFails(t *testing.T) {
	_, cfg := newFakeVTS(t, withAuth("tok", nil, nil))

	v, _ := startClient(t, cfg)

	_, err := v.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}

func TestStartAfterCloseReconnects(t *testing.T) {
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		if env.MessageType == MessageTypeStatisticsRequest {
			c.send(env.RequestID, "StatisticsResponse", StatisticsResponseData{Framerate: 60})
		}
	}))

	v := New(cfg, zerolog.Nop())
	t.Cleanup(v.Close)

	// Close → Start много раз подряд: новая сессия не должна делить
	// conn/readDone с горутинами предыдущей
	for i := 0; i < 20; i++ {
		_, err := v.Start(context.Background())
		require.NoError(t, err)
		require.True(t, v.Authenticated())

		out, err := v.Statistics(context.Background())
		require.NoError(t, err)
		require.Equal(t, 60, out.Framerate)

		v.Close()
		require.False(t, v.Connected())
	}
}

func TestUnexpectedServerCloseFailsPending(t *testing.T) {
	var conns struct {
		sync.Mutex
		c *syncConn
	}
	_, cfg := newFakeVTS(t, withAuth("tok", nil, func(c *syncConn, env *Envelope) {
		conns.Lock()
		conns.c = c
		conns.Unlock()
	}))

	v, _ := startClient(t, cfg)

	errCh := make(chan error, 1)
	go func() {
		_, err := v.SendRequest(context.Background(), MessageTypeStatisticsRequest, nil)
		errCh <- err
	}()

	require.Eventually(t, func() bool {
		conns.Lock()
		defer conns.Unlock()
		return conns.c != nil
	}, 2*time.Second, 10*time.Millisecond)

	conns.Lock()
	_ = conns.c.c.Close() // сервер рвёт соединение
	conns.Unlock()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConnectionClosed) || errors.Is(err, ErrRequestTimeout))
	case <-time.After(3 * time.Second):
		t.Fatal("pending request survived connection loss")
	}

	assert.Eventually(t, func() bool { return !v.Connected() }, 2*time.Second, 10*time.Millisecond)
}
