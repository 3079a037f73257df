package vtsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	defaultRequestTimeout = 8 * time.Second
	// Запрос нового токена ждёт, пока пользователь нажмёт Allow в окне
	// VTube Studio, поэтому дедлайн заметно длиннее обычного.
	defaultTokenRequestTimeout = 60 * time.Second
	writeTimeout               = 5 * time.Second
)

// Config — параметры подключения и идентичность плагина.
type Config struct {
	Host string `json:"host"`
	Port int    `json:"port"`

	PluginName      string `json:"plugin_name"`
	PluginDeveloper string `json:"plugin_developer"`
	PluginIcon      string `json:"plugin_icon,omitempty"`

	// AuthToken — готовый токен; пустой — читаем AuthFile либо просим новый.
	AuthToken string `json:"auth_token,omitempty"`
	// AuthFile — файл с сохранённым токеном (одна строка).
	AuthFile string `json:"auth_file,omitempty"`
	// SaveAuthToken — перезаписать AuthFile токеном после успешного входа.
	SaveAuthToken bool `json:"save_auth_token"`

	// RequestTimeout — дедлайн обычного запроса (0 — значение по умолчанию).
	RequestTimeout time.Duration `json:"-"`
	// TokenRequestTimeout — дедлайн запроса нового токена (0 — по умолчанию).
	TokenRequestTimeout time.Duration `json:"-"`
}

// VTS — сессия с одним экземпляром VTube Studio: сокет, аутентификация,
// реестр ожидающих запросов и реестр обработчиков событий.
type VTS struct {
	cfg Config
	log zerolog.Logger

	conn *websocket.Conn
	wmu  sync.Mutex // сериализует запись в websocket

	startMu       sync.Mutex // сериализует Start/Close
	connected     atomic.Bool
	authenticated atomic.Bool
	closed        atomic.Bool

	pending *pendingRequests
	events  *eventDispatcher

	pingStop chan struct{}
	readDone chan struct{}
}

// New — создаёт клиента. Соединение устанавливает Start.
func New(cfg Config, log zerolog.Logger) *VTS {
	v := &VTS{
		cfg: cfg,
		log: log.With().Str("component", "vtsclient").Logger(),
	}
	v.pending = newPendingRequests(v.log)
	v.events = newEventDispatcher(v.log)
	v.closed.Store(true)
	return v
}

// Connected — есть живое соединение.
func (v *VTS) Connected() bool { return v.connected.Load() }

// Authenticated — сессия прошла аутентификацию и готова к запросам.
func (v *VTS) Authenticated() bool { return v.authenticated.Load() }

// Start — подключается к VTube Studio и проходит аутентификацию.
// Возвращает действующий токен. Порядок: dial → (токен из конфига или
// файла → Authenticate) → при отказе — запрос нового токена и повторная
// аутентификация. Любая ошибка возвращает сессию в исходное состояние.
// Контекст управляет временем жизни сессии: его отмена закрывает соединение.
func (v *VTS) Start(ctx context.Context) (string, error) {
	v.startMu.Lock()
	defer v.startMu.Unlock()

	if v.connected.Load() {
		return "", ErrAlreadyConnected
	}
	// дожидаемся полного выхода читателя прошлой сессии, прежде чем
	// переиспользовать conn/pingStop/readDone
	if v.readDone != nil {
		<-v.readDone
	}

	conn, err := v.dial(ctx)
	if err != nil {
		return "", fmt.Errorf("vtsclient: connect to %s: %w", v.wsURL(), err)
	}
	v.wmu.Lock()
	v.conn = conn
	v.wmu.Unlock()
	v.closed.Store(false)
	v.connected.Store(true)
	readDone := make(chan struct{})
	v.readDone = readDone
	v.events.start()
	v.startPing(conn)
	go v.readLoop(ctx, conn, readDone)

	token, err := v.authenticate(ctx)
	if err != nil {
		v.teardown()
		return "", err
	}

	v.log.Info().Str("host", v.cfg.Host).Int("port", v.cfg.Port).Msg("session ready")
	return token, nil
}

// authenticate — машина состояний входа: сохранённый/переданный токен,
// при его отказе — свежий токен через AuthenticationTokenRequest.
func (v *VTS) authenticate(ctx context.Context) (string, error) {
	token := strings.TrimSpace(v.cfg.AuthToken)
	if token == "" && v.cfg.AuthFile != "" {
		saved, err := readToken(v.cfg.AuthFile)
		if err != nil {
			return "", fmt.Errorf("vtsclient: read auth file: %w", err)
		}
		token = saved
	}

	if token != "" {
		err := v.tryAuthenticate(ctx, token)
		if err == nil {
			return v.finishAuth(token)
		}
		if !isAuthRejection(err) {
			return "", err
		}
		// токен протух или отозван — падаем на запрос нового
		v.log.Warn().Err(err).Msg("stored token rejected, requesting a new one")
	}

	token, err := v.requestAuthenticationToken(ctx)
	if err != nil {
		return "", err
	}
	if err := v.tryAuthenticate(ctx, token); err != nil {
		if isAuthRejection(err) {
			return "", &AuthError{Err: err}
		}
		return "", err
	}
	return v.finishAuth(token)
}

func (v *VTS) finishAuth(token string) (string, error) {
	v.authenticated.Store(true)
	if v.cfg.SaveAuthToken && v.cfg.AuthFile != "" {
		if err := writeToken(v.cfg.AuthFile, token); err != nil {
			return "", fmt.Errorf("vtsclient: save auth token: %w", err)
		}
		v.log.Info().Str("path", v.cfg.AuthFile).Msg("auth token saved")
	}
	return token, nil
}

// requestAuthenticationToken — просит новый токен; пользователь должен
// подтвердить плагин в окне VTube Studio.
func (v *VTS) requestAuthenticationToken(ctx context.Context) (string, error) {
	timeout := v.cfg.TokenRequestTimeout
	if timeout <= 0 {
		timeout = defaultTokenRequestTimeout
	}
	env, err := v.sendRequestTimeout(ctx, MessageTypeAuthenticationTokenRequest, AuthenticationTokenRequestData{
		PluginName:      v.cfg.PluginName,
		PluginDeveloper: v.cfg.PluginDeveloper,
		PluginIcon:      v.cfg.PluginIcon,
	}, timeout)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			return "", &AuthError{Err: reqErr}
		}
		return "", err
	}
	var data AuthenticationTokenResponseData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("vtsclient: decode token response: %w", err)
	}
	if data.AuthenticationToken == "" {
		return "", &AuthError{Reason: "empty token in response"}
	}
	v.log.Info().Msg("obtained new authentication token")
	return data.AuthenticationToken, nil
}

// tryAuthenticate — один проход AuthenticationRequest с данным токеном.
func (v *VTS) tryAuthenticate(ctx context.Context, token string) error {
	env, err := v.SendRequest(ctx, MessageTypeAuthenticationRequest, AuthenticationRequestData{
		PluginName:          v.cfg.PluginName,
		PluginDeveloper:     v.cfg.PluginDeveloper,
		AuthenticationToken: token,
	})
	if err != nil {
		return err
	}
	var data AuthenticationResponseData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return fmt.Errorf("vtsclient: decode authentication response: %w", err)
	}
	if !data.Authenticated {
		reason := data.Reason
		if reason == "" {
			reason = "unknown reason"
		}
		return &AuthError{Reason: reason}
	}
	return nil
}

// isAuthRejection — отказ именно по токену (а не сеть/таймаут): после
// такого имеет смысл просить новый токен.
func isAuthRejection(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return true
	}
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// SendRequest — отправляет произвольный запрос и ждёт ответ с тем же
// requestID. Идентификатор генерирует реестр; вызывающий его не задаёт.
func (v *VTS) SendRequest(ctx context.Context, messageType string, data any) (*Envelope, error) {
	timeout := v.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return v.sendRequestTimeout(ctx, messageType, data, timeout)
}

func (v *VTS) sendRequestTimeout(ctx context.Context, messageType string, data any, timeout time.Duration) (*Envelope, error) {
	if !v.connected.Load() {
		return nil, ErrNotConnected
	}

	entry, err := v.pending.register(timeout)
	if err != nil {
		return nil, err
	}

	frame, err := encodeEnvelope(entry.id, messageType, data)
	if err != nil {
		v.pending.take(entry.id)
		return nil, err
	}

	// запись строго через один мьютекс + write-deadline
	v.wmu.Lock()
	_ = v.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	werr := v.conn.WriteMessage(websocket.TextMessage, frame)
	v.wmu.Unlock()

	if werr != nil {
		// сеть упала между регистрацией и записью — подчищаем запись
		v.pending.take(entry.id)
		return nil, fmt.Errorf("vtsclient: write %s: %w", messageType, werr)
	}

	select {
	case res := <-entry.done:
		if res.err != nil {
			return nil, res.err
		}
		return res.env, nil
	case <-ctx.Done():
		v.pending.take(entry.id)
		return nil, ctx.Err()
	}
}

// Close — завершает сессию: валит все ожидающие запросы, сбрасывает
// подписки, закрывает сокет. Повторный Close — no-op.
func (v *VTS) Close() {
	v.teardown()
}

func (v *VTS) teardown() {
	if v.closed.Swap(true) {
		return
	}
	v.connected.Store(false)
	v.authenticated.Store(false)
	v.stopPing()
	v.closeConn()
	v.pending.failAll(ErrConnectionClosed)
	v.events.stop()
	v.events.clear()
	v.log.Info().Msg("session closed")
}

// OnEvent — регистрирует обработчик на вид события (EventTypeModelLoaded
// и т.п.). Обработчики одного вида вызываются в порядке регистрации.
func (v *VTS) OnEvent(kind string, h EventHandler) {
	v.events.on(kind, h)
}

// RemoveEventHandler — снимает обработчик; h == nil снимает все
// обработчики вида.
func (v *VTS) RemoveEventHandler(kind string, h EventHandler) {
	v.events.remove(kind, h)
}
