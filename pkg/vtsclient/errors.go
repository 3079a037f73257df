package vtsclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected — запрос при отсутствующем соединении.
	ErrNotConnected = errors.New("vtsclient: not connected")
	// ErrAlreadyConnected — повторный Start на живой сессии.
	ErrAlreadyConnected = errors.New("vtsclient: already connected")
	// ErrConnectionClosed — сессия закрыта, пока запрос ждал ответа.
	ErrConnectionClosed = errors.New("vtsclient: connection closed")
	// ErrRequestTimeout — ответ не пришёл за отведённый дедлайн.
	ErrRequestTimeout = errors.New("vtsclient: request timed out")
	// ErrMalformedMessage — входящий кадр не разобрался как конверт API.
	ErrMalformedMessage = errors.New("vtsclient: malformed message")
)

// RequestError — ошибка уровня API: VTube Studio ответил конвертом
// APIError с кодом и текстом. Возвращается тому, кто отправил запрос.
type RequestError struct {
	ErrorID ErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("vts api error [%d]: %s", e.ErrorID, e.Message)
}

// AuthError — отказ в аутентификации (запрос токена отклонён пользователем
// либо Authenticate вернул authenticated=false).
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vtsclient: authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("vtsclient: authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }
