package vtsclient

import (
	"encoding/json"
	"fmt"
)

// Константы протокола. VTube Studio проверяет их в каждом запросе
// и присылает в каждом ответе/событии.
const (
	APIName    = "VTubeStudioPublicAPI"
	APIVersion = "1.0"
)

// Envelope — единица обмена в обе стороны: запрос, ответ, APIError или
// событие. Поле Data остаётся сырым JSON — типизация происходит на уровне
// высокоуровневых методов, ядру достаточно messageType и requestID.
type Envelope struct {
	APIName     string          `json:"apiName"`
	APIVersion  string          `json:"apiVersion"`
	Timestamp   int64           `json:"timestamp,omitempty"`
	RequestID   string          `json:"requestID,omitempty"`
	MessageType string          `json:"messageType"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// encodeEnvelope — собирает исходящий конверт. data == nil даёт запрос
// без поля data (часть операций его не принимает вовсе).
func encodeEnvelope(requestID, messageType string, data any) ([]byte, error) {
	env := Envelope{
		APIName:     APIName,
		APIVersion:  APIVersion,
		RequestID:   requestID,
		MessageType: messageType,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode %s data: %w", messageType, err)
		}
		env.Data = raw
	}
	return json.Marshal(&env)
}

// decodeEnvelope — разбирает входящий кадр и проверяет обязательные поля.
// Семантика полезной нагрузки здесь не проверяется: корректный по форме
// конверт с неожиданным data отдаётся выше как есть.
func decodeEnvelope(frame []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if env.MessageType == "" {
		return nil, fmt.Errorf("%w: missing messageType", ErrMalformedMessage)
	}
	if env.APIName != APIName {
		return nil, fmt.Errorf("%w: unexpected apiName %q", ErrMalformedMessage, env.APIName)
	}
	if env.APIVersion != "" && env.APIVersion != APIVersion {
		return nil, fmt.Errorf("%w: unexpected apiVersion %q", ErrMalformedMessage, env.APIVersion)
	}
	return &env, nil
}
