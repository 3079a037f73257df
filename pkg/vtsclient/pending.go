package vtsclient

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// pendingResult — ровно один из двух: конверт ответа либо ошибка.
type pendingResult struct {
	env *Envelope
	err error
}

type pendingEntry struct {
	id    string
	done  chan pendingResult // буфер 1, запись ровно один раз
	timer *time.Timer
}

// pendingRequests — реестр запросов, ожидающих ответа по requestID.
// Идентификаторы генерирует сам реестр (счётчик + кусок uuid), поэтому
// коллизии среди живых записей исключены по построению; проверка на
// дубликат оставлена как страховка.
type pendingRequests struct {
	mu      sync.Mutex
	entries map[string]*pendingEntry
	counter uint64
	log     zerolog.Logger
}

func newPendingRequests(log zerolog.Logger) *pendingRequests {
	return &pendingRequests{
		entries: make(map[string]*pendingEntry),
		log:     log,
	}
}

// register — создаёт запись с дедлайном. По истечении таймера запись
// удаляется, а ожидающий получает ErrRequestTimeout; опоздавший ответ
// после этого просто отбрасывается. Таймер взводится до публикации записи
// в карте: take читает e.timer без собственной синхронизации.
func (p *pendingRequests) register(timeout time.Duration) (*pendingEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.counter++
	id := fmt.Sprintf("%d-%s", p.counter, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	if _, dup := p.entries[id]; dup {
		return nil, fmt.Errorf("vtsclient: duplicate request id %q", id)
	}
	e := &pendingEntry{
		id:   id,
		done: make(chan pendingResult, 1),
	}
	if timeout > 0 {
		e.timer = time.AfterFunc(timeout, func() {
			p.reject(id, ErrRequestTimeout)
		})
	}
	p.entries[id] = e
	return e, nil
}

// take — изымает запись из реестра (и гасит её таймер). nil, если записи
// уже нет: ответ пришёл поздно, дважды, либо вовсе без нашего запроса.
func (p *pendingRequests) take(id string) *pendingEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[id]
	if !ok {
		return nil
	}
	delete(p.entries, id)
	if e.timer != nil {
		e.timer.Stop()
	}
	return e
}

// resolve — успешно завершает ожидающий запрос.
func (p *pendingRequests) resolve(id string, env *Envelope) {
	e := p.take(id)
	if e == nil {
		p.log.Debug().Str("request_id", id).Str("message_type", env.MessageType).
			Msg("response without pending request, dropped")
		return
	}
	e.done <- pendingResult{env: env}
}

// reject — завершает ожидающий запрос ошибкой.
func (p *pendingRequests) reject(id string, err error) {
	e := p.take(id)
	if e == nil {
		p.log.Debug().Str("request_id", id).Err(err).
			Msg("rejection without pending request, dropped")
		return
	}
	e.done <- pendingResult{err: err}
}

// failAll — валит все ожидающие запросы разом (закрытие сессии или
// потеря соединения). Ни одна запись не переживает своё соединение.
func (p *pendingRequests) failAll(err error) {
	p.mu.Lock()
	entries := p.entries
	p.entries = make(map[string]*pendingEntry)
	p.mu.Unlock()

	for _, e := range entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		e.done <- pendingResult{err: err}
	}
}

func (p *pendingRequests) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
