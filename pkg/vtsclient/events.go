package vtsclient

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// Event — входящее событие VTube Studio, доставленное обработчикам.
type Event struct {
	Type      string
	Timestamp int64
	Data      json.RawMessage
}

// Bind — разбирает полезную нагрузку события в типизированную структуру
// (ModelLoadedEventData и т.п.).
func (ev *Event) Bind(v any) error {
	if len(ev.Data) == 0 {
		return nil
	}
	return json.Unmarshal(ev.Data, v)
}

// EventHandler — обработчик события одного вида.
type EventHandler func(ev *Event)

type handlerEntry struct {
	key uintptr // идентичность функции: повторная регистрация — no-op
	fn  EventHandler
}

type dispatchJob struct {
	fn EventHandler
	ev *Event
}

// eventDispatcher — реестр обработчиков по виду события плюс одна
// горутина-доставщик. Очередь заданий не ограничена: цикл чтения никогда
// не блокируется на обработчиках, даже если один из них завис. Внутри
// одного вида события порядок вызовов равен порядку регистрации, а паника
// в обработчике гасится на месте.
type eventDispatcher struct {
	mu       sync.Mutex
	handlers map[string][]handlerEntry
	queue    []dispatchJob
	wake     chan struct{}
	stopped  chan struct{}
	running  bool
	log      zerolog.Logger
}

func newEventDispatcher(log zerolog.Logger) *eventDispatcher {
	return &eventDispatcher{
		handlers: make(map[string][]handlerEntry),
		log:      log,
	}
}

func handlerKey(h EventHandler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// on — добавляет обработчик в конец списка вида. Та же функция на тот же
// вид второй раз не добавляется: одно событие — один её вызов.
func (d *eventDispatcher) on(kind string, h EventHandler) {
	if h == nil {
		return
	}
	key := handlerKey(h)
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.handlers[kind] {
		if e.key == key {
			return
		}
	}
	d.handlers[kind] = append(d.handlers[kind], handlerEntry{key: key, fn: h})
}

// remove — снимает один обработчик, либо все обработчики вида при h == nil.
// Отсутствующий обработчик — no-op, не ошибка.
func (d *eventDispatcher) remove(kind string, h EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if h == nil {
		delete(d.handlers, kind)
		return
	}
	key := handlerKey(h)
	list := d.handlers[kind]
	for i, e := range list {
		if e.key == key {
			d.handlers[kind] = append(list[:i:i], list[i+1:]...)
			if len(d.handlers[kind]) == 0 {
				delete(d.handlers, kind)
			}
			return
		}
	}
}

// clear — сбрасывает все подписки (закрытие сессии).
func (d *eventDispatcher) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[string][]handlerEntry)
}

// start — запускает доставщика. Повторный start на работающем — no-op.
func (d *eventDispatcher) start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.queue = nil
	d.wake = make(chan struct{}, 1)
	d.stopped = make(chan struct{})
	d.running = true
	go d.run(d.wake, d.stopped)
}

// stop — останавливает доставщика: он дорабатывает хвост очереди и
// выходит. Новые dispatch после stop отбрасываются.
func (d *eventDispatcher) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.running = false
	close(d.stopped)
}

// dispatch — ставит событие в очередь всем обработчикам его вида,
// в порядке регистрации. Никогда не блокируется.
func (d *eventDispatcher) dispatch(ev *Event) {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	for _, e := range d.handlers[ev.Type] {
		d.queue = append(d.queue, dispatchJob{fn: e.fn, ev: ev})
	}
	wake := d.wake
	d.mu.Unlock()

	select {
	case wake <- struct{}{}:
	default: // будильник уже взведён
	}
}

// drain — забирает накопленный хвост очереди целиком.
func (d *eventDispatcher) drain() []dispatchJob {
	d.mu.Lock()
	jobs := d.queue
	d.queue = nil
	d.mu.Unlock()
	return jobs
}

func (d *eventDispatcher) run(wake, stopped chan struct{}) {
	for {
		for _, job := range d.drain() {
			d.invoke(job)
		}
		select {
		case <-wake:
		case <-stopped:
			for _, job := range d.drain() {
				d.invoke(job)
			}
			return
		}
	}
}

func (d *eventDispatcher) invoke(job dispatchJob) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("event", job.ev.Type).
				Msg("event handler panicked")
		}
	}()
	job.fn(job.ev)
}
