package watcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"vtsgo/pkg/vtsclient"
)

const hotkeyTimeout = 5 * time.Second

// Watcher — наблюдатель за одним экземпляром VTube Studio.
type Watcher struct {
	cfg Config
	log zerolog.Logger

	vts    *vtsclient.VTS
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	wg      sync.WaitGroup
}

func New(cfg Config, log zerolog.Logger) *Watcher {
	return &Watcher{
		cfg: cfg,
		log: log.With().Str("component", "watcher").Logger(),
	}
}

// Start — подключается, подписывается на события из конфига и запускает
// фоновый опрос статистики.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return errors.New("watcher: already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.vts = vtsclient.New(w.cfg.ClientConfig(), w.log)

	if _, err := w.vts.Start(ctx); err != nil {
		cancel()
		return err
	}

	for _, rule := range w.cfg.Events {
		w.vts.OnEvent(rule.Name, w.handlerFor(rule))
		if _, err := w.vts.SubscribeEvent(ctx, rule.Name, nil); err != nil {
			w.log.Warn().Err(err).Str("event", rule.Name).Msg("event subscription failed")
			continue
		}
		w.log.Info().Str("event", rule.Name).Msg("subscribed")
	}

	if w.cfg.StatsInterval > 0 {
		w.wg.Add(1)
		go w.pollStats(ctx)
	}

	w.started = true
	return nil
}

// Stop — закрывает сессию и дожидается фоновых горутин. Повторный
// Stop — no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.started = false
	cancel := w.cancel
	w.mu.Unlock()

	cancel()
	w.vts.Close()
	w.wg.Wait()
}

// handlerFor — обработчик по правилу: лог и, если задан, запуск хоткея.
func (w *Watcher) handlerFor(rule EventRule) vtsclient.EventHandler {
	return func(ev *vtsclient.Event) {
		entry := w.log.Info().Str("event", ev.Type)
		if rule.LogPayload && len(ev.Data) > 0 {
			entry = entry.RawJSON("data", ev.Data)
		}
		entry.Msg("event received")

		if rule.TriggerHotkey == "" {
			return
		}
		// запрос к API — вне горутины-доставщика событий
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), hotkeyTimeout)
			defer cancel()
			if _, err := w.vts.TriggerHotkey(ctx, rule.TriggerHotkey); err != nil {
				w.log.Warn().Err(err).Str("hotkey", rule.TriggerHotkey).Msg("hotkey trigger failed")
			}
		}()
	}
}
