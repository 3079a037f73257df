package watcher

import (
	"context"
	"time"
)

const statsRequestTimeout = 10 * time.Second

// pollStats — периодический опрос StatisticsRequest: видно, жив ли
// VTube Studio и как себя чувствует (FPS, аптайм, плагины).
func (w *Watcher) pollStats(ctx context.Context) {
	defer w.wg.Done()

	t := time.NewTicker(w.cfg.StatsInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rctx, cancel := context.WithTimeout(ctx, statsRequestTimeout)
			st, err := w.vts.Statistics(rctx)
			cancel()
			if err != nil {
				w.log.Warn().Err(err).Msg("statistics poll failed")
				continue
			}
			w.log.Info().
				Int("framerate", st.Framerate).
				Int64("uptime_ms", st.Uptime).
				Int("connected_plugins", st.ConnectedPlugins).
				Str("version", st.VTubeStudioVersion).
				Msg("vts statistics")
		}
	}
}
