// Package watcher — прикладной слой поверх vtsclient: по конфигу
// подписывается на события VTube Studio, логирует их, умеет дёргать
// хоткей в ответ на событие и периодически опрашивает статистику
// (FPS, аптайм, подключённые плагины).
//
// Конфиг — TOML-файл:
//
//	host = "localhost"
//	port = 8001
//	plugin_name = "vtsgo"
//	plugin_developer = "vtsgo"
//	auth_file = "vts_token.txt"
//	save_auth_token = true
//	stats_interval_seconds = 60
//
//	[[events]]
//	name = "ModelLoadedEvent"
//	log_payload = true
//
//	[[events]]
//	name = "HotkeyTriggeredEvent"
//	trigger_hotkey = "MyHotkeyID"
package watcher
