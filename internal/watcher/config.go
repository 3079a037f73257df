package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"vtsgo/pkg/vtsclient"
)

// EventRule — реакция на один вид события.
type EventRule struct {
	Name          string `toml:"name"`
	LogPayload    bool   `toml:"log_payload"`
	TriggerHotkey string `toml:"trigger_hotkey"`
}

// Config — настройки наблюдателя.
type Config struct {
	Host            string
	Port            int
	PluginName      string
	PluginDeveloper string
	AuthFile        string
	SaveAuthToken   bool
	StatsInterval   time.Duration
	Events          []EventRule
}

// fileConfig — сырые ключи TOML-файла.
type fileConfig struct {
	Host                 string      `toml:"host"`
	Port                 int         `toml:"port"`
	PluginName           string      `toml:"plugin_name"`
	PluginDeveloper      string      `toml:"plugin_developer"`
	AuthFile             string      `toml:"auth_file"`
	SaveAuthToken        bool        `toml:"save_auth_token"`
	StatsIntervalSeconds int         `toml:"stats_interval_seconds"`
	Events               []EventRule `toml:"events"`
}

// Default — рабочие значения для локального VTube Studio.
func Default() Config {
	return Config{
		Host:            "localhost",
		Port:            8001,
		PluginName:      "vtsgo",
		PluginDeveloper: "vtsgo",
		AuthFile:        "vts_token.txt",
		SaveAuthToken:   true,
		StatsInterval:   time.Minute,
	}
}

// Load — читает TOML-конфиг, накладывая заданные ключи поверх Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load watcher config: %w", err)
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("plugin_name") {
		cfg.PluginName = strings.TrimSpace(raw.PluginName)
	}
	if meta.IsDefined("plugin_developer") {
		cfg.PluginDeveloper = strings.TrimSpace(raw.PluginDeveloper)
	}
	if meta.IsDefined("auth_file") {
		cfg.AuthFile = strings.TrimSpace(raw.AuthFile)
	}
	if meta.IsDefined("save_auth_token") {
		cfg.SaveAuthToken = raw.SaveAuthToken
	}
	if meta.IsDefined("stats_interval_seconds") {
		cfg.StatsInterval = time.Duration(raw.StatsIntervalSeconds) * time.Second
	}
	if meta.IsDefined("events") {
		cfg.Events = raw.Events
	}

	if cfg.Host == "" {
		return Config{}, fmt.Errorf("watcher config: host must not be empty")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("watcher config: invalid port %d", cfg.Port)
	}
	for _, rule := range cfg.Events {
		if rule.Name == "" {
			return Config{}, fmt.Errorf("watcher config: event rule without name")
		}
	}
	return cfg, nil
}

// ClientConfig — конфиг vtsclient из настроек наблюдателя.
func (c Config) ClientConfig() vtsclient.Config {
	return vtsclient.Config{
		Host:            c.Host,
		Port:            c.Port,
		PluginName:      c.PluginName,
		PluginDeveloper: c.PluginDeveloper,
		AuthFile:        c.AuthFile,
		SaveAuthToken:   c.SaveAuthToken,
	}
}
