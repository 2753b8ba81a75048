package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Secret signs the session cookie. Override it in production.
	Secret string `yaml:"secret"`
}

type DBConfig struct {
	// Type selects the driver: sqlite (default) or postgres.
	Type   string `yaml:"type"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Name   string `yaml:"name"`
	User   string `yaml:"user"`
	Passwd string `yaml:"passwd"`
	Debug  bool   `yaml:"debug"`
}

// AdminConfig is the single admin credential pair. The storefront has one
// admin role with no permission levels.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// NotifyConfig configures the order notification sink (Telegram bot API).
// An empty BotToken or ChatID disables delivery.
type NotifyConfig struct {
	Endpoint string `yaml:"endpoint"`
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
	// Timeout bounds the outbound call in seconds.
	Timeout int `yaml:"timeout"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system"`
	Web      WebConfig    `yaml:"web"`
	Database DBConfig     `yaml:"database"`
	Admin    AdminConfig  `yaml:"admin"`
	Notify   NotifyConfig `yaml:"notify"`
	Logger   LogConfig    `yaml:"logger"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "webstore",
			Location: "Asia/Phnom_Penh",
			Workdir:  "/var/webstore",
		},
		Web: WebConfig{
			Host:   "0.0.0.0",
			Port:   1880,
			Secret: "change-me-in-production",
		},
		Database: DBConfig{
			Type: "sqlite",
			Host: "127.0.0.1",
			Port: 5432,
			Name: "webstore",
			User: "postgres",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "123",
		},
		Notify: NotifyConfig{
			Endpoint: "https://api.telegram.org",
			Timeout:  10,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/webstore/webstore.log",
		},
	}
}

// LoadConfig reads the YAML config file and applies environment overrides.
// A missing file is not an error; defaults apply.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig()
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}
	setEnvValue("WEBSTORE_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("WEBSTORE_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("WEBSTORE_WEB_PORT", &cfg.Web.Port)
	setEnvValue("WEBSTORE_WEB_SECRET", &cfg.Web.Secret)
	setEnvValue("WEBSTORE_DB_TYPE", &cfg.Database.Type)
	setEnvValue("WEBSTORE_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("WEBSTORE_DB_PORT", &cfg.Database.Port)
	setEnvValue("WEBSTORE_DB_NAME", &cfg.Database.Name)
	setEnvValue("WEBSTORE_DB_USER", &cfg.Database.User)
	setEnvValue("WEBSTORE_DB_PWD", &cfg.Database.Passwd)
	setEnvValue("WEBSTORE_ADMIN_USERNAME", &cfg.Admin.Username)
	setEnvValue("WEBSTORE_ADMIN_PASSWORD", &cfg.Admin.Password)
	setEnvValue("WEBSTORE_NOTIFY_ENDPOINT", &cfg.Notify.Endpoint)
	setEnvValue("WEBSTORE_NOTIFY_BOT_TOKEN", &cfg.Notify.BotToken)
	setEnvValue("WEBSTORE_NOTIFY_CHAT_ID", &cfg.Notify.ChatID)
	return cfg
}

// InitDirs ensures the working directory exists before the database opens.
func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "data"), 0755)
}

func setEnvValue(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok {
		*val = v
	}
}

func setEnvIntValue(name string, val *int) {
	if v, ok := os.LookupEnv(name); ok {
		if i, err := strconv.Atoi(v); err == nil {
			*val = i
		}
	}
}
