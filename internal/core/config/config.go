package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type Log struct {
	Level string
	JSON  bool
	// 文件切割（File 为空时只写 stdout）
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Latency struct {
	MinMs int
	MaxMs int
}

// Mock mock 后端的行为开关
type Mock struct {
	BasePath          string
	SeedFile          string
	DefaultLimit      int
	DefaultUnitPrice  float64
	StrictTransitions bool
	Latency           Latency
}

type Limits struct {
	RPS          float64
	Burst        int
	PerIP        bool
	Concurrency  int64
	MaxBodyBytes int64
	TimeoutSec   int
}

type CORS struct {
	AllowOrigins []string // 为空表示允许所有来源
}

type Config struct {
	App    App
	Log    Log
	Mock   Mock
	Limits Limits
	CORS   CORS `mapstructure:"cors"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mock-backend")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 5)
	v.SetDefault("app.http.writeTimeoutSec", 10)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 8081)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.maxSizeMB", 100)
	v.SetDefault("log.maxBackups", 5)
	v.SetDefault("log.maxAgeDays", 7)

	v.SetDefault("mock.basePath", "")
	v.SetDefault("mock.seedFile", "")
	v.SetDefault("mock.defaultLimit", 10)
	v.SetDefault("mock.defaultUnitPrice", 0)
	v.SetDefault("mock.strictTransitions", false)
	v.SetDefault("mock.latency.minMs", 0)
	v.SetDefault("mock.latency.maxMs", 0)

	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.perIP", false)
	v.SetDefault("limits.concurrency", 300)
	v.SetDefault("limits.maxBodyBytes", 16<<20)
	v.SetDefault("limits.timeoutSec", 10)
}

// Read 读取配置文件 + APP_ 前缀环境变量；path 为空时只用默认值和环境变量
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Load 启动用：读不到配置直接退出
func Load(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	if _, err := os.Stat(path); err != nil && os.IsNotExist(err) {
		log.Printf("config %s not found, using defaults", path)
		path = ""
	}
	c, err := Read(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return c
}
