package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

// GetConfig loads configuration once per process. Values come from an
// optional config.yaml next to the binary, overridden by environment
// variables.
func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Viper: newViper(),
		}
	})
	return config
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("database.path", "./database.sqlite")
	v.SetDefault("jwt.expiration_time", 86400)
	v.SetDefault("cors.allow_all", false)
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:3000",
	})
	v.SetDefault("ratelimit.global.max", 100)
	v.SetDefault("ratelimit.global.window", "15m")
	v.SetDefault("ratelimit.contact.max", 5)
	v.SetDefault("ratelimit.contact.window", "1h")
	v.SetDefault("ratelimit.store", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("static.admin_dir", "./public")

	mustBindEnv(v, "server.port", "PORT")
	mustBindEnv(v, "database.path", "DB_PATH")
	mustBindEnv(v, "admin.email", "ADMIN_EMAIL")
	mustBindEnv(v, "admin.password", "ADMIN_PASSWORD")
	mustBindEnv(v, "jwt.secret", "JWT_SECRET")
	mustBindEnv(v, "cors.frontend_url", "FRONTEND_URL")
	mustBindEnv(v, "redis.addr", "REDIS_ADDR")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	return v
}

func mustBindEnv(v *viper.Viper, key, env string) {
	if err := v.BindEnv(key, env); err != nil {
		log.Fatalf("Failed to bind env %s: %v", env, err)
	}
}
