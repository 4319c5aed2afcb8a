// Package config resuelve la configuración del proceso vía viper:
// variables de entorno con defaults razonables para dev.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// DBDSN es la cadena de conexión del store. Sin ella el serve no
	// arranca, salvo que se pida explícitamente el store en memoria.
	DBDSN string

	Port      string
	StaticDir string

	LogLevel  string
	LogFormat string
	AppName   string
}

func Load() Config {
	v := viper.New()

	v.SetDefault("port", "3000")
	v.SetDefault("static_dir", "./web")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "pawkind")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Claves sin prefijo para no romper los deploys existentes (DB_DSN, PORT).
	_ = v.BindEnv("db_dsn", "DB_DSN")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("static_dir", "STATIC_DIR")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LOG_FORMAT")
	_ = v.BindEnv("app_name", "APP_NAME")

	return Config{
		DBDSN:     v.GetString("db_dsn"),
		Port:      v.GetString("port"),
		StaticDir: v.GetString("static_dir"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		AppName:   v.GetString("app_name"),
	}
}
