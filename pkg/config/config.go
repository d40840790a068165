package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de ambos binarios (web y api), leída vía Viper desde env y opcionalmente archivo.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	DB      DBConfig
	Storage string // api: "postgres" o "memory"
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig describe el servicio REST remoto que consume el front web.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el límite por llamada remota.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// JWTConfig configuración del token de servicio entre web y api.
// Con Secret vacío el web no envía Authorization y la api no lo exige.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env o config.env).
// Las env vars tienen prioridad. defaultPort distingue web (8080) de api (8081).
func Load(defaultPort int) (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "catalogo-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", defaultPort),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8081"), "/"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 5),
			Issuer:     getString(v, "JWT_ISSUER", "catalogo-web"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "catalogo"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Storage: strings.ToLower(getString(v, "STORAGE", "postgres")),
	}

	if cfg.Storage != "postgres" && cfg.Storage != "memory" {
		return nil, fmt.Errorf("config: STORAGE inválido %q (postgres|memory)", cfg.Storage)
	}
	if _, err := url.ParseRequestURI(cfg.Backend.BaseURL); err != nil {
		return nil, fmt.Errorf("config: BACKEND_URL inválido: %w", err)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
