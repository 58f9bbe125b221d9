package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	AI       AIConfig
	Redis    RedisConfig
	Snapshot SnapshotConfig
	Business BusinessConfig
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AIConfig proveedor de IA para interpretar mensajes y responder al asistente.
type AIConfig struct {
	Provider         string // gemini | anthropic
	GeminiAPIKey     string
	GeminiModel      string
	AnthropicAPIKey  string
	AnthropicModel   string
	Timeout          time.Duration
	FailureThreshold int
	Cooldown         time.Duration
	RatePerSecond    float64
}

// RedisConfig marcadores de sesión. Addr vacío usa el store en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SnapshotConfig archivo de backups.
type SnapshotConfig struct {
	Backend        string // file | postgres | none
	Dir            string
	RestoreOnStart bool
	DB             DBConfig
}

// BusinessConfig parámetros del negocio.
type BusinessConfig struct {
	LowStockThreshold int
	WhatsAppLogLimit  int
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

// DSN connection string con URL encoding para caracteres especiales en la contraseña.
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, JWT_SECRET, AI_PROVIDER, REDIS_ADDR, etc.
func Load() (*Config, error) {
	// .env al entorno del proceso; si no existe no es error
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "wellcomputer-pos"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "wellcomputer-pos"),
		},
		AI: AIConfig{
			Provider:         strings.ToLower(getString(v, "AI_PROVIDER", "gemini")),
			GeminiAPIKey:     getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:      getString(v, "GEMINI_MODEL", "gemini-2.0-flash"),
			AnthropicAPIKey:  getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:   getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			Timeout:          time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 10)) * time.Second,
			FailureThreshold: getInt(v, "AI_FAILURE_THRESHOLD", 3),
			Cooldown:         time.Duration(getInt(v, "AI_COOLDOWN_SECONDS", 60)) * time.Second,
			RatePerSecond:    getFloat(v, "AI_RATE_PER_SECOND", 2),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Snapshot: SnapshotConfig{
			Backend:        strings.ToLower(getString(v, "SNAPSHOT_BACKEND", "file")),
			Dir:            getString(v, "SNAPSHOT_DIR", "./data/snapshots"),
			RestoreOnStart: getBool(v, "SNAPSHOT_RESTORE_ON_START", false),
			DB: DBConfig{
				DatabaseURL: getString(v, "DATABASE_URL", ""),
				Host:        getString(v, "DB_HOST", "localhost"),
				Port:        getInt(v, "DB_PORT", 5432),
				User:        getString(v, "DB_USER", "postgres"),
				Password:    getString(v, "DB_PASSWORD", ""),
				DBName:      getString(v, "DB_NAME", "wellcomputer"),
				SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			},
		},
		Business: BusinessConfig{
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", 5),
			WhatsAppLogLimit:  getInt(v, "WHATSAPP_LOG_LIMIT", 100),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "gemini", "anthropic":
	default:
		return fmt.Errorf("config: AI_PROVIDER desconocido %q", c.AI.Provider)
	}
	switch c.Snapshot.Backend {
	case "file", "postgres", "none":
	default:
		return fmt.Errorf("config: SNAPSHOT_BACKEND desconocido %q", c.Snapshot.Backend)
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config: HTTP_PORT inválido %d", c.HTTP.Port)
	}
	return nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
