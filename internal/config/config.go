package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Audit sinks soportados.
const (
	AuditSinkMongo = "mongo"
	AuditSinkAMQP  = "amqp"
	AuditSinkLog   = "log"
)

type App struct {
	// HTTP
	Port           string        `envconfig:"PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// DB (vacío = repos in-memory)
	DBDSN          string `envconfig:"DB_DSN"`
	DBMaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"4"`

	// Historial
	AuditSink       string `envconfig:"AUDIT_SINK" default:"mongo"`
	AuditQueueSize  int    `envconfig:"AUDIT_QUEUE_SIZE" default:"256"`
	MongoURI        string `envconfig:"MONGO_URI"`
	MongoDB         string `envconfig:"MONGO_DB" default:"historial_ideam"`
	MongoCollection string `envconfig:"MONGO_COLLECTION" default:"historial"`
	RabbitURL       string `envconfig:"RABBIT_URL"`
	AuditExchange   string `envconfig:"AUDIT_EXCHANGE" default:"brigadas.audit"`

	// Sesión
	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	BcryptCost    int           `envconfig:"BCRYPT_COST" default:"10"`
	DebugAuth     bool          `envconfig:"DEBUG_AUTH" default:"false"`

	// Zona para "hoy"
	TZName string `envconfig:"TZ_NAME" default:"America/Bogota"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	AppName   string `envconfig:"APP_NAME" default:"brigadas-forestales"`
}

// Load lee un .env opcional (sin pisar variables ya definidas) y procesa el entorno.
// No valida; ver Validate.
func Load(envFiles ...string) (App, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// Validate revisa lo que necesita el servidor HTTP (migrate solo usa DB_DSN).
func (c App) Validate() error {
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("config: SESSION_SECRET es obligatorio")
	}
	switch c.AuditSink {
	case AuditSinkMongo, AuditSinkAMQP, AuditSinkLog:
	default:
		return fmt.Errorf("config: AUDIT_SINK inválido %q (mongo|amqp|log)", c.AuditSink)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: TZ_NAME: %w", err)
	}
	return nil
}

func (c App) Location() (*time.Location, error) {
	return time.LoadLocation(c.TZName)
}

func (c App) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
