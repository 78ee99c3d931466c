package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "brigadas-forestales/docs"
	"brigadas-forestales/internal/adapters/auth/session"
	mem "brigadas-forestales/internal/adapters/storage/memory"
	pg "brigadas-forestales/internal/adapters/storage/postgres"
	"brigadas-forestales/internal/domain/capturas"
	"brigadas-forestales/internal/domain/personas"
	"brigadas-forestales/internal/domain/regions"
	"brigadas-forestales/internal/domain/reportes"
	"brigadas-forestales/internal/domain/reservas"
	"brigadas-forestales/internal/middleware"
	"brigadas-forestales/internal/platform/logger"
	"brigadas-forestales/internal/platform/metrics"
	"brigadas-forestales/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Sessions emite y verifica tokens. Si es nil se crea uno con SESSION_SECRET
	// (o un secreto aleatorio en modo dev).
	Sessions Sessions

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger
	History personas.ActionLogger // nil = descartar

	// DebugAuth habilita X-Debug-User-ID (solo dev/tests).
	DebugAuth bool

	Clock        func() time.Time // nil = time.Now
	Location     *time.Location   // zona de "hoy"; nil = time.Local
	PasswordCost int              // 0 = bcrypt.DefaultCost

	RequestTimeout time.Duration // 0 = sin timeout
	AllowedOrigins []string      // vacío = "*"
}

// Sessions agrupa emisión y verificación de tokens (session.Manager).
type Sessions interface {
	auth.TokenIssuer
	auth.AuthVerifier
}

type discardHistory struct{}

func (discardHistory) LogAction(string, string, map[string]any) {}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	history := opts.History
	if history == nil {
		history = discardHistory{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	sessions := opts.Sessions
	if sessions == nil {
		secret := os.Getenv("SESSION_SECRET")
		if secret == "" {
			secret = uuid.NewString()
			log.Warn("SESSION_SECRET vacío: usando secreto efímero", nil)
		}
		// secret nunca está vacío aquí
		m, _ := session.NewManager(session.Config{Secret: secret})
		sessions = m
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	r.Use(middleware.AuthContext(sessions, opts.DebugAuth))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		personRepo  personas.Repository
		reservaRepo reservas.Repository
		fieldRepo   capturas.Repository
		reportRepo  reportes.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn, 0)
			if err == nil {
				db = opened
			} else {
				log.Error("postgres no disponible, usando repos in-memory", map[string]any{"error": err})
			}
		}
	}

	if db != nil {
		personRepo = pg.NewPersonasRepo(db)
		reservaRepo = pg.NewReservasRepo(db)
		fieldRepo = pg.NewCapturasRepo(db)
		reportRepo = pg.NewReportesRepo(db)
	} else {
		field := mem.NewFieldRepo()
		personRepo = mem.NewPersonaRepo()
		reservaRepo = mem.NewReservaRepo()
		fieldRepo = field
		reportRepo = field
	}

	// Services por módulo
	personasSvc := personas.NewService(personRepo, opts.PasswordCost)
	reservasSvc := reservas.NewService(reservaRepo, personasSvc, opts.Location).WithClock(clock)
	capturasSvc := capturas.NewService(fieldRepo, reservasSvc).WithClock(clock)
	reportesSvc := reportes.NewService(reportRepo, opts.Location)

	// Rutas por módulo
	regions.RegisterRoutes(r)
	personas.RegisterRoutes(r, personasSvc, sessions, history, log)
	reservas.RegisterRoutes(r, reservasSvc, log)
	capturas.RegisterRoutes(r, capturasSvc, log)
	reportes.RegisterRoutes(r, reportesSvc, log)

	return r
}
