package router

import (
	"net/http"
	"time"

	mem "medication-reminder/internal/adapters/storage/memory"
	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/domain/readings"
	"medication-reminder/internal/domain/refill"
	"medication-reminder/internal/domain/subscriptions"
	"medication-reminder/internal/metrics"
	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/auth"
	"medication-reminder/internal/ports/textgen"
	"medication-reminder/internal/reminders"

	_ "medication-reminder/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Repositories agrupa los puertos de persistencia de cada módulo.
// Campos nil se completan con la implementación in-memory.
type Repositories struct {
	Medications   medications.Repository
	BloodPressure readings.BloodPressureRepository
	Diabetic      readings.DiabeticRepository
	Subscriptions subscriptions.Repository
	Contacts      contacts.Repository
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Repos Repositories

	// TextGen nil => recomendación determinística en refill-estimate.
	TextGen textgen.Generator

	Logger          logger.Logger
	Metrics         *metrics.Metrics
	DefaultLocation *time.Location

	Subscriptions    subscriptions.Options
	RefillRatePerMin int

	ReminderInterval time.Duration
}

// App es el handler HTTP más los componentes con ciclo de vida propio.
type App struct {
	Handler   http.Handler
	Reminders *reminders.Runner
	Metrics   *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	return New(opts).Handler
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	loc := opts.DefaultLocation
	if loc == nil {
		loc = time.UTC
	}
	repos := withMemoryDefaults(opts.Repos)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	// AuthContext antes del access log para que el log lleve user_id.
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.AccessLog(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	subsSvc := subscriptions.NewService(repos.Subscriptions, opts.Subscriptions)
	contactsSvc := contacts.NewService(repos.Contacts)
	medsSvc := medications.NewService(repos.Medications, subsSvc)
	readingsSvc := readings.NewService(repos.BloodPressure, repos.Diabetic, subsSvc)
	refillSvc := refill.NewService(opts.TextGen, m)

	runner := reminders.NewRunner(medsSvc, contactsSvc, reminders.Options{
		Interval: opts.ReminderInterval,
		Location: loc,
		Logger:   log,
		Recorder: m,
	})

	// Rutas por módulo
	medications.RegisterRoutes(r, medsSvc, contactsSvc, loc)
	refill.RegisterRoutes(r, refillSvc, medsSvc, loc, middleware.NewRateLimiter(opts.RefillRatePerMin).Middleware)
	readings.RegisterRoutes(r, readingsSvc)
	subscriptions.RegisterRoutes(r, subsSvc)
	contacts.RegisterRoutes(r, contactsSvc)
	reminders.RegisterRoutes(r, runner)

	return &App{Handler: r, Reminders: runner, Metrics: m}
}

func withMemoryDefaults(in Repositories) Repositories {
	if in.Medications == nil {
		in.Medications = mem.NewMedicationRepo()
	}
	if in.BloodPressure == nil {
		in.BloodPressure = mem.NewBloodPressureRepo()
	}
	if in.Diabetic == nil {
		in.Diabetic = mem.NewDiabeticRepo()
	}
	if in.Subscriptions == nil {
		in.Subscriptions = mem.NewSubscriptionRepo()
	}
	if in.Contacts == nil {
		in.Contacts = mem.NewContactRepo()
	}
	return in
}
