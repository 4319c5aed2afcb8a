package router

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	mem "pawkind/internal/adapters/storage/memory"
	"pawkind/internal/domain/adoptions"
	"pawkind/internal/domain/caretips"
	"pawkind/internal/domain/chatbot"
	"pawkind/internal/domain/contacts"
	"pawkind/internal/domain/pets"
	"pawkind/internal/domain/stories"
	"pawkind/internal/middleware"
	"pawkind/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// StorePinger reporta conectividad del store para /api/health.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Options recibe los repos ya construidos: acá no hay estado global ni
// handles ambient, el caller decide qué adapter inyecta.
type Options struct {
	Pets      pets.Repository
	CareTips  caretips.Repository
	Stories   stories.Repository
	Contacts  contacts.Repository
	Adoptions adoptions.Repository

	// Pinger nil = store en proceso (memoria), siempre conectado.
	Pinger StorePinger

	// StaticDir sirve el cliente con fallback a index.html. Vacío = sin
	// cliente estático (solo API).
	StaticDir string

	Log logger.Logger
}

func New(opts Options) http.Handler {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	// Fallback in-memory para dev/tests si no inyectan repos.
	if opts.Pets == nil {
		opts.Pets = mem.NewPetRepo()
	}
	if opts.CareTips == nil {
		opts.CareTips = mem.NewCareTipRepo()
	}
	if opts.Stories == nil {
		opts.Stories = mem.NewStoryRepo()
	}
	if opts.Contacts == nil {
		opts.Contacts = mem.NewContactRepo()
	}
	if opts.Adoptions == nil {
		opts.Adoptions = mem.NewAdoptionRepo(opts.Pets)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Log))

	// Services por módulo
	petsSvc := pets.NewService(opts.Pets)
	tipsSvc := caretips.NewService(opts.CareTips)
	storiesSvc := stories.NewService(opts.Stories)
	contactsSvc := contacts.NewService(opts.Contacts)
	adoptionsSvc := adoptions.NewService(opts.Adoptions)

	r.Route("/api", func(api chi.Router) {
		pets.RegisterRoutes(api, petsSvc)
		caretips.RegisterRoutes(api, tipsSvc)
		stories.RegisterRoutes(api, storiesSvc)
		contacts.RegisterRoutes(api, contactsSvc)
		adoptions.RegisterRoutes(api, adoptionsSvc)
		chatbot.RegisterRoutes(api)

		api.Get("/health", healthHandler(opts.Pinger))
	})

	if opts.StaticDir != "" {
		r.NotFound(staticHandler(opts.StaticDir))
	}

	return r
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// healthHandler siempre responde 200, incluso con el store caído:
// reporta el estado en el body, no en el status code.
func healthHandler(pinger StorePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := "Connected"
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				database = "Disconnected"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:    "OK",
			Message:   "PawKind API is running",
			Database:  database,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// staticHandler sirve el cliente: archivos existentes tal cual, y
// index.html para cualquier otro GET fuera de /api (routing del lado del
// cliente). Rutas /api desconocidas siguen siendo 404.
func staticHandler(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
