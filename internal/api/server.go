package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jultty/en/internal/config"
	"github.com/jultty/en/internal/graph"
)

// Server is the HTTP server for the wiki.
type Server struct {
	router chi.Router
	store  *graph.Store
	pages  pages
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *graph.Store, log *slog.Logger, cfg config.Config) (*Server, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	s := &Server{
		store: store,
		pages: p,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSearch)
	r.Get("/node/{id}", s.handleNode)
	r.Post("/node/{id}", s.handleNode)
	r.Get("/tree", s.handleTree)
	r.Get("/about", s.handleAbout)
	r.Get("/acknowledgments", s.handleAcknowledgments)
	r.Get("/graph/{format}", s.handleGraph)

	if s.cfg.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir)))
		r.Handle("/static/*", fs)
	}

	r.NotFound(s.handleNotFound)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
