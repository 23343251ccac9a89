package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
	"github.com/quantmind-br/mcpcheck-go/internal/manifest"
	"github.com/quantmind-br/mcpcheck-go/internal/utils"
)

// Server serves a validated manifest file at the well-known path so a
// manifest can be exercised end to end before publishing it
type Server struct {
	addr        string
	body        []byte
	fingerprint string
	log         *utils.Logger
	router      chi.Router
}

// Options contains options for creating a Server
type Options struct {
	Addr           string
	AllowedOrigins []string
	ManifestPath   string
	Logger         *utils.Logger
}

// New creates a manifest server. The manifest file is validated up
// front; serving an invalid manifest is refused.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	body, err := os.ReadFile(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	validator, err := manifest.NewValidator()
	if err != nil {
		return nil, err
	}

	result := validator.Validate(body)
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrManifestInvalid, result.Diagnostic())
	}

	fingerprint, _ := manifest.Fingerprint(body)

	s := &Server{
		addr:        opts.Addr,
		body:        body,
		fingerprint: fingerprint,
		log:         opts.Logger.WithComponent("server"),
	}
	s.router = s.buildRouter(opts.AllowedOrigins)

	s.log.Info().
		Str("version", result.Manifest.ManifestVersion).
		Int("tools", len(result.Manifest.Tools)).
		Str("fingerprint", fingerprint).
		Msg("manifest loaded")

	return s, nil
}

func (s *Server) buildRouter(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthHandler)
	r.Get(domain.WellKnownPath, s.manifestHandler)

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) manifestHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(s.body)
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks
func (s *Server) Run() error {
	s.log.Info().Str("addr", s.addr).Str("path", domain.WellKnownPath).Msg("serving manifest")
	return http.ListenAndServe(s.addr, s.router)
}
