package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/togglewalk/internal/presentation/graph"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/aretw0/togglewalk/pkg/ports"
	"github.com/aretw0/togglewalk/pkg/runner"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// APIVersion is reported by GET /info.
const APIVersion = "1.0.0"

// maxBody bounds request bodies; a full 64 node batch line fits easily.
const maxBody = 4 << 20

// Options wires the server to its collaborators.
type Options struct {
	// Cached and Plain answer /solve requests; Cached is the default.
	Cached ports.Solver
	Plain  ports.Solver

	// Gatherer backs GET /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer

	Logger  *slog.Logger
	Version string
}

// Server implements the generated ServerInterface
type Server struct {
	opts Options
}

var _ ServerInterface = (*Server)(nil)

// NewHandler creates the HTTP handler. Requests to API routes are checked
// against the embedded OpenAPI document before they reach a handler.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{opts: opts}

	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validate, err := requestValidator(swagger, opts.Logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)
	r.Use(limitBody)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, swaggerHTML)
	})
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:  r,
		Middlewares: []MiddlewareFunc{validate},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			opts.Logger.Warn("invalid request parameter", "path", r.URL.Path, "err", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
	}), nil
}

// requestValidator rejects requests whose parameters or body do not match
// the operation they are routed to.
func requestValidator(swagger *openapi3.T, logger *slog.Logger) (MiddlewareFunc, error) {
	// Match on paths only, whatever host serves the API.
	swagger.Servers = nil
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Warn("request rejected", "path", r.URL.Path, "err", err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Togglewalk API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Info{
		App:        "togglewalk-http",
		Version:    s.opts.Version,
		ApiVersion: APIVersion,
	})
}

// SolveGraph handles POST /solve.
func (s *Server) SolveGraph(w http.ResponseWriter, r *http.Request, params SolveGraphParams) {
	g, ok := s.decodeGraph(w, r)
	if !ok {
		return
	}

	solver := s.opts.Cached
	if params.Cached != nil && !*params.Cached {
		solver = s.opts.Plain
	}
	if solver == nil {
		http.Error(w, "solver not configured", http.StatusServiceUnavailable)
		return
	}

	report, err := solver.Solve(r.Context(), 1, g)
	if err != nil {
		s.opts.Logger.Error("solve failed", "err", err)
		http.Error(w, fmt.Sprintf("solve error: %v", err), http.StatusInternalServerError)
		return
	}

	resp := SolveResponse{
		Answer: report.Outcome.String(),
		Kind:   SolveResponseKind(report.Outcome.Kind),
		Steps:  report.Outcome.Steps,
	}
	if report.Cached {
		resp.Stats = &CacheStats{
			Hits:      report.Stats.Hits,
			HitSteps:  report.Stats.HitSteps,
			Misses:    report.Stats.Misses,
			MissSteps: report.Stats.MissSteps,
		}
	}
	if report.Stored {
		resp.Stored = ptr(true)
	}
	writeJSON(w, http.StatusOK, resp)
}

// SolveBatch handles POST /batch: a text batch in, one answer line per case out.
func (s *Server) SolveBatch(w http.ResponseWriter, r *http.Request) {
	if s.opts.Cached == nil {
		http.Error(w, "solver not configured", http.StatusServiceUnavailable)
		return
	}
	rn := runner.NewRunner(s.opts.Cached, runner.WithLogger(s.opts.Logger))

	var out bytes.Buffer
	if _, err := rn.Run(r.Context(), r.Body, &out); err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(out.Bytes())
}

// RenderGraph handles POST /graph and returns a Mermaid flowchart.
func (s *Server) RenderGraph(w http.ResponseWriter, r *http.Request, params RenderGraphParams) {
	g, ok := s.decodeGraph(w, r)
	if !ok {
		return
	}
	var overlay *graph.GraphOverlay
	if params.Borders != nil {
		overlay = &graph.GraphOverlay{Borders: *params.Borders, CurrentNode: -1}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(g, overlay))
}

// decodeGraph turns the 1-based edge lists of a GraphRequest into a graph.
func (s *Server) decodeGraph(w http.ResponseWriter, r *http.Request) (*domain.Graph, bool) {
	var body GraphRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.opts.Logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
		return nil, false
	}

	left := make([]int, len(body.Left))
	for i, v := range body.Left {
		left[i] = v - 1
	}
	right := make([]int, len(body.Right))
	for i, v := range body.Right {
		right[i] = v - 1
	}
	g, err := domain.NewGraph(left, right)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return g, true
}

func isInputError(err error) bool {
	var inputErr *domain.InputError
	return errors.As(err, &inputErr) ||
		errors.Is(err, domain.ErrMalformedInput) ||
		errors.Is(err, domain.ErrMalformedGraph) ||
		errors.Is(err, domain.ErrTooManyNodes)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ptr[T any](v T) *T {
	return &v
}
