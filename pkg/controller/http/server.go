package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/medref-lab/medcorpus/pkg/domain/interfaces"
	"github.com/medref-lab/medcorpus/pkg/usecase"
	"github.com/medref-lab/medcorpus/pkg/utils/logging"
)

type Server struct {
	router  *chi.Mux
	corpus  interfaces.Corpus
	uc      *usecase.UseCases
	version string
}

type Options func(*Server)

// WithVersion sets the build version reported by the health endpoint.
func WithVersion(v string) Options {
	return func(s *Server) {
		s.version = v
	}
}

func New(corpus interfaces.Corpus, uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		corpus:  corpus,
		uc:      uc,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/domains", s.domainsHandler)
		r.Get("/search", s.searchHandler)
		r.Route("/records", func(r chi.Router) {
			r.Get("/", s.listRecordsHandler)
			r.Route("/{recordID}", func(r chi.Router) {
				r.Get("/", s.getRecordHandler)
				r.Get("/levels/{depth}", s.getLevelHandler)
				r.Get("/crossrefs", s.getCrossRefsHandler)
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
