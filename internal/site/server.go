// Package site serves the portfolio page and its JSON API.
package site

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jmcampanini/folio/internal/contributions"
	"github.com/jmcampanini/folio/internal/playground"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Executor          playground.Executor
	PerPage           int
	PreferredLanguage string
	Source            contributions.Source
}

// Server owns the gin router. Every request builds its own loader and runner,
// so one visitor's in-flight request never supersedes another's.
type Server struct {
	executor  playground.Executor
	log       *clog.Logger
	perPage   int
	preferred string
	router    *gin.Engine
	source    contributions.Source
}

func New(opts Options) *Server {
	s := &Server{
		executor:  opts.Executor,
		log:       clog.Default().WithPrefix("site"),
		perPage:   opts.PerPage,
		preferred: opts.PreferredLanguage,
		source:    opts.Source,
	}
	s.router = s.newRouter()
	return s
}

// Handler returns the HTTP handler for the whole site.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(recovery(s.log), requestLogger(s.log))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templates, "templates/*.tmpl")))

	router.GET("/", s.handleIndex)
	router.POST("/run", s.handleRun)
	router.POST("/theme", s.handleTheme)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.GET("/contributions", s.handleContributions)
	v1.GET("/runtimes", s.handleRuntimes)
	v1.POST("/execute", s.handleExecute)

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) loader() *contributions.Loader {
	return contributions.NewLoader(s.source, s.perPage, nil)
}

func (s *Server) runner() *playground.Runner {
	return playground.NewRunner(s.executor, s.preferred, nil)
}
