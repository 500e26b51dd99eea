// Package web serves the browser page and its static assets.
//
// GET / renders the page for the stage named by the category and level
// query parameters; every other path is a static file.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pingpong/internal/config"
)

// DefaultPort is used when PORT is unset.
const DefaultPort = "3000"

//go:embed templates/index.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Addr is the host:port to listen on. Empty means AddrFromEnv.
	Addr string

	// StaticDir serves static files from disk instead of the embedded set.
	StaticDir string

	// Progression supplies category names and the level count.
	Progression config.ProgressionConfig

	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration
}

// Server serves the game page.
type Server struct {
	cfg    Config
	logger *log.Logger
	tmpl   *template.Template
	srv    *http.Server
}

// AddrFromEnv returns the listen address for the PORT environment variable.
func AddrFromEnv() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	return ":" + port
}

// New creates a server. A nil logger writes to stderr.
func New(cfg Config, logger *log.Logger) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = AddrFromEnv()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pingpong-web",
		})
	}

	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse template: %w", err)
	}

	var static fs.FS
	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err != nil {
			return nil, fmt.Errorf("web: static dir: %w", err)
		}
		static = os.DirFS(cfg.StaticDir)
	} else {
		static, err = fs.Sub(staticFS, "static")
		if err != nil {
			return nil, fmt.Errorf("web: static files: %w", err)
		}
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		tmpl:   tmpl,
	}

	mux := http.NewServeMux()
	files := http.FileServerFS(static)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			s.handleIndex(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler returns the root handler, request logging included.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("web: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("PingPong server running", "url", "http://"+ln.Addr().String())
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type pageData struct {
	Category     int
	Level        int
	CategoryName string
	PrevLevel    int
	NextCategory int
	NextLevel    int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category, level := ParseStage(r.URL.Query())
	data := pageData{
		Category:     category,
		Level:        level,
		CategoryName: s.cfg.Progression.CategoryName(category),
		PrevLevel:    level - 1,
		NextCategory: category,
		NextLevel:    level + 1,
	}
	if per := s.cfg.Progression.LevelsPerCategory; per > 0 && level >= per {
		data.NextCategory = category + 1
		data.NextLevel = 1
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

// ParseStage reads category and level from a query. Each value is read
// like a leading integer ("4x" is 4); missing, non-numeric or values below 1
// become 1.
func ParseStage(q url.Values) (category, level int) {
	return stageValue(q.Get("category")), stageValue(q.Get("level"))
}

func stageValue(raw string) int {
	n, ok := leadingInt(raw)
	if !ok || n < 1 {
		return 1
	}
	return n
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring surrounding spaces and anything after the digits.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n, digits := 0, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > 1e8 {
			break
		}
		n = n*10 + int(s[i]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}
