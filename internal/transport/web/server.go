package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/domain"
	"blogapi/internal/transport/web/v1/auth"
	"blogapi/internal/transport/web/v1/blog"
	"blogapi/internal/transport/web/v1/health"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, rep Repos, ad AuthDeps, storage domain.BlobStorage, cache domain.Cache) *Server {
	authLog := log.New(logger.Writer(), logger.Prefix()+"[auth] ", logger.Flags())
	blogLog := log.New(logger.Writer(), logger.Prefix()+"[blog] ", logger.Flags())
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())

	h := handlers{
		register: &auth.HandlerRegister{Log: authLog, Users: rep.Users, Hasher: ad.Hasher},
		login:    &auth.HandlerLogin{Log: authLog, Users: rep.Users, Hasher: ad.Hasher, Tokens: ad.Tokens},
		logout:   &auth.HandlerLogout{Log: authLog, Users: rep.Users},
		blog: &blog.Handler{
			Log:     blogLog,
			Blogs:   rep.Blogs,
			Storage: storage,
			Cache:   cache,
			ListTTL: cfg.ListTTL,
			BlogTTL: cfg.BlogTTL,
		},
		health: &health.Handler{Log: healthLog, DB: rep.Users, Cache: cache, Storage: storage},
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(h, ad.Session, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
