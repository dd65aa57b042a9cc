package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "blogapi/internal/docs"
	"blogapi/internal/transport/web/mw"
	"blogapi/internal/transport/web/v1/auth"
	"blogapi/internal/transport/web/v1/blog"
	"blogapi/internal/transport/web/v1/health"
)

type handlers struct {
	register *auth.HandlerRegister
	login    *auth.HandlerLogin
	logout   *auth.HandlerLogout
	blog     *blog.Handler
	health   *health.Handler
}

func newRouter(h handlers, session mw.Authenticator, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /healthz", h.health.Liveness)
	mux.HandleFunc("GET /readyz", h.health.Readiness)

	// users
	mux.HandleFunc("POST /add", h.register.Register)
	mux.HandleFunc("POST /login", h.login.Login)
	mux.Handle("GET /logout", guard(session, h.logout.Logout))

	// blogs
	mux.Handle("POST /addBlog", guard(session, h.blog.Create))
	mux.HandleFunc("GET /all", h.blog.List)
	mux.HandleFunc("GET /single/{id}", h.blog.GetOne)
	mux.Handle("DELETE /delete/{id}", guard(session, h.blog.Delete))
	mux.Handle("PUT /update/{id}", guard(session, h.blog.Update))
	mux.Handle("PUT /addcomment/{id}", guard(session, h.blog.AddComment))
	mux.Handle("POST /uploadImage", guard(session, limitBody(blog.MaxImageBytes, h.blog.UploadImage)))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func guard(session mw.Authenticator, h http.HandlerFunc) http.Handler {
	return mw.RequireAuth(session, h)
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
