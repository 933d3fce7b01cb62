package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes bundles the handlers and guards mounted by NewRouter.
type Routes struct {
	Base      *Handler
	Inquiries *InquiryHandler
	Projects  *ProjectHandler
	Services  *ServiceHandler
	Auth      *AuthHandler
	Uploads   *UploadHandler

	// AdminAuth guards moderation and catalog writes.
	AdminAuth func(http.Handler) http.Handler
	// ContactLimiter throttles POST /api/contact. Nil disables throttling.
	ContactLimiter *RateLimiter
	// TrustedProxies > 0 lets forwarding headers rewrite RemoteAddr.
	TrustedProxies int

	// UploadDir is served read-only under UploadURLPrefix when both are set.
	UploadDir       string
	UploadURLPrefix string
}

// NewRouter builds the chi router for the public API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if rt.TrustedProxies > 0 {
		r.Use(middleware.RealIP)
	}
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)
	r.Use(SecurityHeaders)
	r.Use(rt.Base.CORS)

	r.Get("/api/health", rt.Base.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if rt.UploadDir != "" && rt.UploadURLPrefix != "" {
		fs := http.StripPrefix(rt.UploadURLPrefix, http.FileServer(http.Dir(rt.UploadDir)))
		r.Method(http.MethodGet, rt.UploadURLPrefix+"/*", fs)
	}

	admin := rt.AdminAuth
	if admin == nil {
		admin = func(next http.Handler) http.Handler { return next }
	}

	r.Route("/api/contact", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if rt.ContactLimiter != nil {
				r.Use(rt.ContactLimiter.Middleware)
			}
			r.Post("/", rt.Inquiries.Submit)
		})
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/", rt.Inquiries.List)
			r.Patch("/{id}/status", rt.Inquiries.UpdateStatus)
		})
	})

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", rt.Projects.List)
		r.Get("/{id}", rt.Projects.Get)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", rt.Projects.Create)
			r.Put("/{id}", rt.Projects.Update)
			r.Delete("/{id}", rt.Projects.Delete)
		})
	})

	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", rt.Services.List)
		r.Get("/{id}", rt.Services.Get)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", rt.Services.Create)
			r.Put("/{id}", rt.Services.Update)
			r.Delete("/{id}", rt.Services.Delete)
		})
	})

	if rt.Auth != nil {
		r.Post("/api/admin/login", rt.Auth.Login)
	}
	if rt.Uploads != nil {
		r.With(admin).Post("/api/uploads", rt.Uploads.Upload)
		r.With(admin).Delete("/api/uploads/{file}", rt.Uploads.Delete)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	})
	return r
}
