package routes

import (
	"net/http"

	"portfolio-app/config"
	sessionapi "portfolio-app/internal/api/session"
	"portfolio-app/internal/app/http/middleware"
	"portfolio-app/internal/proxy"

	"github.com/gin-gonic/gin"
)

// WebProxyMethods is the read-only method set of the public site deployment,
// enough to stream JSON metadata, images and range-requested video.
var WebProxyMethods = []string{http.MethodGet, http.MethodHead}

// BackofficeProxyMethods additionally forwards bodies for record updates and
// preflight requests.
var BackofficeProxyMethods = []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodOptions}

// RegisterWebRoutes mounts the public deployment: a same-origin pipe to the
// backend and nothing else.
func RegisterWebRoutes(r *gin.Engine, fw *proxy.Forwarder) {
	r.Use(middleware.RequestID())

	for _, method := range WebProxyMethods {
		r.Handle(method, "/api/v1/*path", fw.Handle)
	}
	r.GET("/health", fw.HandleHealth)
}

// RegisterBackofficeRoutes mounts the admin deployment: the session surface
// plus the forwarding route, with admin paths gated by a session token.
func RegisterBackofficeRoutes(r *gin.Engine, fw *proxy.Forwarder) {
	r.Use(middleware.RequestID())

	session := r.Group("/session")
	session.Use(middleware.SanitizeAndCleanInputMiddleware())
	session.POST("", sessionapi.Login)
	session.DELETE("", sessionapi.Logout)

	authed := r.Group("/session")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("", sessionapi.CurrentSession)

	if config.GoogleLoginEnabled() {
		r.GET("/auth/google", sessionapi.GoogleStart)
		r.GET("/auth/google/callback", sessionapi.GoogleCallback)
	}

	guarded := r.Group("/")
	guarded.Use(middleware.AdminProxyGuard())
	for _, method := range BackofficeProxyMethods {
		guarded.Handle(method, "/api/v1/*path", fw.Handle)
	}
	r.GET("/health", fw.HandleHealth)
}
