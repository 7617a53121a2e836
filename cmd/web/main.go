package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio-app/config"
	routes "portfolio-app/internal/app/http"
	"portfolio-app/internal/proxy"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     routes.WebProxyMethods,
		AllowHeaders:     []string{"Origin", "Content-Type", "Range"},
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "Accept-Ranges"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	fw := proxy.NewForwarder(config.BACKEND_URL)
	routes.RegisterWebRoutes(r, fw)

	r.Run(":" + config.PORT)
}
