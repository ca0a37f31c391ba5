package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolioBackend/configs"
	"portfolioBackend/internal/handlers"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/msgs"
	"portfolioBackend/internal/ratelimit"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	config         *configs.Config
	router         *gin.Engine
	handler        *handlers.RestHandler
	globalLimiter  ratelimit.Limiter
	contactLimiter ratelimit.Limiter
	onShutdown     func()
}

func NewHttpServer(
	config *configs.Config,
	handler *handlers.RestHandler,
	globalLimiter ratelimit.Limiter,
	contactLimiter ratelimit.Limiter,
	onShutdown func(),
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			config:         config,
			handler:        handler,
			globalLimiter:  globalLimiter,
			contactLimiter: contactLimiter,
			onShutdown:     onShutdown,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.New()
	hs.router.Use(gin.Logger())
	hs.router.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		log.Println("Unhandled error:", recovered)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgInternalServerError,
		})
	}))
	hs.router.Use(cors.New(hs.corsConfig()))
	hs.router.Use(handlers.RateLimitMiddleware(hs.globalLimiter, msgs.MsgTooManyRequests))
}

// corsConfig makes the allow-list authoritative. Reflecting every
// origin requires the explicit cors.allow_all flag.
func (hs *HttpServer) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if hs.config.Viper.GetBool("cors.allow_all") {
		config.AllowOriginFunc = func(origin string) bool { return true }
		return config
	}

	origins := hs.config.Viper.GetStringSlice("cors.allowed_origins")
	if frontend := hs.config.Viper.GetString("cors.frontend_url"); frontend != "" {
		origins = append(origins, frontend)
	}
	config.AllowOrigins = origins
	return config
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.GET("/", hs.handler.Index)
	hs.router.GET("/api/health", hs.handler.Health)

	hs.router.POST("/api/contact",
		handlers.RateLimitMiddleware(hs.contactLimiter, msgs.MsgTooManySubmissions),
		hs.handler.SubmitContact,
	)

	hs.router.POST("/api/admin/login", hs.handler.Login)

	authorized := hs.router.Group("/api/admin")
	authorized.Use(hs.handler.MustAuthenticateMiddleware())
	{
		authorized.GET("/messages", hs.handler.GetMessages)
		authorized.PATCH("/messages/:id/read", hs.handler.MarkMessageAsRead)
		authorized.DELETE("/messages/:id", hs.handler.DeleteMessage)
		authorized.GET("/stats", hs.handler.GetStats)
	}

	// Static admin panel shell, when bundled next to the binary
	if adminDir := hs.config.Viper.GetString("static.admin_dir"); adminDir != "" {
		if info, err := os.Stat(adminDir); err == nil && info.IsDir() {
			hs.router.Static("/admin", adminDir)
		}
	}

	hs.router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgRouteNotFound,
		})
	})
}

func (hs *HttpServer) startServer() *http.Server {
	port := hs.config.Viper.GetInt("server.port")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on :%d", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if hs.onShutdown != nil {
		hs.onShutdown()
	}

	log.Println("Server exiting")
}
