package app

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"portfolioBackend/configs"
	"portfolioBackend/internal/handlers"
	"portfolioBackend/internal/ratelimit"
	"portfolioBackend/internal/repositories"
	"portfolioBackend/internal/servers/database"
	"portfolioBackend/internal/servers/http"
	"portfolioBackend/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.configs = configs.GetConfig()

	// Tokens cannot be signed or verified without a secret, so an
	// unset JWT_SECRET fails closed at startup.
	if app.configs.Viper.GetString("jwt.secret") == "" {
		log.Fatalf("JWT_SECRET is not set, refusing to start")
	}

	db := database.GetDB(app.configs)

	adminRepo := repositories.NewAdminRepository(db)
	authService := services.NewAuthenticationService(adminRepo, app.configs)
	if err := authService.EnsureSeedAdmin(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	messageRepo := repositories.NewMessageRepository(db)
	messageService := services.NewMessageService(messageRepo)

	restHandler := handlers.NewRestHandler(
		authService,
		messageService,
	)

	globalLimiter, contactLimiter := app.initializeLimiters()

	http.NewHttpServer(
		app.configs,
		restHandler,
		globalLimiter,
		contactLimiter,
		func() {
			if err := database.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			} else {
				log.Println("Database connection closed.")
			}
		},
	).Run()
}

func (app *App) initializeLimiters() (ratelimit.Limiter, ratelimit.Limiter) {
	v := app.configs.Viper

	globalLimiter := ratelimit.NewBucketStore(
		v.GetInt("ratelimit.global.max"),
		v.GetDuration("ratelimit.global.window"),
		v.GetDuration("ratelimit.global.window"),
	)

	var contactLimiter ratelimit.Limiter
	if v.GetString("ratelimit.store") == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr: v.GetString("redis.addr"),
		})
		contactLimiter = ratelimit.NewRedisWindowStore(
			client,
			app.ctx,
			"ratelimit:contact",
			v.GetInt("ratelimit.contact.max"),
			v.GetDuration("ratelimit.contact.window"),
		)
	} else {
		contactLimiter = ratelimit.NewWindowStore(
			v.GetInt("ratelimit.contact.max"),
			v.GetDuration("ratelimit.contact.window"),
		)
	}

	return globalLimiter, contactLimiter
}
