package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/a2lab/schreibtrainer/config"
	"github.com/a2lab/schreibtrainer/database"
	_ "github.com/a2lab/schreibtrainer/docs"
	lexctrl "github.com/a2lab/schreibtrainer/internal/controller/lex"
	writingctrl "github.com/a2lab/schreibtrainer/internal/controller/writing"
	"github.com/a2lab/schreibtrainer/internal/logger"
	"github.com/a2lab/schreibtrainer/internal/model"
	"github.com/a2lab/schreibtrainer/internal/repository"
	"github.com/a2lab/schreibtrainer/internal/service"
	"gorm.io/gorm"
)

// @title A2 Schreibtrainer API
// @version 1.0
// @description API for practicing Goethe A2 writing tasks with AI-generated tasks, structured evaluations and a dictionary/grammar lookup log.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewTaskRepository,
			repository.NewAttemptRepository,
			repository.NewLexLogRepository,
			repository.NewPromptTemplateRepository,
		),

		fx.Provide(
			service.NewModelResolverService,
			service.NewOpenRouterService,
			service.NewTaskService,
			service.NewEvaluationService,
			service.NewHistoryService,
			service.NewLexService,
		),

		fx.Provide(
			writingctrl.NewWritingController,
			lexctrl.NewLexController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedPromptTemplates),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	writingController *writingctrl.WritingController,
	lexController *lexctrl.LexController,
) {
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/generate", writingController.Generate)
		api.POST("/evaluate", writingController.Evaluate)
		api.GET("/history", writingController.GetHistory)
		api.DELETE("/history", writingController.ClearHistory)
		api.GET("/models", writingController.ListModels)

		api.GET("/lookup", lexController.Ping)
		api.POST("/lookup", lexController.Lookup)
		api.GET("/lookup/history", lexController.GetHistory)
		api.DELETE("/lookup/history", lexController.ClearHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("A2 Schreibtrainer API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Task{},
		&model.Attempt{},
		&model.LexLog{},
		&model.PromptTemplate{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedPromptTemplates upserts the examiner base templates so operators can
// inspect what the composers build on.
func SeedPromptTemplates(repo repository.PromptTemplateRepository) error {
	seeds := map[string]string{
		"A2_Generate": service.GenTemplate,
		"A2_Evaluate": service.EvalTemplate,
	}
	for name, content := range seeds {
		if err := repo.Upsert(name, content); err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to seed prompt template")
			return err
		}
	}
	log.Info().Msg("Prompt templates seeded.")
	return nil
}
