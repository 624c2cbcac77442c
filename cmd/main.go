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
	"gorm.io/gorm"

	"quizforge/config"
	"quizforge/database"
	_ "quizforge/docs" // Swagger docs - auto-generated
	"quizforge/internal/controller"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/model"
	"quizforge/internal/repository"
	"quizforge/internal/service"
)

// @title QuizForge API
// @version 1.0
// @description Questionnaire authoring and quiz playing API with weighted scoring, forking of published questionnaires and PDF export.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewThemeRepository,
			repository.NewQuestionnaireRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewSubmissionRepository,
			repository.NewPreferenceRepository,
		),

		fx.Provide(
			func(userRepo repository.UserRepository, db *gorm.DB, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
			},
			service.NewThemeService,
			service.NewQuestionnaireService,
			service.NewQuestionService,
			service.NewQuizService,
			service.NewPDFService,
			service.NewPreferencesService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewThemeController,
			controller.NewQuestionnaireController,
			controller.NewQuestionController,
			controller.NewQuizController,
			controller.NewPreferencesController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	themeCtrl *controller.ThemeController,
	questionnaireCtrl *controller.QuestionnaireController,
	questionCtrl *controller.QuestionController,
	quizCtrl *controller.QuizController,
	prefCtrl *controller.PreferencesController,
) {
	apiV1 := router.Group("/api/v1")

	auth := apiV1.Group("/auth")
	auth.POST("/register", authCtrl.Register)
	auth.POST("/login", authCtrl.Login)

	authed := apiV1.Group("")
	authed.Use(middleware.RequireAuth(cfg))
	{
		authed.GET("/auth/profile", authCtrl.Profile)

		authed.GET("/themes", themeCtrl.List)
		authed.POST("/themes", themeCtrl.Create)

		questionnaires := authed.Group("/questionnaires")
		questionnaires.GET("", questionnaireCtrl.ListMine)
		questionnaires.GET("/published", questionnaireCtrl.ListPublished)
		questionnaires.GET("/:id", questionnaireCtrl.Get)
		questionnaires.POST("", questionnaireCtrl.Create)
		questionnaires.PUT("/:id", questionnaireCtrl.Update)
		questionnaires.DELETE("/:id", questionnaireCtrl.Delete)
		questionnaires.PATCH("/:id/publish", questionnaireCtrl.TogglePublish)
		questionnaires.POST("/:id/fork", questionnaireCtrl.Fork)
		questionnaires.GET("/:id/pdf", questionnaireCtrl.ExportPDF)
		questionnaires.POST("/:id/questions", questionCtrl.Add)

		questions := authed.Group("/questions")
		questions.PUT("/:id", questionCtrl.Edit)
		questions.DELETE("/:id", questionCtrl.Remove)
		questions.POST("/:id/distribute", questionCtrl.Distribute)

		quiz := authed.Group("/quiz")
		quiz.GET("/submissions", quizCtrl.Submissions)
		quiz.GET("/:id", quizCtrl.Play)
		quiz.POST("/:id/score", quizCtrl.Score)

		prefs := authed.Group("/preferences")
		prefs.GET("", prefCtrl.Get)
		prefs.POST("/toggle-theme", prefCtrl.ToggleTheme)
		prefs.POST("/toggle-language", prefCtrl.ToggleLanguage)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizForge API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.UserPreference{},
		&model.Theme{},
		&model.Questionnaire{},
		&model.Question{},
		&model.Answer{},
		&model.QuizSubmission{},
		&model.QuizAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
