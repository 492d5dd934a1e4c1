package cli

import (
	"log"

	"github.com/YSWikcramatantri/Official-Website/internal/config"
	"github.com/YSWikcramatantri/Official-Website/internal/database"
	"github.com/YSWikcramatantri/Official-Website/internal/handlers"
	"github.com/YSWikcramatantri/Official-Website/internal/middleware"
	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db); err != nil {
				return err
			}

			rdb, err := database.ConnectRedis(cfg)
			if err != nil {
				log.Printf("redis unavailable, admin sessions disabled: %v", err)
				rdb = nil
			}

			r, err := buildRouter(cfg, db, rdb)
			if err != nil {
				return err
			}

			log.Printf("server starting on :%s", cfg.ServerPort)
			return r.Run(":" + cfg.ServerPort)
		},
	}
}

func buildRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	codes := services.NewCodeGenerator()
	settingsService := services.NewSettingsService(db)
	registrationService := services.NewRegistrationService(db, settingsService, codes)
	quizService := services.NewQuizService(db, settingsService)
	adminService := services.NewAdminService(db)
	authService, err := services.NewAuthService(cfg.TokenSecret, cfg.AdminPassword, rdb, cfg.TokenTTL, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	quizHandler := handlers.NewQuizHandler(quizService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		api.GET("/settings", settingsHandler.GetSettings)
		api.POST("/participants", registrationHandler.RegisterSolo)
		api.POST("/schools/register", registrationHandler.RegisterSchool)
		api.POST("/participants/verify", quizHandler.Verify)
		api.GET("/questions", quizHandler.GetQuestions)
		api.POST("/quiz-submissions", quizHandler.Submit)

		api.POST("/admin/login", authHandler.Login)
		api.POST("/admin/logout", authHandler.Logout)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(authService))
		{
			admin.GET("/participants", adminHandler.ListParticipants)
			admin.PUT("/participants/:id", adminHandler.UpdateParticipant)
			admin.DELETE("/participants/:id", adminHandler.DeleteParticipant)

			admin.GET("/schools", adminHandler.ListSchools)
			admin.PUT("/schools/:id", adminHandler.UpdateSchool)
			admin.DELETE("/schools/:id", adminHandler.DeleteSchool)

			admin.GET("/questions", adminHandler.ListQuestions)
			admin.POST("/questions", adminHandler.CreateQuestion)
			admin.PUT("/questions/:id", adminHandler.UpdateQuestion)
			admin.DELETE("/questions/:id", adminHandler.DeleteQuestion)

			admin.GET("/quiz-submissions", adminHandler.ListSubmissions)
			admin.DELETE("/quiz-submissions/:id", adminHandler.DeleteSubmission)

			admin.GET("/settings", settingsHandler.GetSettings)
			admin.PUT("/settings", settingsHandler.UpdateSettings)
			admin.GET("/stats", adminHandler.GetStats)
		}
	}

	return r, nil
}
