package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/learning-platform/internal/ai"
	"github.com/yourusername/learning-platform/internal/config"
	"github.com/yourusername/learning-platform/internal/domain/entity"
	"github.com/yourusername/learning-platform/internal/handler"
	"github.com/yourusername/learning-platform/internal/middleware"
	"github.com/yourusername/learning-platform/internal/pdf"
	pgRepo "github.com/yourusername/learning-platform/internal/repository/postgres"
	redisRepo "github.com/yourusername/learning-platform/internal/repository/redis"
	"github.com/yourusername/learning-platform/internal/service"
	"github.com/yourusername/learning-platform/internal/storage"
	"github.com/yourusername/learning-platform/pkg/auth"
	"github.com/yourusername/learning-platform/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем файловое хранилище
	objectStorage, err := storage.NewMinioStorage(
		context.Background(),
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.PublicURL,
		cfg.Storage.UseSSL,
	)
	if err != nil {
		log.Printf("Failed to initialize object storage: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	groupRepo := pgRepo.NewGroupRepo(db)
	topicRepo := pgRepo.NewTopicRepo(db)
	testRepo := pgRepo.NewTestRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	responseRepo := pgRepo.NewResponseRepo(db)
	feedbackRepo := pgRepo.NewFeedbackRepo(db)
	assignmentRepo := pgRepo.NewAssignmentRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем клиент языковой модели
	aiClient := ai.NewOpenAIClient(
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.Model,
		cfg.OpenAI.APIKey,
		time.Duration(cfg.OpenAI.TimeoutSec)*time.Second,
	)

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, cacheRepo, jwtService)
	userService := service.NewUserService(userRepo, groupRepo)
	groupService := service.NewGroupService(groupRepo, userRepo)
	topicService := service.NewTopicService(topicRepo, cacheRepo, objectStorage, pdf.NewPopplerRenderer())
	feedbackService := service.NewFeedbackService(topicRepo, aiClient)
	scorer := service.NewScorer(questionRepo, responseRepo)
	testService := service.NewTestService(testRepo, topicRepo, questionRepo, responseRepo, feedbackRepo, cacheRepo, scorer, feedbackService)
	assignmentService := service.NewAssignmentService(assignmentRepo, topicRepo, groupRepo, objectStorage)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewGroupHandler(groupService)
	topicHandler := handler.NewTopicHandler(topicService)
	testHandler := handler.NewTestHandler(testService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, authService)

	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	teacherOrAdmin := authMiddleware.RequireRole(entity.RoleTeacher, entity.RoleSuperadmin)

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			authedAuth := authGroup.Group("/")
			authedAuth.Use(authMiddleware.RequireAuth())
			{
				authedAuth.POST("/logout", authHandler.Logout)
			}
		}

		// Пользователи
		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("", teacherOrAdmin, userHandler.ListUsers)

			userWithID := users.Group("/:id")
			userWithID.Use(middleware.ExtractUintParam("id", "userID"))
			{
				userWithID.PUT("/role", authMiddleware.RequireRole(entity.RoleSuperadmin), userHandler.ChangeRole)
				userWithID.PUT("/group", teacherOrAdmin, userHandler.AssignToGroup)
			}
		}

		// Группы
		groups := api.Group("/groups")
		groups.Use(authMiddleware.RequireAuth())
		{
			groups.GET("", groupHandler.GetGroups)
			groups.POST("", teacherOrAdmin, groupHandler.CreateGroup)

			groupWithID := groups.Group("/:id")
			groupWithID.Use(middleware.ExtractUintParam("id", "groupID"))
			{
				groupWithID.GET("/members", teacherOrAdmin, groupHandler.GetGroupMembers)
				groupWithID.GET("/assignments", assignmentHandler.GetIndependentByGroup)
			}
		}

		// Темы: просмотр каталога доступен без аутентификации
		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.GetTopics)
			topics.POST("", authMiddleware.RequireAuth(), teacherOrAdmin, topicHandler.CreateTopic)

			topicWithID := topics.Group("/:id")
			topicWithID.Use(middleware.ExtractUintParam("id", "topicID"))
			{
				topicWithID.GET("", topicHandler.GetTopic)
				topicWithID.GET("/tests", testHandler.GetTestsByTopic)
				topicWithID.GET("/assignments", authMiddleware.RequireAuth(), assignmentHandler.GetPracticalByTopic)

				adminTopics := topicWithID.Group("")
				adminTopics.Use(authMiddleware.RequireAuth(), teacherOrAdmin)
				{
					adminTopics.PUT("", topicHandler.UpdateTopic)
					adminTopics.DELETE("", topicHandler.DeleteTopic)
					adminTopics.POST("/items", topicHandler.AddItem)
					adminTopics.POST("/pdf", topicHandler.UploadPDF)
				}
			}
		}

		// Тесты: вопросы публичны (без правильных ответов), сдача требует входа
		tests := api.Group("/tests")
		{
			tests.POST("", authMiddleware.RequireAuth(), teacherOrAdmin, testHandler.CreateTest)

			testWithID := tests.Group("/:id")
			testWithID.Use(middleware.ExtractUintParam("id", "testID"))
			{
				testWithID.GET("/questions", testHandler.GetQuestions)
				testWithID.POST("/submit", authMiddleware.RequireAuth(), testHandler.SubmitTest)
				testWithID.GET("/feedback", authMiddleware.RequireAuth(), testHandler.GetMyFeedback)

				adminTests := testWithID.Group("")
				adminTests.Use(authMiddleware.RequireAuth(), teacherOrAdmin)
				{
					adminTests.POST("/questions", testHandler.CreateQuestion)
					adminTests.GET("/responses/export", testHandler.ExportTestResponses)
				}
			}
		}

		// Задания
		assignments := api.Group("/assignments")
		assignments.Use(authMiddleware.RequireAuth())
		{
			assignments.POST("/practical", teacherOrAdmin, assignmentHandler.CreatePractical)
			assignments.POST("/independent", teacherOrAdmin, assignmentHandler.CreateIndependent)

			assignmentWithID := assignments.Group("/:id")
			assignmentWithID.Use(middleware.ExtractUintParam("id", "assignmentID"))
			{
				assignmentWithID.POST("/submissions", assignmentHandler.SubmitWork)
				assignmentWithID.GET("/submissions", teacherOrAdmin, assignmentHandler.GetSubmissions)
			}
		}

		// Оценивание сданных работ
		submissions := api.Group("/submissions")
		submissions.Use(authMiddleware.RequireAuth(), teacherOrAdmin)
		{
			submissionWithID := submissions.Group("/:id")
			submissionWithID.Use(middleware.ExtractUintParam("id", "submissionID"))
			{
				submissionWithID.PUT("/grade", assignmentHandler.GradeSubmission)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
