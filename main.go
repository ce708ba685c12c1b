package main

import (
	"log"

	"learnhub/config"
	"learnhub/handlers"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/routes"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizSubmission{},
		&models.Assignment{},
		&models.AssignmentSubmission{},
		&models.Message{},
		&models.ForumThread{},
		&models.ForumPost{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize notification hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTLHours)
	userService := services.NewUserService(db)
	courseService := services.NewCourseService(db)
	enrollmentService := services.NewEnrollmentService(db)
	quizService := services.NewQuizService(db, redisClient)
	quizStore := services.NewQuizStore(db, redisClient)
	submissionService := services.NewSubmissionService(quizStore, cfg.QuizAttemptPolicy)
	assignmentService := services.NewAssignmentService(db)
	messageService := services.NewMessageService(db, hub)
	forumService := services.NewForumService(db, hub)
	certificateService := services.NewCertificateService(db)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Course:      handlers.NewCourseHandler(courseService),
		Enrollment:  handlers.NewEnrollmentHandler(enrollmentService),
		Quiz:        handlers.NewQuizHandler(quizService, submissionService),
		Assignment:  handlers.NewAssignmentHandler(assignmentService),
		Message:     handlers.NewMessageHandler(messageService),
		Forum:       handlers.NewForumHandler(forumService),
		Certificate: handlers.NewCertificateHandler(certificateService),
		Admin:       handlers.NewAdminHandler(userService),
	}

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, h, hub, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
