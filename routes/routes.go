package routes

import (
	"log"
	"net/http"

	"learnhub/handlers"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type Handlers struct {
	Auth        *handlers.AuthHandler
	Course      *handlers.CourseHandler
	Enrollment  *handlers.EnrollmentHandler
	Quiz        *handlers.QuizHandler
	Assignment  *handlers.AssignmentHandler
	Message     *handlers.MessageHandler
	Forum       *handlers.ForumHandler
	Certificate *handlers.CertificateHandler
	Admin       *handlers.AdminHandler
}

func SetupRoutes(router *gin.Engine, h *Handlers, hub *services.Hub, jwtSecret string) {
	instructorOrAdmin := middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin)
	studentOnly := middleware.RequireRoles(models.RoleStudent)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Public certificate verification
		api.GET("/certificates/:serial", h.Certificate.Verify)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.Auth(jwtSecret))
		{
			protected.GET("/auth/profile", h.Auth.GetProfile)

			courses := protected.Group("/courses")
			{
				courses.GET("", h.Course.ListCourses)
				courses.GET("/:id", h.Course.GetCourse)
				courses.POST("", instructorOrAdmin, h.Course.CreateCourse)
				courses.PUT("/:id", instructorOrAdmin, h.Course.UpdateCourse)
				courses.DELETE("/:id", instructorOrAdmin, h.Course.DeleteCourse)

				courses.POST("/:id/modules", instructorOrAdmin, h.Course.CreateModule)

				courses.POST("/:id/enroll", studentOnly, h.Enrollment.Enroll)
				courses.DELETE("/:id/enroll", studentOnly, h.Enrollment.Drop)
				courses.POST("/:id/complete", studentOnly, h.Enrollment.Complete)
				courses.GET("/:id/students", instructorOrAdmin, h.Enrollment.ListStudents)

				courses.GET("/:id/quizzes", h.Quiz.ListQuizzes)
				courses.POST("/:id/quizzes", instructorOrAdmin, h.Quiz.CreateQuiz)

				courses.GET("/:id/assignments", h.Assignment.ListAssignments)
				courses.POST("/:id/assignments", instructorOrAdmin, h.Assignment.CreateAssignment)

				courses.GET("/:id/threads", h.Forum.ListThreads)
				courses.POST("/:id/threads", h.Forum.CreateThread)

				courses.POST("/:id/certificate", studentOnly, h.Certificate.Issue)
			}

			modules := protected.Group("/modules")
			{
				modules.DELETE("/:id", instructorOrAdmin, h.Course.DeleteModule)
				modules.POST("/:id/lessons", instructorOrAdmin, h.Course.CreateLesson)
			}

			protected.DELETE("/lessons/:id", instructorOrAdmin, h.Course.DeleteLesson)

			protected.GET("/enrollments", studentOnly, h.Enrollment.ListOwn)

			quizzes := protected.Group("/quizzes")
			{
				quizzes.GET("/:id", h.Quiz.GetQuiz)
				quizzes.PUT("/:id", instructorOrAdmin, h.Quiz.UpdateQuiz)
				quizzes.DELETE("/:id", instructorOrAdmin, h.Quiz.DeleteQuiz)
				quizzes.POST("/:id/submissions", studentOnly, h.Quiz.SubmitQuiz)
				quizzes.GET("/:id/submissions", h.Quiz.ListSubmissions)
			}

			assignments := protected.Group("/assignments")
			{
				assignments.DELETE("/:id", instructorOrAdmin, h.Assignment.DeleteAssignment)
				assignments.POST("/:id/submissions", studentOnly, h.Assignment.Submit)
				assignments.GET("/:id/submissions", instructorOrAdmin, h.Assignment.ListSubmissions)
			}

			protected.PUT("/assignment-submissions/:id/grade", instructorOrAdmin, h.Assignment.Grade)

			messages := protected.Group("/messages")
			{
				messages.POST("", h.Message.Send)
				messages.GET("/unread", h.Message.UnreadCount)
				messages.GET("/:userID", h.Message.Conversation)
				messages.PUT("/:userID/read", h.Message.MarkRead)
			}

			protected.POST("/threads/:id/posts", h.Forum.CreatePost)
			protected.GET("/threads/:id/posts", h.Forum.ListPosts)

			protected.GET("/certificates", studentOnly, h.Certificate.ListOwn)

			admin := protected.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.GET("/stats", h.Admin.Stats)
				admin.GET("/users", h.Admin.ListUsers)
				admin.PUT("/users/:id/role", h.Admin.UpdateRole)
			}
		}
	}

	// WebSocket endpoint for notification push. Browsers cannot set an
	// Authorization header on the upgrade request, so Auth also accepts
	// the token as a query parameter.
	router.GET("/ws", middleware.Auth(jwtSecret), func(c *gin.Context) {
		userID, exists := c.Get(middleware.ContextUserID)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for user %d: %v", userID, err)
			return
		}

		hub.RegisterClient(conn, userID.(uint))
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
