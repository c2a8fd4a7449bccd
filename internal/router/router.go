package router

import (
	"net/http"
	"time"

	"github.com/beaconhq/beacon-backend/internal/config"
	"github.com/beaconhq/beacon-backend/internal/handler"
	"github.com/beaconhq/beacon-backend/internal/middleware"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Course   *handler.CourseHandler
	Module   *handler.ModuleHandler
	Lesson   *handler.LessonHandler
	Quiz     *handler.QuizHandler
	Exam     *handler.ExamHandler
	Question *handler.QuestionHandler
	Media    *handler.MediaHandler
	Event    *handler.EventHandler
	Sermon   *handler.SermonHandler
	User     *handler.UserHandler
	Role     *handler.RoleHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireJWT(authService))
	{
		// Media upload and presigned URLs
		adminAPI.POST("/media/:kind/:owner_id",
			middleware.RequirePermission(string(model.PermissionMediaUpload)),
			handlers.Media.Upload,
		)
		adminAPI.GET("/media/url",
			middleware.RequirePermission(string(model.PermissionMediaUpload)),
			handlers.Media.URL,
		)

		// Course management
		adminAPI.GET("/courses",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Course.List,
		)
		adminAPI.GET("/courses/search",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Course.Search,
		)
		adminAPI.GET("/courses/:id",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Course.Get,
		)
		adminAPI.GET("/courses/:id/tree",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Course.Tree,
		)
		adminAPI.POST("/courses",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Course.Create,
		)
		adminAPI.PUT("/courses/:id",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Course.Update,
		)
		adminAPI.PATCH("/courses/:id/published",
			middleware.RequirePermission(string(model.PermissionCoursesPublish)),
			handlers.Course.SetPublished,
		)
		adminAPI.DELETE("/courses/:id",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Course.Delete,
		)

		// Module management
		adminAPI.GET("/courses/:id/modules",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Module.List,
		)
		adminAPI.POST("/courses/:id/modules",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Module.Create,
		)
		adminAPI.PUT("/modules/:id",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Module.Update,
		)
		adminAPI.POST("/modules/:id/reorder",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Module.Reorder,
		)
		adminAPI.DELETE("/modules/:id",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Module.Delete,
		)

		// Lesson management (nested under modules, plus legacy
		// course-level lessons with no module)
		adminAPI.GET("/modules/:id/lessons",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Lesson.List,
		)
		adminAPI.POST("/modules/:id/lessons",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Lesson.CreateUnderModule,
		)
		adminAPI.POST("/courses/:id/lessons",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Lesson.CreateFlat,
		)
		adminAPI.GET("/lessons/:id",
			middleware.RequirePermission(string(model.PermissionCoursesRead)),
			handlers.Lesson.Get,
		)
		adminAPI.PUT("/lessons/:id",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Lesson.Update,
		)
		adminAPI.POST("/lessons/:id/reorder",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Lesson.Reorder,
		)
		adminAPI.DELETE("/lessons/:id",
			middleware.RequirePermission(string(model.PermissionCoursesWrite)),
			handlers.Lesson.Delete,
		)

		// Quiz management (one quiz per module)
		adminAPI.POST("/modules/:id/quiz",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Quiz.Create,
		)
		adminAPI.GET("/quizzes/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsRead)),
			handlers.Quiz.Get,
		)
		adminAPI.PUT("/quizzes/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Quiz.Update,
		)
		adminAPI.DELETE("/quizzes/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Quiz.Delete,
		)

		// Exam management
		adminAPI.GET("/courses/:id/exams",
			middleware.RequirePermission(string(model.PermissionAssessmentsRead)),
			handlers.Exam.List,
		)
		adminAPI.POST("/courses/:id/exams",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Exam.Create,
		)
		adminAPI.GET("/exams/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsRead)),
			handlers.Exam.Get,
		)
		adminAPI.PUT("/exams/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Exam.Update,
		)
		adminAPI.DELETE("/exams/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Exam.Delete,
		)

		// Question management
		adminAPI.POST("/quizzes/:id/questions",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Question.AddToQuiz,
		)
		adminAPI.POST("/exams/:id/questions",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Question.AddToExam,
		)
		adminAPI.PUT("/questions/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Question.Update,
		)
		adminAPI.DELETE("/questions/:id/options/:index",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Question.RemoveOption,
		)
		adminAPI.POST("/questions/:id/reorder",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Question.Reorder,
		)
		adminAPI.DELETE("/questions/:id",
			middleware.RequirePermission(string(model.PermissionAssessmentsWrite)),
			handlers.Question.Delete,
		)

		// Events Routes
		eventsGroup := adminAPI.Group("/events")
		{
			eventsGroup.GET("", middleware.RequirePermission(string(model.PermissionEventsRead)), handlers.Event.List)
			eventsGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionEventsRead)), handlers.Event.Get)
			eventsGroup.POST("", middleware.RequirePermission(string(model.PermissionEventsWrite)), handlers.Event.Create)
			eventsGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionEventsWrite)), handlers.Event.Update)
			eventsGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionEventsWrite)), handlers.Event.Delete)
		}

		// Sermons Routes
		sermonsGroup := adminAPI.Group("/sermons")
		{
			sermonsGroup.GET("", middleware.RequirePermission(string(model.PermissionSermonsRead)), handlers.Sermon.List)
			sermonsGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionSermonsRead)), handlers.Sermon.Get)
			sermonsGroup.POST("", middleware.RequirePermission(string(model.PermissionSermonsWrite)), handlers.Sermon.Create)
			sermonsGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionSermonsWrite)), handlers.Sermon.Update)
			sermonsGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionSermonsWrite)), handlers.Sermon.Delete)
		}

		// Admin Account Management
		adminAPI.GET("/users",
			middleware.RequirePermission(string(model.PermissionUsersRead)),
			handlers.User.List,
		)
		adminAPI.GET("/users/:id",
			middleware.RequirePermission(string(model.PermissionUsersRead)),
			handlers.User.Get,
		)
		adminAPI.POST("/users",
			middleware.RequirePermission(string(model.PermissionUsersWrite)),
			handlers.User.Create,
		)
		adminAPI.PUT("/users/:id",
			middleware.RequirePermission(string(model.PermissionUsersWrite)),
			handlers.User.Update,
		)
		adminAPI.DELETE("/users/:id",
			middleware.RequirePermission(string(model.PermissionUsersWrite)),
			handlers.User.Delete,
		)

		// Role Management
		adminAPI.GET("/roles",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.Role.List,
		)
		adminAPI.GET("/roles/permissions",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.Role.Permissions,
		)
		adminAPI.GET("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.Role.Get,
		)
		adminAPI.POST("/roles",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.Role.Create,
		)
		adminAPI.PUT("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.Role.Update,
		)
		adminAPI.DELETE("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.Role.Delete,
		)
	}

	return router
}
