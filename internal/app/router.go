package app

import (
	"nura_backend/docs"
	"nura_backend/internal/config"
	"nura_backend/internal/middleware"
	"nura_backend/internal/model"
	"nura_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))

	a.registerProfileRoutes(authGroup, c)
	a.registerCourseRoutes(authGroup, c)
	a.registerQuizRoutes(authGroup, c)
	a.registerAssignmentRoutes(authGroup, c)
	a.registerInsightRoutes(authGroup, c)
	a.registerNotificationRoutes(authGroup, c)
	a.registerAdminRoutes(authGroup, c)
}

// Catalog browsing and certificate verification work without a session.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)
		public.GET("/courses/:id/tags", c.tag.ListCourseTags)
		public.GET("/tags", c.tag.List)
		public.GET("/certificates/:code/verify", c.enrollment.VerifyCertificate)
	}
}

func (a *App) registerProfileRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.GetProfile)
	group.PUT("/profile", c.user.UpdateProfile)
	group.PUT("/profile/password", c.user.ChangePassword)
	group.POST("/profile/avatar", c.user.UploadAvatar)
}

func (a *App) registerCourseRoutes(group *gin.RouterGroup, c *controllers) {
	mentor := middleware.RoleMiddleware(model.Mentor)

	group.GET("/courses/mine", mentor, c.course.ListMine)
	group.POST("/courses", mentor, c.course.Create)
	group.PUT("/courses/:id", mentor, c.course.Update)
	group.DELETE("/courses/:id", mentor, c.course.Delete)
	group.POST("/courses/:id/video", mentor, c.course.UploadVideo)
	group.GET("/courses/:id/enrollments", mentor, c.enrollment.ListByCourse)

	group.POST("/courses/:id/enroll", c.enrollment.Enroll)
	group.DELETE("/courses/:id/enroll", c.enrollment.Drop)
	group.PUT("/courses/:id/progress", c.enrollment.UpdateProgress)
	group.GET("/enrollments/mine", c.enrollment.ListMine)
	group.GET("/certificates/mine", c.enrollment.Certificates)
}

func (a *App) registerQuizRoutes(group *gin.RouterGroup, c *controllers) {
	mentor := middleware.RoleMiddleware(model.Mentor)

	group.GET("/courses/:id/quizzes", c.quiz.ListByCourse)
	group.GET("/quizzes/:id", c.quiz.Get)
	group.POST("/quizzes", mentor, c.quiz.Create)
	group.PUT("/quizzes/:id", mentor, c.quiz.Update)
	group.DELETE("/quizzes/:id", mentor, c.quiz.Delete)
	group.POST("/quizzes/:id/questions", mentor, c.quiz.AddQuestion)
	group.PUT("/questions/:id", mentor, c.quiz.UpdateQuestion)
	group.DELETE("/questions/:id", mentor, c.quiz.DeleteQuestion)

	group.POST("/quizzes/:id/submit", c.quiz.Submit)
	group.GET("/quizzes/:id/submissions", mentor, c.quiz.ListSubmissions)
	group.GET("/submissions/mine", c.quiz.MySubmissions)
	group.GET("/submissions/:id", c.quiz.GetSubmission)
}

func (a *App) registerAssignmentRoutes(group *gin.RouterGroup, c *controllers) {
	mentor := middleware.RoleMiddleware(model.Mentor)

	group.GET("/courses/:id/assignments", c.assignment.ListByCourse)
	group.POST("/assignments", mentor, c.assignment.Create)
	group.DELETE("/assignments/:id", mentor, c.assignment.Delete)
	group.POST("/assignments/:id/submit", c.assignment.Submit)
	group.GET("/assignments/:id/submissions", mentor, c.assignment.ListSubmissions)
	group.PUT("/assignment-submissions/:id/grade", mentor, c.assignment.Grade)
}

func (a *App) registerInsightRoutes(group *gin.RouterGroup, c *controllers) {
	mentor := middleware.RoleMiddleware(model.Mentor)
	admin := middleware.RoleMiddleware(model.Admin)

	group.GET("/dashboard/learner", c.dashboard.Learner)
	group.GET("/dashboard/mentor", mentor, c.dashboard.Mentor)
	group.GET("/dashboard/admin", admin, c.dashboard.Admin)

	analytics := group.Group("/analytics", mentor)
	{
		analytics.GET("/enrollments", c.analytics.EnrollmentStats)
		analytics.GET("/quizzes", c.analytics.QuizStats)
		analytics.GET("/trend", c.analytics.Trend)
		analytics.GET("/overview", c.analytics.Overview)
	}

	reports := group.Group("/reports", mentor)
	{
		reports.POST("", c.report.Generate)
		reports.GET("", c.report.List)
		reports.GET("/:id", c.report.Get)
	}

	group.POST("/tags/suggest", mentor, c.tag.Suggest)
}

func (a *App) registerNotificationRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/notifications", c.notification.List)
	group.PUT("/notifications/:id/read", c.notification.MarkRead)
	group.POST("/messages", c.notification.SendMessage)
	group.GET("/messages/:id", c.notification.Conversation)
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("/admin", middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id/role", c.user.SetRole)
		admin.DELETE("/users/:id", c.user.Delete)
		admin.DELETE("/tags/:id", c.tag.Delete)
		admin.POST("/tags/backfill", c.tag.Backfill)
	}
}
