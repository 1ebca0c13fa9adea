package app

import (
	"edubridge_backend/docs"
	"edubridge_backend/internal/config"
	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/model"
	"edubridge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/practice/languages", c.execute.Languages)
	}

	// Feed is readable by anyone; interactions below require a login.
	community := router.Group("/api/community")
	community.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		community.GET("/posts", c.community.Feed)
		community.GET("/posts/:id", c.community.GetPost)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)

		authGroup.GET("/skills", c.user.ListSkills)
		authGroup.POST("/skills", c.user.AddSkill)
		authGroup.DELETE("/skills/:id", c.user.RemoveSkill)

		authGroup.POST("/roadmap/generate", c.roadmap.Generate)
		authGroup.POST("/roadmap/visual", c.roadmap.GenerateVisual)
		authGroup.GET("/roadmap/latest", c.roadmap.Latest)

		authGroup.GET("/interview/questions", c.interview.ListQuestions)
		authGroup.POST("/interview/answers", c.interview.SubmitAnswer)
		authGroup.GET("/interview/progress", c.interview.Progress)
		authGroup.DELETE("/interview/progress", c.interview.Reset)

		authGroup.GET("/career/profile", c.career.Profile)
		authGroup.GET("/career/applications", c.career.Applications)
		authGroup.POST("/career/applications", c.career.Apply)

		authGroup.POST("/chat/cofounder", c.chat.Cofounder)
		authGroup.POST("/chat/mentor", c.chat.Mentor)
		authGroup.POST("/chat/support", c.chat.Support)
		authGroup.GET("/chat/:agent/history", c.chat.History)
		authGroup.DELETE("/chat/:agent/history", c.chat.Clear)

		authGroup.GET("/lectures", c.lecture.List)
		authGroup.GET("/lectures/:id", c.lecture.Get)

		authGroup.GET("/assignments", c.assignment.List)
		authGroup.POST("/assignments/:id/submit", c.assignment.Submit)

		authGroup.POST("/community/posts", c.community.CreatePost)
		authGroup.POST("/community/posts/:id/comments", c.community.AddComment)
		authGroup.POST("/community/content/:id/upvote", c.community.Upvote)

		authGroup.POST("/practice/execute", c.execute.Run)

		authGroup.POST("/portfolio/analyze", c.portfolio.Analyze)
		authGroup.GET("/portfolio", c.portfolio.Get)
		authGroup.PUT("/portfolio/theme", c.portfolio.SetTheme)

		authGroup.POST("/simulation/run", c.simulation.Simulate)
	}

	// Employer surface.
	employerGroup := router.Group("/api")
	employerGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Employer))
	{
		employerGroup.GET("/candidates", c.candidate.List)
		employerGroup.POST("/candidates/:id/analyze", c.candidate.Analyze)
	}

	// Admin-only grading.
	adminGroup := router.Group("/api")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/assignments/:id/grade", c.assignment.Grade)
	}
}
