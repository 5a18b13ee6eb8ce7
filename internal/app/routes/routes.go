package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/controllers"
	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/middleware"
	"github.com/dpetrov/campusreg/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	tokenController *controllers.TokenController,
	userController *controllers.UserController,
	optionsController *controllers.OptionsController,
	termController *controllers.TermController,
	courseController *controllers.CourseController,
	sectionController *controllers.SectionController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	anyRole := authMiddleware.RequireRoles(models.RoleStudent, models.RoleProfessor, models.RoleAdministrator)
	adminOnly := authMiddleware.RequireRoles(models.RoleAdministrator)
	staffOnly := authMiddleware.RequireRoles(models.RoleProfessor, models.RoleAdministrator)

	// --- Public routes ---
	router.POST("/tokens", tokenController.CreateToken)
	router.GET("/options", optionsController.GetOptions)

	users := router.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.FindUsers)
	}

	router.GET("/account", anyRole, userController.GetAccount)

	// --- Terms ---
	terms := router.Group("/terms")
	{
		terms.GET("", anyRole, termController.GetAllTerms)
		terms.GET("/current", anyRole, termController.GetCurrentTerm)
		terms.GET("/:termId", anyRole, termController.GetTermByID)
		terms.POST("", adminOnly, termController.CreateTerm)
		terms.PUT("/:termId", adminOnly, termController.UpdateTerm)
		terms.DELETE("/:termId", adminOnly, termController.DeleteTerm)
	}

	// --- Courses and nested sections ---
	courses := router.Group("/courses")
	{
		courses.GET("", anyRole, courseController.SearchCourses)
		courses.GET("/:courseId", anyRole, courseController.GetCourse)
		courses.POST("", adminOnly, courseController.CreateCourse)
		courses.PUT("/:courseId", adminOnly, courseController.UpdateCourse)
		courses.DELETE("/:courseId", adminOnly, courseController.DeleteCourse)

		sections := courses.Group("/:courseId/sections")
		{
			sections.POST("", adminOnly, sectionController.CreateSection)
			sections.GET("/:sectionId", adminOnly, sectionController.GetSection)
			sections.PUT("/:sectionId", adminOnly, sectionController.UpdateSection)
			sections.DELETE("/:sectionId", adminOnly, sectionController.DeleteSection)

			sections.GET("/:sectionId/roster", anyRole, registrationController.GetRoster)

			registrations := sections.Group("/:sectionId/registrations")
			{
				registrations.POST("", anyRole, registrationController.Register)
				registrations.DELETE("", anyRole, registrationController.Deregister)
				registrations.PUT("/:registrationId", staffOnly, registrationController.UpdateRegistration)
			}
		}
	}

	// --- Operational endpoints ---
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
