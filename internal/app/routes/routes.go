package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mgdelacruz/regisys/internal/app/controllers"
	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/middleware"
)

// SetupRouter configures all application routes. Paths are the portal's
// existing contract, so there is no version prefix.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", healthController.Health)

	// --- Public auth routes ---
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)
	router.POST("/google-login", authController.GoogleLogin)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/me", authController.Me)

		students := authenticated.Group("/students")
		{
			// Reads are open to any authenticated role; a student sees the
			// directory, the registrar dashboard decides what to render.
			students.GET("", studentController.ListStudents)
			students.GET("/summary", studentController.GetSummary)
			students.GET("/:id", studentController.GetStudent)

			// Mutations are staff-only
			staffOnly := students.Group("")
			staffOnly.Use(authMiddleware.RoleRequired(
				string(models.RoleAdmin),
				string(models.RoleRegistrar),
			))
			{
				staffOnly.POST("", studentController.CreateStudent)
				staffOnly.PUT("/:id", studentController.UpdateStudent)
				staffOnly.DELETE("/:id", studentController.DeleteStudent)
			}
		}
	}
}
