package progressRoutes

import (
	controllers "internhub/controllers/progress"
	"internhub/middleware"
	"internhub/models"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the admin progress and dashboard routes
func SetupProgressRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
	)

	adminGroup.Get("/internship/:id/progress",
		internshipValidators.InternshipID(),
		controllers.AdminGetInternshipProgress)
	adminGroup.Get("/dashboard/stats", controllers.AdminDashboardStats)
}
