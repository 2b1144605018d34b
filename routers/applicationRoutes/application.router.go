package applicationRoutes

import (
	controllers "internhub/controllers/application"
	"internhub/middleware"
	"internhub/models"
	applicationValidators "internhub/validators/application"
	internshipValidators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupApplicationRoutes sets up candidate and admin application routes
func SetupApplicationRoutes(app *fiber.App) {
	userGroup := app.Group("/application")
	userGroup.Post("/apply", middleware.JWTMiddleware, applicationValidators.Apply(), controllers.ApplyToInternship)
	userGroup.Get("/mine", middleware.JWTMiddleware, controllers.GetMyApplications)

	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
	)
	adminGroup.Get("/internship/:id/applications",
		internshipValidators.InternshipID(),
		applicationValidators.StatusFilter(),
		controllers.AdminListApplications)
	adminGroup.Post("/application/:id/review",
		applicationValidators.Review(),
		controllers.AdminReviewApplication)
}
