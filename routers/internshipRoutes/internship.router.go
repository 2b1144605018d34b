package internshipRoutes

import (
	controllers "internhub/controllers/internship"
	"internhub/middleware"
	"internhub/models"
	validators "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
)

// SetupInternshipRoutes sets up candidate-facing and admin internship routes
func SetupInternshipRoutes(app *fiber.App) {
	userGroup := app.Group("/internship")
	userGroup.Get("/list", middleware.JWTMiddleware, validators.ListQuery(), controllers.GetPublishedInternships)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.InternshipID(), controllers.GetInternshipDetails)

	adminGroup := app.Group("/admin/internship",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
	)
	adminGroup.Post("/create", validators.CreateInternship(), controllers.AdminCreateInternship)
	adminGroup.Get("/list", validators.ListQuery(), controllers.AdminListInternships)
	adminGroup.Get("/:id", validators.InternshipID(), controllers.AdminGetInternship)
	adminGroup.Put("/:id", validators.InternshipID(), validators.CreateInternship(), controllers.AdminUpdateInternship)
	adminGroup.Post("/:id/publish", validators.InternshipID(), controllers.AdminPublishInternship)
	adminGroup.Delete("/:id", validators.InternshipID(), controllers.AdminDeleteInternship)
}
