package submissionRoutes

import (
	controllers "internhub/controllers/submission"
	"internhub/middleware"
	"internhub/models"
	validators "internhub/validators/submission"

	"github.com/gofiber/fiber/v2"
)

// SetupSubmissionRoutes sets up intern submission and admin review routes
func SetupSubmissionRoutes(app *fiber.App) {
	userGroup := app.Group("/task")
	userGroup.Post("/:task_id/submit", middleware.JWTMiddleware, validators.Submit(), controllers.SubmitTask)

	app.Get("/submission/mine", middleware.JWTMiddleware, controllers.GetMySubmissions)

	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
	)
	adminGroup.Get("/submission/pending", controllers.AdminListPendingSubmissions)
	adminGroup.Post("/submission/:id/review", validators.Review(), controllers.AdminReviewSubmission)

	// Per-user deadline overrides
	adminGroup.Post("/deadline-adjustment", validators.Adjustment(), controllers.AdminUpsertAdjustment)
	adminGroup.Delete("/deadline-adjustment/:id", controllers.AdminRevokeAdjustment)
}
