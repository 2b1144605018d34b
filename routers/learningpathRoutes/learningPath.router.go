package learningpathRoutes

import (
	controllers "internhub/controllers/learningpath"
	"internhub/middleware"
	"internhub/models"
	validators "internhub/validators/learningpath"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningPathRoutes sets up admin learning path and task routes
func SetupLearningPathRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/learning-path",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
	)

	adminGroup.Post("/create", validators.CreatePath(), controllers.AdminCreatePath)
	adminGroup.Get("/list", controllers.AdminListPaths)
	adminGroup.Get("/:id", validators.PathID(), controllers.AdminGetPath)
	adminGroup.Put("/:id", validators.PathID(), validators.CreatePath(), controllers.AdminUpdatePath)
	adminGroup.Delete("/:id", validators.PathID(), controllers.AdminDeletePath)

	// Task management within a path
	adminGroup.Post("/:id/task", validators.CreateTask(), controllers.AdminCreateTask)
	adminGroup.Put("/:id/reorder", validators.ReorderTasks(), controllers.AdminReorderTasks)

	taskGroup := app.Group("/admin/task",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
	)
	taskGroup.Put("/:task_id", validators.UpdateTask(), controllers.AdminUpdateTask)
	taskGroup.Delete("/:task_id", validators.TaskID(), controllers.AdminDeleteTask)
}
