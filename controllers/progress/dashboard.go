package controllers

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns the headline counts for the admin dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalInternships, publishedInternships int64
	db.Model(&models.Internship{}).Where("is_deleted = ?", false).Count(&totalInternships)
	db.Model(&models.Internship{}).Where("is_published = ? AND is_deleted = ?", true, false).Count(&publishedInternships)

	var pendingApplications, activeInterns int64
	db.Model(&models.Application{}).Where("status = ? AND is_deleted = ?", models.ApplicationPending, false).Count(&pendingApplications)
	db.Model(&models.Application{}).Where("status = ? AND is_deleted = ?", models.ApplicationAccepted, false).Count(&activeInterns)

	var pendingSubmissions int64
	db.Model(&models.Submission{}).Where("status = ? AND is_deleted = ?", models.SubmissionPending, false).Count(&pendingSubmissions)

	var learningPaths int64
	db.Model(&models.LearningPath{}).Where("is_deleted = ?", false).Count(&learningPaths)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_internships":     totalInternships,
		"published_internships": publishedInternships,
		"pending_applications":  pendingApplications,
		"active_interns":        activeInterns,
		"pending_submissions":   pendingSubmissions,
		"learning_paths":        learningPaths,
	})
}
