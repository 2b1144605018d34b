package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"internhub/config"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	submissionValidator "internhub/validators/submission"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testFixture struct {
	app      *fiber.App
	task     models.Task
	intern   models.User
	outsider models.User
	admin    models.User
}

func setupFixture(t *testing.T) *testFixture {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	path := models.LearningPath{Title: "Track", Description: "desc"}
	require.NoError(t, db.Create(&path).Error)

	task := models.Task{LearningPathID: path.ID, Title: "Task 1", OrderIndex: 0, DeadlineOffset: 7}
	require.NoError(t, db.Create(&task).Error)

	start := time.Now().AddDate(0, 0, -3)
	end := start.AddDate(0, 2, 0)
	internship := models.Internship{
		Title: "Internship", Capacity: 5,
		StartDate: &start, EndDate: &end,
		LearningPathID: &path.ID, IsPublished: true,
	}
	require.NoError(t, db.Create(&internship).Error)

	intern := models.User{Name: "Intern", Email: "intern@example.com", Role: models.RoleIntern}
	outsider := models.User{Name: "Outsider", Email: "outsider@example.com", Role: models.RoleIntern}
	admin := models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&intern).Error)
	require.NoError(t, db.Create(&outsider).Error)
	require.NoError(t, db.Create(&admin).Error)

	application := models.Application{
		UserID: intern.ID, InternshipID: internship.ID,
		Status: models.ApplicationAccepted, TrackingCode: "test-code",
	}
	require.NoError(t, db.Create(&application).Error)

	app := fiber.New()
	app.Post("/task/:task_id/submit", middleware.JWTMiddleware, submissionValidator.Submit(), SubmitTask)
	app.Post("/admin/submission/:id/review",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
		submissionValidator.Review(),
		AdminReviewSubmission)

	return &testFixture{app: app, task: task, intern: intern, outsider: outsider, admin: admin}
}

func doJSON(t *testing.T, app *fiber.App, user models.User, method, url string, body interface{}) int {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func submitBody() map[string]string {
	return map[string]string{
		"file_url": "https://storage.example.com/work.zip",
		"comment":  "done",
	}
}

func TestSubmitRequiresAcceptedApplication(t *testing.T) {
	f := setupFixture(t)

	code := doJSON(t, f.app, f.outsider, "POST", fmt.Sprintf("/task/%d/submit", f.task.ID), submitBody())
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestSubmitCreatesPendingSubmission(t *testing.T) {
	f := setupFixture(t)

	code := doJSON(t, f.app, f.intern, "POST", fmt.Sprintf("/task/%d/submit", f.task.ID), submitBody())
	assert.Equal(t, fiber.StatusCreated, code)

	var sub models.Submission
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND task_id = ?", f.intern.ID, f.task.ID).First(&sub).Error)
	assert.Equal(t, models.SubmissionPending, sub.Status)
	assert.Equal(t, "https://storage.example.com/work.zip", sub.FileURL)
	assert.False(t, sub.SubmittedAt.IsZero())
}

func TestSubmitUnknownTaskNotFound(t *testing.T) {
	f := setupFixture(t)

	code := doJSON(t, f.app, f.intern, "POST", "/task/9999/submit", submitBody())
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestDuplicateSubmitConflicts(t *testing.T) {
	f := setupFixture(t)

	url := fmt.Sprintf("/task/%d/submit", f.task.ID)
	require.Equal(t, fiber.StatusCreated, doJSON(t, f.app, f.intern, "POST", url, submitBody()))
	assert.Equal(t, fiber.StatusConflict, doJSON(t, f.app, f.intern, "POST", url, submitBody()))
}

func TestResubmitAfterRequiresChangesRewritesInPlace(t *testing.T) {
	f := setupFixture(t)
	db := database.Database.Db

	reviewedAt := time.Now().Add(-time.Hour)
	sub := models.Submission{
		UserID: f.intern.ID, TaskID: f.task.ID,
		FileURL: "https://storage.example.com/v1.zip",
		Status:  models.SubmissionRequiresChanges,
		Feedback: "please fix the tests", AdminComment: "see notes",
		SubmittedAt: time.Now().Add(-2 * time.Hour), ReviewedAt: &reviewedAt,
	}
	require.NoError(t, db.Create(&sub).Error)

	code := doJSON(t, f.app, f.intern, "POST", fmt.Sprintf("/task/%d/submit", f.task.ID), map[string]string{
		"file_url": "https://storage.example.com/v2.zip",
		"comment":  "fixed",
	})
	assert.Equal(t, fiber.StatusOK, code)

	var updated models.Submission
	require.NoError(t, db.Where("user_id = ? AND task_id = ?", f.intern.ID, f.task.ID).First(&updated).Error)
	assert.Equal(t, sub.ID, updated.ID) // same row, rewritten in place
	assert.Equal(t, models.SubmissionPending, updated.Status)
	assert.Equal(t, "https://storage.example.com/v2.zip", updated.FileURL)
	assert.Empty(t, updated.Feedback)
	assert.Empty(t, updated.AdminComment)
	assert.Nil(t, updated.ReviewedAt)
	assert.True(t, updated.SubmittedAt.After(sub.SubmittedAt))

	var count int64
	db.Model(&models.Submission{}).Where("user_id = ? AND task_id = ?", f.intern.ID, f.task.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestResubmitBlockedForOtherStatuses(t *testing.T) {
	for _, status := range []string{models.SubmissionPending, models.SubmissionApproved, models.SubmissionRejected} {
		t.Run(status, func(t *testing.T) {
			f := setupFixture(t)
			db := database.Database.Db

			sub := models.Submission{
				UserID: f.intern.ID, TaskID: f.task.ID,
				FileURL: "https://storage.example.com/v1.zip",
				Status:  status, SubmittedAt: time.Now(),
			}
			require.NoError(t, db.Create(&sub).Error)

			code := doJSON(t, f.app, f.intern, "POST", fmt.Sprintf("/task/%d/submit", f.task.ID), submitBody())
			assert.Equal(t, fiber.StatusConflict, code)
		})
	}
}

func TestAdminReviewSetsStatusAndFeedback(t *testing.T) {
	f := setupFixture(t)
	db := database.Database.Db

	sub := models.Submission{
		UserID: f.intern.ID, TaskID: f.task.ID,
		FileURL: "https://storage.example.com/v1.zip",
		Status:  models.SubmissionPending, SubmittedAt: time.Now(),
	}
	require.NoError(t, db.Create(&sub).Error)

	code := doJSON(t, f.app, f.admin, "POST", fmt.Sprintf("/admin/submission/%d/review", sub.ID), map[string]string{
		"status":   models.SubmissionRequiresChanges,
		"feedback": "add error handling",
	})
	assert.Equal(t, fiber.StatusOK, code)

	var reviewed models.Submission
	require.NoError(t, db.First(&reviewed, sub.ID).Error)
	assert.Equal(t, models.SubmissionRequiresChanges, reviewed.Status)
	assert.Equal(t, "add error handling", reviewed.Feedback)
	assert.NotNil(t, reviewed.ReviewedAt)
}

func TestReviewRequiresAdminRole(t *testing.T) {
	f := setupFixture(t)
	db := database.Database.Db

	sub := models.Submission{
		UserID: f.intern.ID, TaskID: f.task.ID,
		FileURL: "https://storage.example.com/v1.zip",
		Status:  models.SubmissionPending, SubmittedAt: time.Now(),
	}
	require.NoError(t, db.Create(&sub).Error)

	code := doJSON(t, f.app, f.intern, "POST", fmt.Sprintf("/admin/submission/%d/review", sub.ID), map[string]string{
		"status": models.SubmissionApproved,
	})
	assert.Equal(t, fiber.StatusForbidden, code)
}
