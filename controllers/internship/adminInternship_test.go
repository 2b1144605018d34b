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

	internshipValidator "internhub/validators/internship"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type internshipFixture struct {
	app        *fiber.App
	internship models.Internship
	path       models.LearningPath
	admin      models.User
}

func setupInternshipFixture(t *testing.T) *internshipFixture {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	path := models.LearningPath{Title: "Track", Description: "desc"}
	require.NoError(t, db.Create(&path).Error)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 2, 0)
	internship := models.Internship{
		Title: "Internship", Description: "summer batch", Capacity: 5,
		StartDate: &start, EndDate: &end, LearningPathID: &path.ID,
	}
	require.NoError(t, db.Create(&internship).Error)

	admin := models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	app := fiber.New()
	app.Put("/admin/internship/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
		internshipValidator.InternshipID(),
		internshipValidator.CreateInternship(),
		AdminUpdateInternship)

	return &internshipFixture{app: app, internship: internship, path: path, admin: admin}
}

func (f *internshipFixture) update(t *testing.T, body map[string]interface{}) int {
	t.Helper()

	// required fields ride along on every update
	if _, ok := body["title"]; !ok {
		body["title"] = f.internship.Title
	}
	if _, ok := body["description"]; !ok {
		body["description"] = f.internship.Description
	}

	token, err := middleware.GenerateJWT(f.admin.ID, f.admin.Name, f.admin.Role, f.admin.Email)
	require.NoError(t, err)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/admin/internship/%d", f.internship.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func (f *internshipFixture) reload(t *testing.T) models.Internship {
	t.Helper()
	var internship models.Internship
	require.NoError(t, database.Database.Db.First(&internship, f.internship.ID).Error)
	return internship
}

func TestUpdateInternshipKeepsOmittedFields(t *testing.T) {
	f := setupInternshipFixture(t)

	code := f.update(t, map[string]interface{}{"title": "Renamed", "capacity": 10})
	assert.Equal(t, fiber.StatusOK, code)

	updated := f.reload(t)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 10, updated.Capacity)
	assert.NotNil(t, updated.StartDate)
	assert.NotNil(t, updated.EndDate)
	require.NotNil(t, updated.LearningPathID)
	assert.Equal(t, f.path.ID, *updated.LearningPathID)
}

func TestUpdateInternshipDetachesLearningPath(t *testing.T) {
	f := setupInternshipFixture(t)

	code := f.update(t, map[string]interface{}{"learning_path_id": 0})
	assert.Equal(t, fiber.StatusOK, code)

	assert.Nil(t, f.reload(t).LearningPathID)
}

func TestUpdateInternshipClearsDates(t *testing.T) {
	f := setupInternshipFixture(t)

	code := f.update(t, map[string]interface{}{"start_date": "", "end_date": ""})
	assert.Equal(t, fiber.StatusOK, code)

	updated := f.reload(t)
	assert.Nil(t, updated.StartDate)
	assert.Nil(t, updated.EndDate)
}

func TestUpdateInternshipRejectsEndBeforeStoredStart(t *testing.T) {
	f := setupInternshipFixture(t)

	// stored start is 2026-06-01; moving only the end before it must fail
	code := f.update(t, map[string]interface{}{"end_date": "2026-05-01"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	updated := f.reload(t)
	require.NotNil(t, updated.EndDate)
	assert.True(t, updated.EndDate.After(*updated.StartDate))
}
