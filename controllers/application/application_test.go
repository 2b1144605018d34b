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

	applicationValidator "internhub/validators/application"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type applyFixture struct {
	app       *fiber.App
	withForm  models.Internship
	noForm    models.Internship
	candidate models.User
}

func setupApplyFixture(t *testing.T) *applyFixture {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	schema := datatypes.JSON([]byte(`{"fields":[{"name":"motivation","type":"text","required":true}]}`))
	withForm := models.Internship{Title: "With Form", IsPublished: true, FormSchema: schema}
	require.NoError(t, db.Create(&withForm).Error)

	noForm := models.Internship{Title: "No Form", IsPublished: true}
	require.NoError(t, db.Create(&noForm).Error)

	candidate := models.User{Name: "Candidate", Email: "candidate@example.com", Role: models.RoleIntern}
	require.NoError(t, db.Create(&candidate).Error)

	app := fiber.New()
	app.Post("/application/apply", middleware.JWTMiddleware, applicationValidator.Apply(), ApplyToInternship)

	return &applyFixture{app: app, withForm: withForm, noForm: noForm, candidate: candidate}
}

func (f *applyFixture) apply(t *testing.T, body interface{}) int {
	t.Helper()

	token, err := middleware.GenerateJWT(f.candidate.ID, f.candidate.Name, f.candidate.Role, f.candidate.Email)
	require.NoError(t, err)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/application/apply", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestApplyWithFormSchemaRequiresResponses(t *testing.T) {
	f := setupApplyFixture(t)

	code := f.apply(t, map[string]interface{}{"internship_id": f.withForm.ID})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code = f.apply(t, map[string]interface{}{"internship_id": f.withForm.ID, "responses": map[string]string{}})
	assert.Equal(t, fiber.StatusBadRequest, code)

	var count int64
	database.Database.Db.Model(&models.Application{}).Where("internship_id = ?", f.withForm.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestApplyWithFormSchemaAcceptsResponses(t *testing.T) {
	f := setupApplyFixture(t)

	code := f.apply(t, map[string]interface{}{
		"internship_id": f.withForm.ID,
		"responses":     map[string]string{"motivation": "I want to learn"},
	})
	assert.Equal(t, fiber.StatusCreated, code)

	var application models.Application
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND internship_id = ?", f.candidate.ID, f.withForm.ID).First(&application).Error)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.NotEmpty(t, application.TrackingCode)
}

func TestApplyWithoutFormSchemaAllowsEmptyResponses(t *testing.T) {
	f := setupApplyFixture(t)

	code := f.apply(t, map[string]interface{}{"internship_id": f.noForm.ID})
	assert.Equal(t, fiber.StatusCreated, code)
}
