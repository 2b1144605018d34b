package middleware

import (
	"fmt"
	"internhub/config"
	"internhub/database"
	"internhub/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT signs a token the way the identity provider does. Used by the
// dev token script and by tests; production tokens come from the provider,
// which shares the HS256 secret.
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware validates the bearer token and provisions the local user row
// from the provider's claims on first sight.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing or invalid Authorization header",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid Authorization header format",
		})
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}

	// JWT numeric claims decode as float64
	rawUserID, ok := claims["userId"].(float64)
	if !ok || rawUserID < 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}
	userID := uint(rawUserID)

	user, err := provisionUser(userID, claims)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "User account unavailable",
		})
	}

	c.Locals("userId", user.ID)
	c.Locals("role", user.Role)

	return c.Next()
}

// provisionUser loads the local user row, creating it from token claims the
// first time the provider sends this user our way. The stored role wins over
// the claim afterwards so local role changes survive stale tokens.
func provisionUser(userID uint, claims jwt.MapClaims) (*models.User, error) {
	db := database.Database.Db

	var user models.User
	err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if err == nil {
		return &user, nil
	}

	claimStr := func(key string) string {
		if v, ok := claims[key].(string); ok {
			return v
		}
		return ""
	}

	user = models.User{
		Name:  claimStr("name"),
		Email: claimStr("email"),
		Role:  claimStr("role"),
	}
	user.ID = userID
	if user.Role == "" {
		user.Role = models.RoleIntern
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
