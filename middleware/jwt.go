package middleware

import (
	"fmt"
	"strings"
	"time"

	"rauha/config"
	"rauha/database"
	"rauha/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a signed token carrying the user id as subject
func GenerateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Duration(config.AppConfig.JWTExpiry) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// Protected verifies the bearer token and resolves it to a user record.
// The resolved user is stored in the request context for handlers.
func Protected(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	// Accept both "Bearer <token>" and a raw token
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	// A token whose subject no longer exists is treated as invalid
	var user models.User
	if err := database.Database.Db.First(&user, uint(userID)).Error; err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	c.Locals("user", user)

	return c.Next()
}

// CurrentUser returns the user resolved by the Protected middleware
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}
