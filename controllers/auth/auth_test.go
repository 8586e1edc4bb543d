package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rauha/config"
	"rauha/database"
	"rauha/middleware"
	"rauha/models"
	authRoutes "rauha/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "5000",
		JWTKey:    "test-secret",
		JWTExpiry: 168,
		SaltRound: bcrypt.MinCost,
	}
	database.ConnectTestDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRegister(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, "john@example.com", user["email"])
	assert.Equal(t, "patient", user["role"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	// Stored password is a hash, not the plaintext
	var stored models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "john@example.com").First(&stored).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "John Doe", "email": "john@example.com", "password": "password123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "Impostor", "email": "john@example.com", "password": "different123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/api/auth/register", fiber.Map{
		"email": "not-an-email",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errors, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errors, 3) // name, email, password
}

func TestLoginRoundTrip(t *testing.T) {
	app := setupApp(t)

	_, registerBody := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "John Doe", "email": "john@example.com", "password": "password123",
	})

	resp, loginBody := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "john@example.com", "password": "password123",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, loginBody["token"])
	assert.Equal(t, registerBody["user"], loginBody["user"])

	// Token subject resolves to the created user
	token, err := jwt.Parse(loginBody["token"].(string), func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.NotNil(t, claims["userId"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := setupApp(t)

	postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "John Doe", "email": "john@example.com", "password": "password123",
	})

	// Wrong password and unknown email are indistinguishable
	resp, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "john@example.com", "password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])

	resp, body = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "nobody@example.com", "password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginValidation(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "invalid-email",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errors, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errors, 2) // email format, password required
}

func TestMe(t *testing.T) {
	app := setupApp(t)

	_, registerBody := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "John Doe", "email": "john@example.com", "password": "password123",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+registerBody["token"].(string))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "John Doe", body["name"])
	assert.Equal(t, "john@example.com", body["email"])
	assert.Equal(t, "patient", body["role"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestMeMissingToken(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token, authorization denied", decodeBody(t, resp)["message"])
}

func TestMeExpiredToken(t *testing.T) {
	app := setupApp(t)

	user := models.User{Name: "John Doe", Email: "john@example.com", Password: "x", Role: models.RolePatient}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	claims := jwt.MapClaims{
		"userId": user.ID,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token is not valid", decodeBody(t, resp)["message"])
}

// middleware.GenerateJWT is exercised indirectly everywhere; keep a direct check
// that its expiry honors configuration
func TestGeneratedTokenExpiry(t *testing.T) {
	setupApp(t)

	tokenString, err := middleware.GenerateJWT(1)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	expected := time.Now().Add(time.Duration(config.AppConfig.JWTExpiry) * time.Hour)
	assert.WithinDuration(t, expected, exp, time.Minute)
}
