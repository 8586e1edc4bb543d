package therapyController

import (
	"log"
	"strconv"

	"rauha/database"
	"rauha/middleware"
	"rauha/models"
	therapyValidator "rauha/validators/therapy"

	"github.com/gofiber/fiber/v2"
)

// TherapyWithCreator carries a therapy with its creator expanded to public fields
type TherapyWithCreator struct {
	models.Therapy
	CreatedBy fiber.Map `json:"createdBy"`
}

func withCreator(therapy models.Therapy, creator models.User) TherapyWithCreator {
	return TherapyWithCreator{
		Therapy: therapy,
		CreatedBy: fiber.Map{
			"name":  creator.Name,
			"email": creator.Email,
		},
	}
}

// parseID validates a numeric path parameter
func parseID(raw string) (uint, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// GetTherapies returns all therapies with their creator expanded
func GetTherapies(c *fiber.Ctx) error {
	db := database.Database.Db

	var therapies []models.Therapy
	if err := db.Find(&therapies).Error; err != nil {
		log.Printf("Error fetching therapies: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]TherapyWithCreator, len(therapies))
	for i, therapy := range therapies {
		var creator models.User
		db.First(&creator, therapy.CreatedByID)
		result[i] = withCreator(therapy, creator)
	}

	return c.JSON(result)
}

// GetTherapyByID returns a single therapy with its creator expanded
func GetTherapyByID(c *fiber.Ctx) error {
	therapyID, ok := parseID(c.Params("id"))
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid therapy ID")
	}

	db := database.Database.Db

	var therapy models.Therapy
	if err := db.First(&therapy, therapyID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Therapy not found")
	}

	var creator models.User
	db.First(&creator, therapy.CreatedByID)

	return c.JSON(withCreator(therapy, creator))
}

// GetTherapyModules returns a therapy's modules ordered by order index
func GetTherapyModules(c *fiber.Ctx) error {
	therapyID, ok := parseID(c.Params("id"))
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid therapy ID")
	}

	db := database.Database.Db

	if err := db.First(&models.Therapy{}, therapyID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Therapy not found")
	}

	var modules []models.Module
	if err := db.Where("therapy_id = ?", therapyID).Order("order_index asc").Find(&modules).Error; err != nil {
		log.Printf("Error fetching modules: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(modules)
}

// CreateTherapy creates a new therapy owned by the calling therapist
func CreateTherapy(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	reqData, ok := c.Locals("validatedTherapy").(*therapyValidator.CreateTherapyRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	therapy := models.Therapy{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Duration:    reqData.Duration,
		CreatedByID: user.ID,
	}

	if err := database.Database.Db.Create(&therapy).Error; err != nil {
		log.Printf("Error creating therapy: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(withCreator(therapy, user))
}
