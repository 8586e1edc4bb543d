package progressController

import (
	"log"
	"strconv"
	"time"

	"rauha/database"
	"rauha/middleware"
	"rauha/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// CompleteStep marks a step completed for the calling user. The write is
// an upsert on the (user, step) unique index, so repeated and concurrent
// completions keep a single record and refresh its timestamp.
func CompleteStep(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	reqData := new(struct {
		StepID uint `json:"stepId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.StepID == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Step ID is required")
	}

	db := database.Database.Db

	if err := db.First(&models.Step{}, reqData.StepID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Step not found")
	}

	now := time.Now()
	progress := models.UserProgress{
		UserID:      user.ID,
		StepID:      reqData.StepID,
		Status:      models.ProgressCompleted,
		CompletedAt: &now,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "step_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "completed_at", "updated_at"}),
	}).Create(&progress).Error
	if err != nil {
		log.Printf("Error upserting progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	// Re-read so the response carries the stored record on the update path too
	var stored models.UserProgress
	if err := db.Where("user_id = ? AND step_id = ?", user.ID, reqData.StepID).First(&stored).Error; err != nil {
		log.Printf("Error reading progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(stored)
}

// GetUserProgress returns aggregated progress statistics for a user.
// Callers may view their own statistics; therapists may view anyone's.
func GetUserProgress(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	rawID, err := strconv.Atoi(c.Params("userId"))
	if err != nil || rawID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	userID := uint(rawID)

	if caller.ID != userID && caller.Role != models.RoleTherapist {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	db := database.Database.Db

	var rows []models.UserProgress
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		log.Printf("Error fetching progress rows: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	steps := make(map[uint]models.Step)
	modules := make(map[uint]models.Module)
	therapies := make(map[uint]models.Therapy)

	if len(rows) > 0 {
		stepIDs := make([]uint, 0, len(rows))
		for _, row := range rows {
			stepIDs = append(stepIDs, row.StepID)
		}

		var stepRecords []models.Step
		if err := db.Where("id IN ?", stepIDs).Find(&stepRecords).Error; err != nil {
			log.Printf("Error fetching steps: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}

		moduleIDs := make([]uint, 0, len(stepRecords))
		for _, step := range stepRecords {
			steps[step.ID] = step
			moduleIDs = append(moduleIDs, step.ModuleID)
		}

		var moduleRecords []models.Module
		if len(moduleIDs) > 0 {
			if err := db.Where("id IN ?", moduleIDs).Find(&moduleRecords).Error; err != nil {
				log.Printf("Error fetching modules: %v", err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
			}
		}

		therapyIDs := make([]uint, 0, len(moduleRecords))
		for _, module := range moduleRecords {
			modules[module.ID] = module
			therapyIDs = append(therapyIDs, module.TherapyID)
		}

		var therapyRecords []models.Therapy
		if len(therapyIDs) > 0 {
			if err := db.Where("id IN ?", therapyIDs).Find(&therapyRecords).Error; err != nil {
				log.Printf("Error fetching therapies: %v", err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
			}
		}
		for _, therapy := range therapyRecords {
			therapies[therapy.ID] = therapy
		}
	}

	return c.JSON(BuildUserStats(rows, steps, modules, therapies))
}

// GetTherapyStats returns aggregated completion statistics for a therapy.
// The route is restricted to therapists.
func GetTherapyStats(c *fiber.Ctx) error {
	rawID, err := strconv.Atoi(c.Params("therapyId"))
	if err != nil || rawID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid therapy ID")
	}
	therapyID := uint(rawID)

	db := database.Database.Db

	var therapy models.Therapy
	if err := db.First(&therapy, therapyID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Therapy not found")
	}

	var modules []models.Module
	if err := db.Where("therapy_id = ?", therapyID).Find(&modules).Error; err != nil {
		log.Printf("Error fetching modules: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var steps []models.Step
	if len(modules) > 0 {
		moduleIDs := make([]uint, 0, len(modules))
		for _, module := range modules {
			moduleIDs = append(moduleIDs, module.ID)
		}
		if err := db.Where("module_id IN ?", moduleIDs).Find(&steps).Error; err != nil {
			log.Printf("Error fetching steps: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	var rows []models.UserProgress
	if len(steps) > 0 {
		stepIDs := make([]uint, 0, len(steps))
		for _, step := range steps {
			stepIDs = append(stepIDs, step.ID)
		}
		if err := db.Where("step_id IN ?", stepIDs).Find(&rows).Error; err != nil {
			log.Printf("Error fetching progress rows: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	return c.JSON(BuildTherapyStats(therapy, modules, steps, rows))
}
