package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type MentorHandler struct {
	db *gorm.DB
}

func NewMentorHandler(db *gorm.DB) *MentorHandler {
	return &MentorHandler{db: db}
}

// ListMentors returns all mentors with their user preloaded
func (h *MentorHandler) ListMentors(c echo.Context) error {
	var mentors []models.Mentor
	if err := h.db.Preload("User").Find(&mentors).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch mentors")
	}
	return c.JSON(http.StatusOK, mentors)
}

// GetMentor returns one mentor with students and missions
func (h *MentorHandler) GetMentor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var mentor models.Mentor
	if err := h.db.Preload("User").Preload("Students.User").Preload("Missions").First(&mentor, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "mentor not found")
	}
	return c.JSON(http.StatusOK, mentor)
}

// CreateMentor creates the user account and the mentor profile together
func (h *MentorHandler) CreateMentor(c echo.Context) error {
	var req CreateMentorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var mentor models.Mentor
	err := h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Role:     models.RoleMentor,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		mentor = models.Mentor{
			UserID:     user.ID,
			Speciality: req.Speciality,
			HourlyRate: req.HourlyRate,
			Bio:        req.Bio,
		}
		return tx.Create(&mentor).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create mentor")
	}

	if err := h.db.Preload("User").First(&mentor, mentor.ID).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load mentor")
	}
	return c.JSON(http.StatusCreated, mentor)
}

// DeleteMentor soft deletes a mentor profile
func (h *MentorHandler) DeleteMentor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.Mentor{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete mentor")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
