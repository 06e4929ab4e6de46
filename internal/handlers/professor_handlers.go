package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type ProfessorHandler struct {
	db *gorm.DB
}

func NewProfessorHandler(db *gorm.DB) *ProfessorHandler {
	return &ProfessorHandler{db: db}
}

// ListProfessors returns all professors with their user preloaded
func (h *ProfessorHandler) ListProfessors(c echo.Context) error {
	var professors []models.Professor
	if err := h.db.Preload("User").Find(&professors).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch professors")
	}
	return c.JSON(http.StatusOK, professors)
}

// GetProfessor returns one professor with missions
func (h *ProfessorHandler) GetProfessor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var professor models.Professor
	if err := h.db.Preload("User").Preload("Missions").First(&professor, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "professor not found")
	}
	return c.JSON(http.StatusOK, professor)
}

// CreateProfessor creates the user account and the professor profile together
func (h *ProfessorHandler) CreateProfessor(c echo.Context) error {
	var req CreateProfessorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var professor models.Professor
	err := h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Role:     models.RoleProfessor,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		professor = models.Professor{
			UserID:     user.ID,
			Subject:    req.Subject,
			HourlyRate: req.HourlyRate,
		}
		return tx.Create(&professor).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create professor")
	}

	if err := h.db.Preload("User").First(&professor, professor.ID).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load professor")
	}
	return c.JSON(http.StatusCreated, professor)
}

// DeleteProfessor soft deletes a professor profile
func (h *ProfessorHandler) DeleteProfessor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.Professor{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete professor")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
