package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type SchoolHandler struct {
	db *gorm.DB
}

func NewSchoolHandler(db *gorm.DB) *SchoolHandler {
	return &SchoolHandler{db: db}
}

// ListSchools returns all schools with their programs
func (h *SchoolHandler) ListSchools(c echo.Context) error {
	query := h.db.Model(&models.School{}).Preload("Programs")
	if country := c.QueryParam("country"); country != "" {
		query = query.Where("country = ?", country)
	}

	var schools []models.School
	if err := query.Find(&schools).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch schools")
	}
	return c.JSON(http.StatusOK, schools)
}

// GetSchool returns one school with its programs
func (h *SchoolHandler) GetSchool(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var school models.School
	if err := h.db.Preload("Programs").First(&school, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "school not found")
	}
	return c.JSON(http.StatusOK, school)
}

// CreateSchool creates a school
func (h *SchoolHandler) CreateSchool(c echo.Context) error {
	var req CreateSchoolRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	school := models.School{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Website: req.Website,
	}
	if err := h.db.Create(&school).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create school")
	}
	return c.JSON(http.StatusCreated, school)
}

// CreateProgram creates a program under an existing school
func (h *SchoolHandler) CreateProgram(c echo.Context) error {
	schoolID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var school models.School
	if err := h.db.First(&school, schoolID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "school not found")
	}

	var req CreateProgramRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	program := models.Program{
		SchoolID: school.ID,
		Name:     req.Name,
		Degree:   req.Degree,
		Language: req.Language,
	}
	if err := h.db.Create(&program).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create program")
	}
	return c.JSON(http.StatusCreated, program)
}

// DeleteSchool soft deletes a school
func (h *SchoolHandler) DeleteSchool(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.School{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete school")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
