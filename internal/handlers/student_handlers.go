package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

// ListStudents returns all students with their user and program preloaded
func (h *StudentHandler) ListStudents(c echo.Context) error {
	query := h.db.Model(&models.Student{}).Preload("User").Preload("Program")

	if mentorID := c.QueryParam("mentor_id"); mentorID != "" {
		query = query.Where("mentor_id = ?", mentorID)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch students")
	}

	return c.JSON(http.StatusOK, students)
}

// GetStudent returns one student with related records
func (h *StudentHandler) GetStudent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var student models.Student
	if err := h.db.Preload("User").Preload("Mentor.User").Preload("Program.School").Preload("Quotes").First(&student, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "student not found")
	}

	return c.JSON(http.StatusOK, student)
}

// CreateStudent creates the user account and the student profile together
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	var req CreateStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var student models.Student
	err := h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Role:     models.RoleStudent,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		student = models.Student{
			UserID:      user.ID,
			Nationality: req.Nationality,
			BirthDate:   req.BirthDate,
			MentorID:    req.MentorID,
			ProgramID:   req.ProgramID,
			Notes:       req.Notes,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create student")
	}

	if err := h.db.Preload("User").First(&student, student.ID).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load student")
	}
	return c.JSON(http.StatusCreated, student)
}

// UpdateStudent updates the student profile fields present in the body
func (h *StudentHandler) UpdateStudent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var student models.Student
	if err := h.db.First(&student, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "student not found")
	}

	var req UpdateStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.Nationality != nil {
		student.Nationality = *req.Nationality
	}
	if req.BirthDate != nil {
		student.BirthDate = req.BirthDate
	}
	if req.MentorID != nil {
		student.MentorID = req.MentorID
	}
	if req.ProgramID != nil {
		student.ProgramID = req.ProgramID
	}
	if req.Notes != nil {
		student.Notes = *req.Notes
	}

	if err := h.db.Save(&student).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update student")
	}

	return c.JSON(http.StatusOK, student)
}

// DeleteStudent soft deletes a student profile
func (h *StudentHandler) DeleteStudent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.Student{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete student")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
