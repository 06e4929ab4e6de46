package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type DocumentHandler struct {
	db *gorm.DB
}

func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{db: db}
}

// ListDocuments returns document metadata for a student
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	query := h.db.Model(&models.Document{})
	if studentID := c.QueryParam("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	var documents []models.Document
	if err := query.Order("created_at desc").Find(&documents).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch documents")
	}
	return c.JSON(http.StatusOK, documents)
}

// CreateDocument registers metadata for a file already placed in external
// storage; the upload itself happens outside this API
func (h *DocumentHandler) CreateDocument(c echo.Context) error {
	var req CreateDocumentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var student models.Student
	if err := h.db.First(&student, req.StudentID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "student not found")
	}

	document := models.Document{
		StudentID:   student.ID,
		Name:        req.Name,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		StorageKey:  req.StorageKey,
		UploadedBy:  currentUserID(c),
	}
	if err := h.db.Create(&document).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create document")
	}
	return c.JSON(http.StatusCreated, document)
}

// DeleteDocument soft deletes the metadata row
func (h *DocumentHandler) DeleteDocument(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.Document{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete document")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
