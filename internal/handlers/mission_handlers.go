package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

type MissionHandler struct {
	db       *gorm.DB
	missions *services.MissionService
}

func NewMissionHandler(db *gorm.DB, missions *services.MissionService) *MissionHandler {
	return &MissionHandler{db: db, missions: missions}
}

// ListMissions returns missions, optionally filtered by status or assignee
func (h *MissionHandler) ListMissions(c echo.Context) error {
	query := h.db.Model(&models.Mission{}).Preload("Mentor.User").Preload("Professor.User")

	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if mentorID := c.QueryParam("mentor_id"); mentorID != "" {
		query = query.Where("mentor_id = ?", mentorID)
	}
	if professorID := c.QueryParam("professor_id"); professorID != "" {
		query = query.Where("professor_id = ?", professorID)
	}

	var missions []models.Mission
	if err := query.Order("created_at desc").Find(&missions).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch missions")
	}
	return c.JSON(http.StatusOK, missions)
}

// CreateMission declares billable work for a mentor or professor
func (h *MissionHandler) CreateMission(c echo.Context) error {
	var req CreateMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.MentorID == nil && req.ProfessorID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "mission needs a mentor or a professor")
	}

	mission := models.Mission{
		MentorID:    req.MentorID,
		ProfessorID: req.ProfessorID,
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      models.MissionStatusPending,
	}
	if err := h.db.Create(&mission).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create mission")
	}
	return c.JSON(http.StatusCreated, mission)
}

// ValidateMission approves a PENDING mission
func (h *MissionHandler) ValidateMission(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	mission, err := h.missions.Validate(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mission)
}

// RejectMission rejects a PENDING mission with a mandatory reason
func (h *MissionHandler) RejectMission(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req RejectMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mission, err := h.missions.Reject(id, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mission)
}
