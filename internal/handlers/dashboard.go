package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

type DashboardHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewDashboardHandler(db *gorm.DB, cache *services.RedisCache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache}
}

// DashboardSummary is the admin home payload
type DashboardSummary struct {
	Students          int64 `json:"students"`
	Mentors           int64 `json:"mentors"`
	Professors        int64 `json:"professors"`
	PendingMissions   int64 `json:"pending_missions"`
	SentQuotes        int64 `json:"sent_quotes"`
	OverdueSchedules  int64 `json:"overdue_schedules"`
	OutstandingAmount int64 `json:"outstanding_amount"` // minor units, open schedules
}

// Summary returns platform-wide counters, cached in Redis for 5 minutes
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := services.GetOrSet(h.cache, c.Request().Context(), "dashboard:summary", 5*time.Minute, func() (DashboardSummary, error) {
		return h.computeSummary()
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute dashboard summary")
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) computeSummary() (DashboardSummary, error) {
	var summary DashboardSummary

	if err := h.db.Model(&models.Student{}).Count(&summary.Students).Error; err != nil {
		return summary, err
	}
	if err := h.db.Model(&models.Mentor{}).Count(&summary.Mentors).Error; err != nil {
		return summary, err
	}
	if err := h.db.Model(&models.Professor{}).Count(&summary.Professors).Error; err != nil {
		return summary, err
	}
	if err := h.db.Model(&models.Mission{}).Where("status = ?", models.MissionStatusPending).Count(&summary.PendingMissions).Error; err != nil {
		return summary, err
	}
	if err := h.db.Model(&models.Quote{}).Where("status = ?", models.QuoteStatusSent).Count(&summary.SentQuotes).Error; err != nil {
		return summary, err
	}
	if err := h.db.Model(&models.PaymentSchedule{}).Where("status = ?", models.ScheduleStatusOverdue).Count(&summary.OverdueSchedules).Error; err != nil {
		return summary, err
	}

	row := h.db.Model(&models.PaymentSchedule{}).
		Where("status IN ?", []models.ScheduleStatus{
			models.ScheduleStatusPending,
			models.ScheduleStatusPartial,
			models.ScheduleStatusOverdue,
		}).
		Select("COALESCE(SUM(amount - paid_amount), 0)")
	if err := row.Scan(&summary.OutstandingAmount).Error; err != nil {
		return summary, err
	}

	return summary, nil
}
