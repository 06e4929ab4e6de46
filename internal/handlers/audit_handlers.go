package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type AuditHandler struct {
	db *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// ListAuditLogs returns the audit trail, newest first, paginated
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	query := h.db.Model(&models.AuditLog{}).Preload("User")

	if action := c.QueryParam("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if userID := c.QueryParam("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize := 50

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to count audit logs")
	}

	var logs []models.AuditLog
	if err := query.Order("created_at desc").Limit(pageSize).Offset((page - 1) * pageSize).Find(&logs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch audit logs")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"logs":        logs,
		"page":        page,
		"page_size":   pageSize,
		"total_count": totalCount,
	})
}
