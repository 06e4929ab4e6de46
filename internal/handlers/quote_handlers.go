package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

type QuoteHandler struct {
	db     *gorm.DB
	quotes *services.QuoteService
}

func NewQuoteHandler(db *gorm.DB, quotes *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{db: db, quotes: quotes}
}

// ListQuotes returns quotes, optionally filtered by student or status
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	query := h.db.Model(&models.Quote{}).Preload("Student.User").Preload("Items")

	if studentID := c.QueryParam("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var quotes []models.Quote
	if err := query.Order("created_at desc").Find(&quotes).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch quotes")
	}
	return c.JSON(http.StatusOK, quotes)
}

// GetQuote returns one quote with items and proposed schedules
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var quote models.Quote
	if err := h.db.Preload("Student.User").Preload("Items.Pack").Preload("Schedules").First(&quote, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "quote not found")
	}
	return c.JSON(http.StatusOK, quote)
}

// CreateQuote builds a DRAFT quote from packs plus an installment plan
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req CreateQuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]services.NewQuoteItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.NewQuoteItem{PackID: it.PackID, Quantity: it.Quantity})
	}

	quote, err := h.quotes.Create(req.StudentID, req.Currency, items, services.InstallmentPlan{
		Count:     req.Installments.Count,
		RRule:     req.Installments.RRule,
		StartDate: req.Installments.StartDate,
	}, req.ValidUntil)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, quote)
}

// SendQuote moves a DRAFT quote to SENT and notifies the student
func (h *QuoteHandler) SendQuote(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	quote, err := h.quotes.Send(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// RejectQuote declines a SENT quote; its proposed schedules never activate
func (h *QuoteHandler) RejectQuote(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	quote, err := h.quotes.Reject(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// ValidateQuote moves a SENT quote to VALIDATED and activates its payment
// schedules atomically
func (h *QuoteHandler) ValidateQuote(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	quote, err := h.quotes.Validate(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}
