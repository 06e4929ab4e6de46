package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

type ScheduleHandler struct {
	db      *gorm.DB
	gateway *services.GatewayService
}

func NewScheduleHandler(db *gorm.DB, gateway *services.GatewayService) *ScheduleHandler {
	return &ScheduleHandler{db: db, gateway: gateway}
}

// ListSchedules returns payment schedules, optionally filtered by owner,
// status or currency
func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	query := h.db.Model(&models.PaymentSchedule{})

	if ownerType := c.QueryParam("owner_type"); ownerType != "" {
		query = query.Where("owner_type = ?", ownerType)
	}
	if ownerID := c.QueryParam("owner_id"); ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if currency := c.QueryParam("currency"); currency != "" {
		query = query.Where("currency = ?", currency)
	}

	var schedules []models.PaymentSchedule
	if err := query.Order("due_date asc").Find(&schedules).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch schedules")
	}
	return c.JSON(http.StatusOK, schedules)
}

// CreateSchedule creates a standalone obligation, active immediately:
// OVERDUE when the due date has already passed, PENDING otherwise
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	var req CreateScheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	schedule := models.PaymentSchedule{
		OwnerType: req.OwnerType,
		OwnerID:   req.OwnerID,
		Label:     req.Label,
		Amount:    req.Amount,
		Currency:  req.Currency,
		DueDate:   req.DueDate,
	}
	schedule.Status = schedule.DeriveStatus(time.Now())

	if err := h.db.Create(&schedule).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create schedule")
	}
	return c.JSON(http.StatusCreated, schedule)
}

// CancelSchedule voids an obligation that has received no allocations yet
func (h *ScheduleHandler) CancelSchedule(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var schedule models.PaymentSchedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}

	if schedule.PaidAmount > 0 {
		return services.NewTransitionError("schedules with recorded allocations cannot be canceled")
	}
	if schedule.Status == models.ScheduleStatusCanceled {
		return services.NewTransitionError("schedule is already canceled")
	}

	schedule.Status = models.ScheduleStatusCanceled
	if err := h.db.Save(&schedule).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to cancel schedule")
	}
	return c.JSON(http.StatusOK, schedule)
}

// InitiateCheckout opens an online payment session for one of the calling
// student's own schedules
func (h *ScheduleHandler) InitiateCheckout(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var schedule models.PaymentSchedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}

	// Students can only pay their own dues
	var payer models.User
	if err := h.db.First(&payer, currentUserID(c)).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if !currentRole(c).IsAdmin() {
		var student models.Student
		if err := h.db.Where("user_id = ?", payer.ID).First(&student).Error; err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "only students can pay schedules online")
		}
		if schedule.OwnerType != models.OwnerStudent || schedule.OwnerID != student.ID {
			return echo.NewHTTPError(http.StatusForbidden, "you can only pay your own schedules")
		}
	}

	if !schedule.IsOpen() {
		return services.NewTransitionError("schedule %d is not payable, status is %s", schedule.ID, schedule.Status)
	}

	forceNew := c.QueryParam("force_new") == "true"
	callbackURL := c.QueryParam("callback_url")

	result, err := h.gateway.InitiateCheckout(&schedule, &payer, forceNew, callbackURL)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":        result.Token,
		"redirect_url": result.RedirectURL,
		"is_existing":  result.IsExisting,
	})
}

// GatewayCallback handles Midtrans payment notifications. Every payload is
// kept in the callback history before it is acted on.
func (h *ScheduleHandler) GatewayCallback(c echo.Context) error {
	var notificationPayload map[string]interface{}
	if err := c.Bind(&notificationPayload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	orderID, _ := notificationPayload["order_id"].(string)
	transactionStatus, _ := notificationPayload["transaction_status"].(string)
	fraudStatus, _ := notificationPayload["fraud_status"].(string)
	paymentType, _ := notificationPayload["payment_type"].(string)

	if orderID == "" || !strings.HasPrefix(orderID, "schedule-") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID format")
	}

	rawPayload, _ := json.Marshal(notificationPayload)
	h.db.Create(&models.GatewayCallbackHistory{
		PaymentGateway: models.PaymentGatewayMidtrans,
		OrderID:        orderID,
		Metadata:       rawPayload,
	})

	// Midtrans reports gross_amount as a decimal string
	grossAmtStr, _ := notificationPayload["gross_amount"].(string)
	grossFloat, _ := strconv.ParseFloat(grossAmtStr, 64)
	grossAmount := int64(grossFloat)

	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			if err := h.gateway.RecordSettlement(orderID, grossAmount, paymentType); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to record settlement")
			}
		}
	case "settlement":
		if err := h.gateway.RecordSettlement(orderID, grossAmount, paymentType); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to record settlement")
		}
	case "deny", "expire", "cancel":
		if err := h.gateway.DeactivateSession(orderID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to close session")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
