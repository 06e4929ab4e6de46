package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

type PaymentHandler struct {
	db          *gorm.DB
	allocations *services.AllocationService
}

func NewPaymentHandler(db *gorm.DB, allocations *services.AllocationService) *PaymentHandler {
	return &PaymentHandler{db: db, allocations: allocations}
}

// ListPayments returns payments, optionally filtered by owner
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	query := h.db.Model(&models.Payment{}).Preload("Allocations").Preload("BankAccount")

	if ownerType := c.QueryParam("owner_type"); ownerType != "" {
		query = query.Where("owner_type = ?", ownerType)
	}
	if ownerID := c.QueryParam("owner_id"); ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}

	var payments []models.Payment
	if err := query.Order("payment_date desc").Find(&payments).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch payments")
	}
	return c.JSON(http.StatusOK, payments)
}

// GetPayment returns one payment with its allocations
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var payment models.Payment
	if err := h.db.Preload("Allocations.PaymentSchedule").Preload("BankAccount").First(&payment, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "payment not found")
	}
	return c.JSON(http.StatusOK, payment)
}

// CreatePayment records a manual payment (bank transfer, check)
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.BankAccountID != nil {
		var account models.BankAccount
		if err := h.db.First(&account, *req.BankAccountID).Error; err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "bank account not found")
		}
	}

	payment := models.Payment{
		OwnerType:     req.OwnerType,
		OwnerID:       req.OwnerID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Direction:     req.Direction,
		Method:        req.Method,
		Reference:     req.Reference,
		PaymentDate:   req.PaymentDate,
		BankAccountID: req.BankAccountID,
	}
	if err := h.db.Create(&payment).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create payment")
	}
	return c.JSON(http.StatusCreated, payment)
}

// SuggestAllocations plans how an amount should be split across a debtor's
// open schedules, OVERDUE first, then PARTIAL, then PENDING
func (h *PaymentHandler) SuggestAllocations(c echo.Context) error {
	amountStr := c.QueryParam("amount")
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil || amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be a positive integer in minor units")
	}

	filter := services.AllocationFilter{
		OwnerType: models.OwnerType(c.QueryParam("owner_type")),
		Currency:  models.Currency(c.QueryParam("currency")),
	}
	if ownerID := c.QueryParam("owner_id"); ownerID != "" {
		id, err := strconv.ParseUint(ownerID, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid owner_id")
		}
		filter.OwnerID = uint(id)
	}

	plan, err := h.allocations.Suggest(amount, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to plan allocations")
	}
	return c.JSON(http.StatusOK, plan)
}

// ApplyAllocations applies explicit allocations of a payment to schedules,
// atomically: every allocation lands or none does
func (h *PaymentHandler) ApplyAllocations(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ApplyAllocationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	instructions := make([]services.AllocationInstruction, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		instructions = append(instructions, services.AllocationInstruction{
			ScheduleID: a.ScheduleID,
			Amount:     a.Amount,
		})
	}

	if err := h.allocations.Apply(id, instructions); err != nil {
		return err
	}

	var payment models.Payment
	if err := h.db.Preload("Allocations.PaymentSchedule").First(&payment, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load payment")
	}
	return c.JSON(http.StatusOK, payment)
}

// ListBankAccounts returns the company bank accounts
func (h *PaymentHandler) ListBankAccounts(c echo.Context) error {
	var accounts []models.BankAccount
	if err := h.db.Find(&accounts).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch bank accounts")
	}
	return c.JSON(http.StatusOK, accounts)
}

// CreateBankAccount registers a company bank account
func (h *PaymentHandler) CreateBankAccount(c echo.Context) error {
	var req CreateBankAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account := models.BankAccount{
		Label:    req.Label,
		IBAN:     req.IBAN,
		BIC:      req.BIC,
		Currency: req.Currency,
	}
	if err := h.db.Create(&account).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create bank account")
	}
	return c.JSON(http.StatusCreated, account)
}
