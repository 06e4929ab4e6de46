package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"performup_api/internal/models"
)

// Validator adapts go-playground/validator to echo's Validator interface
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// bindAndValidate binds the JSON body into dest and runs schema validation.
// Validation errors propagate to the central error handler as 400s.
func bindAndValidate(c echo.Context, dest interface{}) error {
	if err := c.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(dest)
}

// Request bodies. Monetary amounts are positive integers in minor currency
// units; datetimes bind from RFC 3339 strings.

type CreateStudentRequest struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone"`
	Nationality string     `json:"nationality"`
	BirthDate   *time.Time `json:"birth_date"`
	MentorID    *uint      `json:"mentor_id"`
	ProgramID   *uint      `json:"program_id"`
	Notes       string     `json:"notes"`
}

type UpdateStudentRequest struct {
	Nationality *string    `json:"nationality"`
	BirthDate   *time.Time `json:"birth_date"`
	MentorID    *uint      `json:"mentor_id"`
	ProgramID   *uint      `json:"program_id"`
	Notes       *string    `json:"notes"`
}

type CreateMentorRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Speciality string `json:"speciality"`
	HourlyRate int64  `json:"hourly_rate" validate:"gte=0"`
	Bio        string `json:"bio"`
}

type CreateProfessorRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	HourlyRate int64  `json:"hourly_rate" validate:"gte=0"`
}

type CreateSchoolRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
	City    string `json:"city"`
	Website string `json:"website"`
}

type CreateProgramRequest struct {
	Name     string `json:"name" validate:"required"`
	Degree   string `json:"degree"`
	Language string `json:"language"`
}

type CreatePackRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       int64           `json:"price" validate:"required,gt=0"`
	Currency    models.Currency `json:"currency" validate:"required,oneof=EUR USD GBP"`
}

type CreateTaskRequest struct {
	StudentID      uint       `json:"student_id" validate:"required"`
	AssignedUserID *uint      `json:"assigned_user_id"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"due_date"`
}

type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

type CreateDocumentRequest struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
	StorageKey  string `json:"storage_key" validate:"required"`
}

type CreateBankAccountRequest struct {
	Label    string          `json:"label" validate:"required"`
	IBAN     string          `json:"iban" validate:"required"`
	BIC      string          `json:"bic"`
	Currency models.Currency `json:"currency" validate:"required,oneof=EUR USD GBP"`
}

type CreateScheduleRequest struct {
	OwnerType models.OwnerType `json:"owner_type" validate:"required,oneof=student mentor professor"`
	OwnerID   uint             `json:"owner_id" validate:"required"`
	Label     string           `json:"label" validate:"required"`
	Amount    int64            `json:"amount" validate:"required,gt=0"`
	Currency  models.Currency  `json:"currency" validate:"required,oneof=EUR USD GBP"`
	DueDate   time.Time        `json:"due_date" validate:"required"`
}

type CreatePaymentRequest struct {
	OwnerType     models.OwnerType        `json:"owner_type" validate:"required,oneof=student mentor professor"`
	OwnerID       uint                    `json:"owner_id" validate:"required"`
	Amount        int64                   `json:"amount" validate:"required,gt=0"`
	Currency      models.Currency         `json:"currency" validate:"required,oneof=EUR USD GBP"`
	Direction     models.PaymentDirection `json:"direction" validate:"required,oneof=IN OUT"`
	Method        string                  `json:"method"`
	Reference     string                  `json:"reference"`
	PaymentDate   time.Time               `json:"payment_date" validate:"required"`
	BankAccountID *uint                   `json:"bank_account_id"`
}

type ApplyAllocationsRequest struct {
	Allocations []AllocationItem `json:"allocations" validate:"required,min=1,dive"`
}

type AllocationItem struct {
	ScheduleID uint  `json:"schedule_id" validate:"required"`
	Amount     int64 `json:"amount" validate:"required,gt=0"`
}

type CreateQuoteRequest struct {
	StudentID    uint             `json:"student_id" validate:"required"`
	Currency     models.Currency  `json:"currency" validate:"required,oneof=EUR USD GBP"`
	Items        []QuoteItemInput `json:"items" validate:"required,min=1,dive"`
	Installments InstallmentInput `json:"installments" validate:"required"`
	ValidUntil   *time.Time       `json:"valid_until"`
}

type QuoteItemInput struct {
	PackID   uint `json:"pack_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"gte=0"`
}

type InstallmentInput struct {
	Count     int       `json:"count" validate:"required,gt=0"`
	RRule     string    `json:"rrule" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
}

type CreateMissionRequest struct {
	MentorID    *uint           `json:"mentor_id"`
	ProfessorID *uint           `json:"professor_id"`
	StudentID   *uint           `json:"student_id"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount" validate:"required,gt=0"`
	Currency    models.Currency `json:"currency" validate:"required,oneof=EUR USD GBP"`
}

type RejectMissionRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

type UpdateUserRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=ADMIN STUDENT MENTOR PROFESSOR EXECUTIVE_CHEF"`
}

type ImpersonateRequest struct {
	TargetUserID uint `json:"target_user_id" validate:"required"`
}
