package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type TaskHandler struct {
	db *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

// ListTasks returns tasks, optionally filtered by student or status
func (h *TaskHandler) ListTasks(c echo.Context) error {
	query := h.db.Model(&models.Task{}).Preload("AssignedUser")

	if studentID := c.QueryParam("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := query.Order("due_date asc").Find(&tasks).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a checklist item for a student
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var student models.Student
	if err := h.db.First(&student, req.StudentID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "student not found")
	}

	task := models.Task{
		StudentID:      student.ID,
		AssignedUserID: req.AssignedUserID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         models.TaskStatusTodo,
		DueDate:        req.DueDate,
	}
	if err := h.db.Create(&task).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create task")
	}
	return c.JSON(http.StatusCreated, task)
}

// UpdateTaskStatus moves a task along its checklist lifecycle
func (h *TaskHandler) UpdateTaskStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var task models.Task
	if err := h.db.First(&task, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}

	var req UpdateTaskStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task.Status = req.Status
	if err := h.db.Save(&task).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update task")
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask soft deletes a task
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&models.Task{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete task")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
