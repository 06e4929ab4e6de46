package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

type PackHandler struct {
	db *gorm.DB
}

func NewPackHandler(db *gorm.DB) *PackHandler {
	return &PackHandler{db: db}
}

// ListPacks returns the active packs; pass all=true to include retired ones
func (h *PackHandler) ListPacks(c echo.Context) error {
	query := h.db.Model(&models.Pack{})
	if c.QueryParam("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var packs []models.Pack
	if err := query.Find(&packs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch packs")
	}
	return c.JSON(http.StatusOK, packs)
}

// CreatePack creates a sellable pack
func (h *PackHandler) CreatePack(c echo.Context) error {
	var req CreatePackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pack := models.Pack{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		IsActive:    true,
	}
	if err := h.db.Create(&pack).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create pack")
	}
	return c.JSON(http.StatusCreated, pack)
}

// RetirePack deactivates a pack so it can no longer be quoted
func (h *PackHandler) RetirePack(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var pack models.Pack
	if err := h.db.First(&pack, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "pack not found")
	}

	pack.IsActive = false
	if err := h.db.Save(&pack).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to retire pack")
	}
	return c.JSON(http.StatusOK, pack)
}
