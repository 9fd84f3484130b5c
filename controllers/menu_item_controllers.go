package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/models"
	"github.com/yeremiapane/restaurant-backoffice/utils"
)

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

// GetAllMenuItems -> full card, optionally filtered by category
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	query := mc.DB.Model(&models.MenuItem{}).Order("id ASC")

	if category := c.Query("category"); category != "" {
		if !models.ValidMenuCategory(category) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown menu category: "+category))
			return
		}
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Category       string  `json:"category" binding:"required"`
		SubCategory    string  `json:"sub_category" binding:"omitempty,max=1024"`
		Name           string  `json:"name" binding:"required,max=1024"`
		SubName        *string `json:"sub_name" binding:"omitempty,max=1024"`
		MainUnit       string  `json:"main_unit" binding:"omitempty,max=255"`
		MainPrice      string  `json:"main_price" binding:"omitempty,max=255"`
		SecondaryUnit  *string `json:"secondary_unit" binding:"omitempty,max=255"`
		SecondaryPrice *string `json:"secondary_price" binding:"omitempty,max=255"`
		Special        bool    `json:"special"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidMenuCategory(req.Category) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown menu category: "+req.Category))
		return
	}

	item := models.MenuItem{
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		Name:           req.Name,
		SubName:        req.SubName,
		MainUnit:       req.MainUnit,
		MainPrice:      req.MainPrice,
		SecondaryUnit:  req.SecondaryUnit,
		SecondaryPrice: req.SecondaryPrice,
		Special:        req.Special,
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New menu item created: %s (%s)", item.Name, item.Category)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created successfully", item)
}

// UpdateMenuItem -> partial update
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Category       *string `json:"category"`
		SubCategory    *string `json:"sub_category" binding:"omitempty,max=1024"`
		Name           *string `json:"name" binding:"omitempty,max=1024"`
		SubName        *string `json:"sub_name" binding:"omitempty,max=1024"`
		MainUnit       *string `json:"main_unit" binding:"omitempty,max=255"`
		MainPrice      *string `json:"main_price" binding:"omitempty,max=255"`
		SecondaryUnit  *string `json:"secondary_unit" binding:"omitempty,max=255"`
		SecondaryPrice *string `json:"secondary_price" binding:"omitempty,max=255"`
		Special        *bool   `json:"special"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Category != nil {
		if !models.ValidMenuCategory(*req.Category) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown menu category: "+*req.Category))
			return
		}
		item.Category = *req.Category
	}
	if req.SubCategory != nil {
		item.SubCategory = *req.SubCategory
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.SubName != nil {
		item.SubName = req.SubName
	}
	if req.MainUnit != nil {
		item.MainUnit = *req.MainUnit
	}
	if req.MainPrice != nil {
		item.MainPrice = *req.MainPrice
	}
	if req.SecondaryUnit != nil {
		item.SecondaryUnit = req.SecondaryUnit
	}
	if req.SecondaryPrice != nil {
		item.SecondaryPrice = req.SecondaryPrice
	}
	if req.Special != nil {
		item.Special = *req.Special
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d deleted", item.ID)
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{
		"id": item.ID,
	})
}
