package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogicum/internal/feed"
	"blogicum/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// List returns all published categories.
func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Where("is_published = ?", true).Order("title ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// Posts returns the paginated posts of one published category. Unpublished
// or missing categories 404 even when they contain published posts.
func (h *CategoryHandler) Posts(c *gin.Context) {
	slug := c.Param("slug")

	result, err := feed.ListPosts(h.db, feed.ByCategory(slug), viewerID(c), time.Now().UTC(), pageNumber(c))
	if err != nil {
		notFoundStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": result.Category,
		"page":     result.Page,
	})
}
