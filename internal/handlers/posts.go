package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogicum/internal/feed"
	"blogicum/internal/models"
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// Index returns the public feed: published posts in published categories
// with pub_date in the past, newest first, ten per page.
func (h *PostHandler) Index(c *gin.Context) {
	result, err := feed.ListPosts(h.db, feed.All(), viewerID(c), time.Now().UTC(), pageNumber(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, result.Page)
}

// Detail returns a single post with its comments. Drafts, future-dated posts
// and posts in unpublished categories 404 for everyone but the author.
func (h *PostHandler) Detail(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	err := h.db.Preload("Author").Preload("Category").Preload("Location").
		First(&post, "posts.id = ?", postID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	viewer := viewerID(c)
	if !feed.IsVisible(&post, viewer, time.Now().UTC()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	if err := h.db.Where("post_id = ?", post.ID).Preload("Author").
		Order("created_at ASC, id ASC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	post.CommentCount = int64(len(comments))

	c.JSON(http.StatusOK, gin.H{
		"post":           post,
		"comments":       comments,
		"is_post_author": viewer != feed.AnonymousViewer && viewer == post.AuthorID,
	})
}

// Create creates a new post (PROTECTED - requires authentication)
func (h *PostHandler) Create(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if input.CategoryID != nil {
		var category models.Category
		if err := h.db.First(&category, *input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}
	}
	if input.LocationID != nil {
		var location models.Location
		if err := h.db.First(&location, *input.LocationID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Location does not exist"})
			return
		}
	}

	// Future pub_date is allowed: the post stays hidden from everyone but
	// the author until the date arrives.
	pubDate := time.Now().UTC()
	if input.PubDate != nil {
		pubDate = input.PubDate.UTC()
	}

	post := models.Post{
		Title:       input.Title,
		Text:        input.Text,
		Image:       input.Image,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
		PubDate:     pubDate,
		IsPublished: true,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	h.db.Preload("Author").Preload("Category").Preload("Location").First(&post, post.ID)

	c.JSON(http.StatusCreated, post)
}

// Update updates an existing post. Non-authors are redirected to the post's
// detail view instead of getting a 403.
func (h *PostHandler) Update(c *gin.Context) {
	postID := c.Param("id")

	currentUserID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title      string     `json:"title"`
		Text       string     `json:"text"`
		Image      string     `json:"image"`
		CategoryID *int       `json:"category_id"`
		LocationID *int       `json:"location_id"`
		PubDate    *time.Time `json:"pub_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != currentUserID {
		redirectToPost(c, post.ID)
		return
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Text != "" {
		post.Text = input.Text
	}
	if input.Image != "" {
		post.Image = input.Image
	}
	if input.CategoryID != nil {
		var category models.Category
		if err := h.db.First(&category, *input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}
		post.CategoryID = input.CategoryID
	}
	if input.LocationID != nil {
		var location models.Location
		if err := h.db.First(&location, *input.LocationID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Location does not exist"})
			return
		}
		post.LocationID = input.LocationID
	}
	if input.PubDate != nil {
		post.PubDate = input.PubDate.UTC()
	}

	if err := h.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	h.db.Preload("Author").Preload("Category").Preload("Location").First(&post, post.ID)

	c.JSON(http.StatusOK, post)
}

// Delete deletes a post and its comments. Non-authors are redirected to the
// post's detail view instead of getting a 403.
func (h *PostHandler) Delete(c *gin.Context) {
	postID := c.Param("id")

	currentUserID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != currentUserID {
		redirectToPost(c, post.ID)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// notFoundStatus maps feed resolution failures to 404, everything else to 500.
func notFoundStatus(c *gin.Context, err error) {
	if errors.Is(err, feed.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
}
