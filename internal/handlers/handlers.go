package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogicum/internal/feed"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Post     *PostHandler
	Comment  *CommentHandler
	Profile  *ProfileHandler
	Category *CategoryHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(db),
		Post:     NewPostHandler(db),
		Comment:  NewCommentHandler(db),
		Profile:  NewProfileHandler(db),
		Category: NewCategoryHandler(db),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// viewerID returns the authenticated user's ID, or feed.AnonymousViewer when
// the request carries no identity.
func viewerID(c *gin.Context) int {
	id, ok := extractUserID(c)
	if !ok {
		return feed.AnonymousViewer
	}
	return id
}

// pageNumber reads the ?page query parameter, defaulting to 1 on anything
// that is not an integer. Out-of-range values are clamped by the paginator.
func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// redirectToPost is the soft-denial response: an unauthorized edit or delete
// sends the caller to the post's detail view instead of a 403.
func redirectToPost(c *gin.Context, postID int) {
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/posts/%d", postID))
}
