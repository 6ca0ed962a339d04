package feed

import (
	"time"

	"blogicum/internal/models"
)

// AnonymousViewer is the viewer ID used for unauthenticated requests.
const AnonymousViewer = 0

// IsVisible reports whether a post may be shown to the given viewer.
// Authors always see their own posts, drafts and future-dated ones included.
// Everyone else sees a post only when the post itself is published, its
// category exists and is published, and its pub_date is not in the future.
// A post without a category is never publicly visible.
func IsVisible(post *models.Post, viewerID int, now time.Time) bool {
	if viewerID != AnonymousViewer && viewerID == post.AuthorID {
		return true
	}
	if !post.IsPublished {
		return false
	}
	if post.Category == nil || !post.Category.IsPublished {
		return false
	}
	return !post.PubDate.After(now)
}
