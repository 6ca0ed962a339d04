package feed

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blogicum/internal/models"
)

// ErrNotFound is returned when a scope points at a missing user or at a
// category that does not exist or is unpublished. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// Scope selects which posts a listing covers: everything, one category, or
// one author.
type Scope struct {
	categorySlug string
	username     string
}

func All() Scope                     { return Scope{} }
func ByCategory(slug string) Scope   { return Scope{categorySlug: slug} }
func ByAuthor(username string) Scope { return Scope{username: username} }

// Result is a resolved listing: the page of posts plus the category or author
// the scope resolved to, when it had one.
type Result struct {
	Page     Page[models.Post]
	Category *models.Category
	Author   *models.User
}

const commentCountSelect = "posts.*, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// visibleQuery narrows posts to what the public may see: published post,
// published category, pub_date not in the future. The inner join drops
// uncategorized posts.
func visibleQuery(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&models.Post{}).
		Joins("JOIN categories ON categories.id = posts.category_id AND categories.is_published = ?", true).
		Where("posts.is_published = ? AND posts.pub_date <= ?", true, now)
}

// ListPosts resolves the scope, applies the visibility filter, annotates each
// post with its comment count and returns the requested page ordered by
// pub_date descending (id ascending on ties).
//
// The one exception to the visibility filter: an author browsing their own
// profile sees all of their posts, drafts and future-dated ones included.
func ListPosts(db *gorm.DB, scope Scope, viewerID int, now time.Time, pageNumber int) (*Result, error) {
	result := &Result{}
	q := visibleQuery(db, now)

	switch {
	case scope.categorySlug != "":
		var category models.Category
		err := db.Where("slug = ? AND is_published = ?", scope.categorySlug, true).
			First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %q: %w", scope.categorySlug, ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("resolving category: %w", err)
		}
		result.Category = &category
		q = q.Where("posts.category_id = ?", category.ID)

	case scope.username != "":
		var author models.User
		err := db.Where("username = ?", scope.username).First(&author).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", scope.username, ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("resolving user: %w", err)
		}
		result.Author = &author
		if viewerID != AnonymousViewer && viewerID == author.ID {
			// Self-profile: no visibility filtering.
			q = db.Model(&models.Post{}).Where("posts.author_id = ?", author.ID)
		} else {
			q = q.Where("posts.author_id = ?", author.ID)
		}
	}

	// The chain is executed twice, once to count and once to fetch.
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting posts: %w", err)
	}

	number := clampPage(pageNumber, totalPages(total, DefaultPageSize))

	var posts []models.Post
	err := q.Select(commentCountSelect).
		Order("posts.pub_date DESC, posts.id ASC").
		Offset((number - 1) * DefaultPageSize).
		Limit(DefaultPageSize).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	result.Page = newPage(posts, number, total, DefaultPageSize)
	return result, nil
}
