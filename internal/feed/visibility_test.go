package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogicum/internal/models"
)

func publishedCategory() *models.Category {
	return &models.Category{ID: 1, Title: "Travel", Slug: "travel", IsPublished: true}
}

func visiblePost(authorID int, now time.Time) *models.Post {
	return &models.Post{
		ID:          1,
		AuthorID:    authorID,
		IsPublished: true,
		Category:    publishedCategory(),
		PubDate:     now.Add(-time.Hour),
	}
}

func TestIsVisiblePublicPost(t *testing.T) {
	now := time.Now().UTC()
	post := visiblePost(7, now)

	assert.True(t, IsVisible(post, AnonymousViewer, now))
	assert.True(t, IsVisible(post, 42, now))
}

func TestAuthorAlwaysSeesOwnPost(t *testing.T) {
	now := time.Now().UTC()

	draft := visiblePost(7, now)
	draft.IsPublished = false
	assert.True(t, IsVisible(draft, 7, now))

	future := visiblePost(7, now)
	future.PubDate = now.Add(24 * time.Hour)
	assert.True(t, IsVisible(future, 7, now))

	uncategorized := visiblePost(7, now)
	uncategorized.Category = nil
	assert.True(t, IsVisible(uncategorized, 7, now))
}

func TestDraftHiddenFromOthers(t *testing.T) {
	now := time.Now().UTC()
	post := visiblePost(7, now)
	post.IsPublished = false

	assert.False(t, IsVisible(post, AnonymousViewer, now))
	assert.False(t, IsVisible(post, 42, now))
}

func TestFuturePostHiddenFromOthers(t *testing.T) {
	now := time.Now().UTC()
	post := visiblePost(7, now)
	post.PubDate = now.Add(24 * time.Hour)

	assert.False(t, IsVisible(post, 42, now))
}

func TestPubDateBoundaryIsInclusive(t *testing.T) {
	now := time.Now().UTC()
	post := visiblePost(7, now)
	post.PubDate = now

	assert.True(t, IsVisible(post, 42, now))
}

func TestUnpublishedCategoryHidesPost(t *testing.T) {
	now := time.Now().UTC()
	post := visiblePost(7, now)
	post.Category.IsPublished = false

	assert.False(t, IsVisible(post, 42, now))
}

func TestUncategorizedPostNotPublic(t *testing.T) {
	now := time.Now().UTC()
	post := visiblePost(7, now)
	post.Category = nil

	assert.False(t, IsVisible(post, AnonymousViewer, now))
	assert.False(t, IsVisible(post, 42, now))
}
