package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	page := Paginate(sequence(15), 1, 10)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, int64(15), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginateLastPage(t *testing.T) {
	page := Paginate(sequence(15), 2, 10)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, []int{11, 12, 13, 14, 15}, page.Items)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestPaginateClampsBelowRange(t *testing.T) {
	for _, number := range []int{0, -1, -100} {
		page := Paginate(sequence(15), number, 10)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Items, 10)
	}
}

func TestPaginateClampsBeyondRange(t *testing.T) {
	page := Paginate(sequence(15), 99, 10)

	assert.Equal(t, 2, page.Number)
	assert.Len(t, page.Items, 5)
	assert.False(t, page.HasNext)
}

func TestPaginateEmptySequence(t *testing.T) {
	page := Paginate([]int{}, 3, 10)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(sequence(20), 2, 10)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestPaginateDeterministic(t *testing.T) {
	items := sequence(37)

	first := Paginate(items, 3, 10)
	second := Paginate(items, 3, 10)

	assert.Equal(t, first, second)
}

func TestPaginateDefaultsBadSize(t *testing.T) {
	page := Paginate(sequence(15), 1, 0)

	assert.Len(t, page.Items, DefaultPageSize)
}
