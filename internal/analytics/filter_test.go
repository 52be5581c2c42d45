package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/learnlog/internal/models"
)

func sampleTable() Table {
	sessions := []models.Session{
		session(time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC), 30, "video", "Go Course", "Ann", "python;sql"),
		session(time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC), 60, "book", "SQL Book", "Bob", "sql"),
		session(time.Date(2026, 10, 4, 9, 0, 0, 0, time.UTC), 15, "video", "Go Course", "Ann", "golang"),
	}
	return Normalize(sessions, day(2026, 10, 1), day(2026, 10, 5))
}

func TestFilter_DefaultCriteriaIsNoOp(t *testing.T) {
	table := sampleTable()
	minDate, today := day(2026, 10, 1), day(2026, 10, 5)

	filtered := Filter(table, DefaultCriteria(table, minDate, today))

	assert.Equal(t, InRange(table, minDate, today), filtered)
	assert.Len(t, filtered, len(table))
}

func TestFilter_TagMembershipMatchesAnySelectedTag(t *testing.T) {
	table := sampleTable()
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 5))

	c.Tags = NewSet("sql")
	filtered := Filter(table, c)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "python;sql", filtered[0].Tags)

	c.Tags = NewSet("go")
	assert.Empty(t, Filter(table, c))
}

func TestFilter_TagIsNotSubstringMatched(t *testing.T) {
	table := sampleTable()
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 5))
	c.Tags = NewSet("golang")

	filtered := Filter(table, c)

	assert.Len(t, filtered, 1)
	assert.Equal(t, day(2026, 10, 4), filtered[0].Date)
}

func TestFilter_EmptyTagFieldMatchesOnlyEmptyTag(t *testing.T) {
	table := Normalize([]models.Session{
		session(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC), 30, "video", "Go", "Ann", ""),
	}, day(2026, 10, 1), day(2026, 10, 1))
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 1))

	c.Tags = NewSet("go", NullMarker)
	assert.Empty(t, Filter(table, c))

	c.Tags = NewSet("")
	assert.Len(t, Filter(table, c), 1)
}

func TestFilter_CombinesPredicatesWithAnd(t *testing.T) {
	table := sampleTable()
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 5))
	c.Media = NewSet("video")
	c.Teachers = NewSet("Ann", "Bob")
	c.Tags = NewSet("sql", "golang")
	c.StartDate = day(2026, 10, 3)

	filtered := Filter(table, c)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "golang", filtered[0].Tags)
}

func TestFilter_ReversedRangeIsEmpty(t *testing.T) {
	table := sampleTable()
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 5))
	c.StartDate, c.EndDate = day(2026, 10, 4), day(2026, 10, 2)

	assert.Empty(t, Filter(table, c))
}

func TestFilter_EmptySelectionMatchesNothing(t *testing.T) {
	table := sampleTable()
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 5))
	c.Media = NewSet()

	assert.Empty(t, Filter(table, c))
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	table := sampleTable()
	before := append(Table(nil), table...)
	c := DefaultCriteria(table, day(2026, 10, 1), day(2026, 10, 5))
	c.Media = NewSet("book")

	Filter(table, c)

	assert.Equal(t, before, table)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"python", "sql"}, SplitTags("python;sql"))
	assert.Equal(t, []string{""}, SplitTags(""))
}
