package repository

import (
	"sync"
	"testing"

	"github.com/deppfellow/courses/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepository() *CourseRepository {
	return NewCourseRepository(nil, DefaultSeed())
}

func TestCourseRepository_ListReturnsSeedInOrder(t *testing.T) {
	repo := newSeededRepository()

	assert.Equal(t, DefaultSeed(), repo.List())
	assert.Equal(t, 3, repo.Count())
}

func TestCourseRepository_ListReturnsCopy(t *testing.T) {
	repo := newSeededRepository()

	list := repo.List()
	list[0].Name = "mutated"

	course, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "course1", course.Name)
}

func TestCourseRepository_EmptyListIsNotNil(t *testing.T) {
	repo := NewCourseRepository(nil, nil)

	list := repo.List()
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCourseRepository_InsertAssignsNextID(t *testing.T) {
	repo := newSeededRepository()

	course := repo.Insert("course4")

	assert.Equal(t, model.Course{ID: 4, Name: "course4"}, course)
	assert.Equal(t, 4, repo.Count())
}

func TestCourseRepository_InsertOnEmptyStartsAtOne(t *testing.T) {
	repo := NewCourseRepository(nil, nil)

	assert.Equal(t, 1, repo.Insert("first").ID)
	assert.Equal(t, 2, repo.Insert("second").ID)
}

func TestCourseRepository_IDsAreNotReusedAfterDelete(t *testing.T) {
	repo := newSeededRepository()

	_, err := repo.Delete(2)
	require.NoError(t, err)
	_, err = repo.Delete(3)
	require.NoError(t, err)

	// count+1 would hand out 2 and 3 again; the counter must not.
	a := repo.Insert("again-a")
	b := repo.Insert("again-b")

	assert.Equal(t, 4, a.ID)
	assert.Equal(t, 5, b.ID)

	seen := map[int]bool{}
	for _, c := range repo.List() {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}

func TestCourseRepository_FindByIDMissing(t *testing.T) {
	repo := newSeededRepository()

	_, err := repo.FindByID(99)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseRepository_UpdateNameOnlyTouchesTarget(t *testing.T) {
	repo := newSeededRepository()

	updated, err := repo.UpdateName(1, "updated1")
	require.NoError(t, err)
	assert.Equal(t, model.Course{ID: 1, Name: "updated1"}, updated)

	assert.Equal(t, []model.Course{
		{ID: 1, Name: "updated1"},
		{ID: 2, Name: "course2"},
		{ID: 3, Name: "course3"},
	}, repo.List())
}

func TestCourseRepository_UpdateNameMissing(t *testing.T) {
	repo := newSeededRepository()

	_, err := repo.UpdateName(42, "whatever")
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.Equal(t, DefaultSeed(), repo.List())
}

func TestCourseRepository_DeletePreservesOrder(t *testing.T) {
	repo := newSeededRepository()

	removed, err := repo.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, model.Course{ID: 2, Name: "course2"}, removed)

	assert.Equal(t, []model.Course{
		{ID: 1, Name: "course1"},
		{ID: 3, Name: "course3"},
	}, repo.List())
}

func TestCourseRepository_DeleteMissing(t *testing.T) {
	repo := newSeededRepository()

	_, err := repo.Delete(0)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.Equal(t, 3, repo.Count())
}

func TestCourseRepository_SeedIsCopied(t *testing.T) {
	seed := DefaultSeed()
	repo := NewCourseRepository(nil, seed)

	seed[0].Name = "changed outside"

	course, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "course1", course.Name)
}

func TestCourseRepository_ConcurrentInserts(t *testing.T) {
	repo := NewCourseRepository(nil, nil)

	const workers = 50
	var wg sync.WaitGroup
	ids := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.Insert("concurrent").ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, workers, repo.Count())
}
