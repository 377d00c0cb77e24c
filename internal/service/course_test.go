package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/courses/internal/errs"
	"github.com/deppfellow/courses/internal/model"
	"github.com/deppfellow/courses/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService() *CourseService {
	return NewCourseService(nil, repository.NewCourseRepository(nil, repository.DefaultSeed()))
}

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestCourseService_CreateValid(t *testing.T) {
	svc := newSeededService()

	course, err := svc.Create("course4")
	require.NoError(t, err)

	assert.Equal(t, model.Course{ID: 4, Name: "course4"}, course)
	assert.Len(t, svc.List(), 4)
}

func TestCourseService_CreateTooShort(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Create("ab")

	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "name must be at least 3 characters", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "name", Error: "must be at least 3 characters"}, httpErr.Errors[0])
	assert.Len(t, svc.List(), 3)
}

func TestCourseService_CreateMissingName(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Create("")

	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "name is required", httpErr.Message)
	assert.Len(t, svc.List(), 3)
}

func TestCourseService_CreateDoesNotTrim(t *testing.T) {
	svc := newSeededService()

	// Three spaces are three characters.
	course, err := svc.Create("   ")
	require.NoError(t, err)
	assert.Equal(t, "   ", course.Name)

	// Length is counted in UTF-16 code units, not bytes or runes.
	_, err = svc.Create("éé")
	requireHTTPError(t, err, http.StatusBadRequest)

	course, err = svc.Create("😀a")
	require.NoError(t, err)
	assert.Equal(t, "😀a", course.Name)
}

func TestCourseService_GetAfterCreateRoundTrips(t *testing.T) {
	svc := newSeededService()

	for _, name := range []string{"abc", "Distributed Systems", strings.Repeat("x", 200)} {
		created, err := svc.Create(name)
		require.NoError(t, err)

		got, err := svc.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	}
}

func TestCourseService_GetExisting(t *testing.T) {
	svc := newSeededService()

	course, err := svc.Get(2)
	require.NoError(t, err)
	assert.Equal(t, model.Course{ID: 2, Name: "course2"}, course)
}

func TestCourseService_GetMissing(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Get(99)

	httpErr := requireHTTPError(t, err, http.StatusNotFound)
	assert.Equal(t, CourseNotFoundMessage, httpErr.Message)
	assert.Equal(t, "The course with the given ID was not found", httpErr.Message)
}

func TestCourseService_Update(t *testing.T) {
	svc := newSeededService()

	course, err := svc.Update(&model.UpdateCourseRequest{ID: "1", Name: "updated1"})
	require.NoError(t, err)
	assert.Equal(t, model.Course{ID: 1, Name: "updated1"}, course)

	got, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, course, got)

	assert.Equal(t, []model.Course{
		{ID: 1, Name: "updated1"},
		{ID: 2, Name: "course2"},
		{ID: 3, Name: "course3"},
	}, svc.List())
}

func TestCourseService_UpdateMissingWinsOverBadName(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Update(&model.UpdateCourseRequest{ID: "99", Name: "ab"})

	requireHTTPError(t, err, http.StatusNotFound)
	assert.Equal(t, repository.DefaultSeed(), svc.List())
}

func TestCourseService_UpdateBadName(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Update(&model.UpdateCourseRequest{ID: "1", Name: "ab"})

	requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, repository.DefaultSeed(), svc.List())
}

func decodedUpdate(t *testing.T, id, body string) *model.UpdateCourseRequest {
	t.Helper()

	req := &model.UpdateCourseRequest{ID: id}
	require.NoError(t, json.Unmarshal([]byte(body), req))
	return req
}

func TestCourseService_UpdateBadBody(t *testing.T) {
	cases := map[string]string{
		`{"name":"updated1","foo":1}`: `"foo" is not allowed`,
		`{"name":123}`:                "Unmarshal type error",
		`["updated1"]`:                "Unmarshal type error",
	}

	for body, want := range cases {
		t.Run(body, func(t *testing.T) {
			svc := newSeededService()

			_, err := svc.Update(decodedUpdate(t, "1", body))
			httpErr := requireHTTPError(t, err, http.StatusBadRequest)
			assert.Contains(t, httpErr.Message, want)
			assert.Equal(t, repository.DefaultSeed(), svc.List())

			// A missing course is still reported first.
			_, err = svc.Update(decodedUpdate(t, "99", body))
			requireHTTPError(t, err, http.StatusNotFound)
		})
	}
}

func TestCourseService_UpdateDecodedBody(t *testing.T) {
	svc := newSeededService()

	course, err := svc.Update(decodedUpdate(t, "2", `{"name":"updated2"}`))
	require.NoError(t, err)
	assert.Equal(t, model.Course{ID: 2, Name: "updated2"}, course)
}

func TestCourseService_Delete(t *testing.T) {
	svc := newSeededService()

	course, err := svc.Delete(3)
	require.NoError(t, err)
	assert.Equal(t, model.Course{ID: 3, Name: "course3"}, course)

	_, err = svc.Get(3)
	requireHTTPError(t, err, http.StatusNotFound)
	assert.Len(t, svc.List(), 2)
}

func TestCourseService_DeleteMissing(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Delete(99)

	requireHTTPError(t, err, http.StatusNotFound)
	assert.Equal(t, 3, svc.Count())
}
