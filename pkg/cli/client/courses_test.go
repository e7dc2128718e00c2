/* Copyright 2025 Off Course Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package client

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/testutils"
	"github.com/pkg/errors"
)

func TestGetCourses(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	c1 := b.SeedCourse("A", "/courses/a")
	c2 := b.SeedCourse("B", "/courses/b")
	c3 := b.SeedCourse("C", "/courses/c")

	t.Run("single page", func(t *testing.T) {
		got, err := GetCourses(ctx, &CoursesParams{PageParams: PageParams{Page: 1, PerPage: 2}})
		if err != nil {
			t.Fatal(err)
		}

		expected := models.Page[models.Course]{
			Page:       1,
			PerPage:    2,
			TotalItems: 3,
			TotalPages: 2,
			Items:      []models.Course{c1, c2},
		}
		assert.DeepEqual(t, got, expected, "page mismatch")
	})

	t.Run("all pages", func(t *testing.T) {
		before := len(b.Requests())

		got, err := GetAllCourses(ctx, nil)
		if err != nil {
			t.Fatal(err)
		}

		assert.DeepEqual(t, got, []models.Course{c1, c2, c3}, "courses mismatch")

		reqs := b.Requests()[before:]
		assert.Equal(t, len(reqs), 1, "request count mismatch")
		assert.Equal(t, reqs[0].Query.Get("page"), "1", "page mismatch")
		assert.Equal(t, reqs[0].Query.Get("perPage"), "100", "perPage mismatch")
	})

	t.Run("filters", func(t *testing.T) {
		if _, err := GetCourses(ctx, &CoursesParams{Titles: []string{"A", "C"}, Progress: models.CourseProgressStarted}); err != nil {
			t.Fatal(err)
		}

		req := b.LastRequest(t)
		assert.Equal(t, req.Query.Get("titles"), "A,C", "titles mismatch")
		assert.Equal(t, req.Query.Get("progress"), "Started", "progress mismatch")
		assert.Equal(t, req.Query.Has("page"), false, "zero page should be omitted")
	})
}

func TestGetAllCoursesMultiplePages(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	var expected []models.Course
	for i := 0; i < 205; i++ {
		expected = append(expected, b.SeedCourse(fmt.Sprintf("course %d", i), fmt.Sprintf("/courses/%03d", i)))
	}

	got, err := GetAllCourses(ctx, &CoursesParams{OrderBy: "title asc"})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, len(got), 205, "count mismatch")
	assert.DeepEqual(t, got, expected, "order mismatch")

	reqs := b.Requests()
	assert.Equal(t, len(reqs), 3, "request count mismatch")
	for i, req := range reqs {
		assert.Equal(t, req.Query.Get("orderBy"), "title asc", "orderBy mismatch")
		assert.Equal(t, req.Query.Get("page"), []string{"1", "2", "3"}[i], "page mismatch")
	}
}

func TestGetAllCoursesEmpty(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	got, err := GetAllCourses(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, len(got), 0, "count mismatch")
	assert.Equal(t, len(b.Requests()), 1, "request count mismatch")
}

func TestGetAllCoursesError(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	b.Respond(http.MethodGet, "/api/courses", http.StatusInternalServerError, `{"message":"boom"}`)

	got, err := GetAllCourses(ctx, nil)
	if got != nil {
		t.Fatalf("expected no partial result, got %d courses", len(got))
	}
	assert.Equal(t, StatusCode(err), http.StatusInternalServerError, "status mismatch")
}

func TestCourseRoundTrip(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	created, err := AddCourse(ctx, "Go Basics", "/courses/go")
	if err != nil {
		t.Fatal(err)
	}

	req := b.LastRequest(t)
	assert.Equal(t, string(req.Body), `{"title":"Go Basics","path":"/courses/go"}`, "body mismatch")

	got, err := GetCourse(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, got, created, "course mismatch")

	got.Title = "Go Advanced"
	updated, err := UpdateCourse(ctx, got)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, updated.Title, "Go Advanced", "title mismatch")
	assert.Equal(t, updated.ID, created.ID, "id mismatch")

	ok, err := DeleteCourse(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, ok, true, "delete result mismatch")

	_, err = GetCourse(ctx, created.ID)
	assert.Equal(t, StatusCode(err), http.StatusNotFound, "status mismatch")
}

func TestAddCourseDuplicate(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)
	b.SeedCourse("Go", "/courses/go")

	_, err := AddCourse(ctx, "Go again", "/courses/go")

	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("expected an HTTPError, got %v", err)
	}
	assert.Equal(t, herr.StatusCode, http.StatusBadRequest, "status mismatch")
	assert.Equal(t, herr.Message, "A course with this path already exists", "message mismatch")
}

func TestDeleteCourseFailure(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	ok, err := DeleteCourse(ctx, "missing")
	assert.Equal(t, ok, false, "delete result mismatch")
	assert.Equal(t, StatusCode(err), http.StatusNotFound, "status mismatch")
}

func TestCourseIDFromParams(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)
	c := b.SeedCourse("Go", "/courses/go")

	got, err := GetCourseFromParams(ctx, url.Values{"id": []string{c.ID}})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, got.ID, c.ID, "id mismatch")

	_, err = CourseIDFromParams(url.Values{})
	assert.Equal(t, errors.Is(err, ErrMissingID), true, "error mismatch")

	_, err = GetCourseFromParams(ctx, url.Values{"id": []string{" "}})
	assert.Equal(t, errors.Is(err, ErrMissingID), true, "blank id mismatch")
}
