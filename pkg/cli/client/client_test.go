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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/testutils"
	"github.com/pkg/errors"
)

func TestRequestHeaders(t *testing.T) {
	b := testutils.NewBackend(t)
	user := b.SeedUser("amy", "pw", models.UserRoleUser)
	ctx := testutils.NewCtx(t, b)
	testutils.Login(t, &ctx, b.Token)

	me, err := GetMe(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, me.ID, user.ID, "user mismatch")

	req := b.LastRequest(t)

	assert.Equal(t, req.Method, http.MethodGet, "method mismatch")
	assert.Equal(t, req.Path, "/api/auth/me", "path mismatch")
	assert.Equal(t, req.Accept, "application/json", "accept mismatch")
	assert.Equal(t, req.UserAgent, "offcourse/test", "user agent mismatch")
	assert.Equal(t, req.Token, b.Token, "token mismatch")
	assert.Equal(t, req.ContentType, "", "GET should not send a content type")

	if _, err := AddTag(ctx, "Go"); err != nil {
		t.Fatal(err)
	}
	req = b.LastRequest(t)

	assert.Equal(t, req.Method, http.MethodPost, "method mismatch")
	assert.Equal(t, req.ContentType, "application/json", "content type mismatch")
	assert.Equal(t, string(req.Body), `{"tag":"Go"}`, "body mismatch")
}

func TestHTTPError(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	t.Run("json message", func(t *testing.T) {
		_, err := GetCourse(ctx, "missing")

		var herr *HTTPError
		if !errors.As(err, &herr) {
			t.Fatalf("expected an HTTPError, got %v", err)
		}

		assert.Equal(t, herr.StatusCode, http.StatusNotFound, "status mismatch")
		assert.Equal(t, herr.Message, "Course not found", "message mismatch")
		assert.Equal(t, herr.IsNotFound(), true, "IsNotFound mismatch")
		assert.Equal(t, StatusCode(err), http.StatusNotFound, "StatusCode mismatch")
		assert.Equal(t, IsTransport(err), false, "IsTransport mismatch")
		assert.Equal(t, strings.HasPrefix(err.Error(), "failed to retrieve course: "), true, "error should name the operation")
	})

	t.Run("raw body", func(t *testing.T) {
		b.Respond(http.MethodGet, "/api/logs/types", http.StatusInternalServerError, "database is locked\n")
		defer b.Reset(http.MethodGet, "/api/logs/types")

		_, err := GetLogTypes(ctx)

		var herr *HTTPError
		if !errors.As(err, &herr) {
			t.Fatalf("expected an HTTPError, got %v", err)
		}
		assert.Equal(t, herr.Message, "database is locked", "message mismatch")
	})
}

func TestTransportError(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	closed := httptest.NewServer(http.NotFoundHandler())
	ctx.Backend.Origin = closed.URL
	closed.Close()

	_, err := GetCourses(ctx, nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	assert.Equal(t, IsTransport(err), true, "IsTransport mismatch")
	assert.Equal(t, StatusCode(err), 0, "StatusCode mismatch")
	assert.Equal(t, strings.HasPrefix(err.Error(), "failed to retrieve courses: "), true, "error should name the operation")
}

func TestContentTypeMismatch(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer s.Close()

	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)
	ctx.Backend.Origin = s.URL

	_, err := GetLogTypes(ctx)
	assert.Equal(t, errors.Is(err, ErrContentTypeMismatch), true, "error mismatch")
}

func TestValidationFailure(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	b.Respond(http.MethodGet, "/api/courses/c1", http.StatusOK,
		`{"title":"x","path":"/x","hasCard":false,"available":true,"scanStatus":"","started":false,"startedAt":"","percent":0,"completedAt":"","progressUpdatedAt":"","createdAt":"","updatedAt":""}`)

	got, err := GetCourse(ctx, "c1")

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	assert.Equal(t, verr.Field, "id", "field mismatch")
	assert.DeepEqual(t, got, models.Course{}, "partial course returned")
	assert.Equal(t, StatusCode(err), 0, "StatusCode mismatch")
}

func TestInvalidPageItem(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	b.Respond(http.MethodGet, "/api/tags", http.StatusOK,
		`{"page":1,"perPage":10,"totalItems":1,"totalPages":1,"items":[{"id":"t1","tag":"Go","courseCount":"one","createdAt":"","updatedAt":""}]}`)

	_, err := GetTags(ctx, nil)

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	assert.Equal(t, verr.Field, "items[0].courseCount", "field mismatch")
}

func TestPreconditions(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	testCases := []struct {
		name string
		call func() error
	}{
		{"GetCourse", func() error { _, err := GetCourse(ctx, ""); return err }},
		{"UpdateCourse", func() error { _, err := UpdateCourse(ctx, models.Course{}); return err }},
		{"DeleteCourse", func() error { _, err := DeleteCourse(ctx, ""); return err }},
		{"GetCourseTags", func() error { _, err := GetCourseTags(ctx, ""); return err }},
		{"AddCourseTag", func() error { _, err := AddCourseTag(ctx, "", "Go"); return err }},
		{"DeleteCourseTag", func() error { _, err := DeleteCourseTag(ctx, "c1", ""); return err }},
		{"GetCourseAssets", func() error { _, err := GetCourseAssets(ctx, "", nil); return err }},
		{"UpdateAsset", func() error { _, err := UpdateAsset(ctx, models.Asset{}); return err }},
		{"GetScan", func() error { _, err := GetScan(ctx, ""); return err }},
		{"AddScan", func() error { _, err := AddScan(ctx, ""); return err }},
		{"GetTag", func() error { _, err := GetTag(ctx, "", nil); return err }},
		{"UpdateTag", func() error { _, err := UpdateTag(ctx, models.Tag{}); return err }},
		{"DeleteTag", func() error { _, err := DeleteTag(ctx, ""); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			assert.Equal(t, errors.Is(err, ErrMissingID), true, "error mismatch")
		})
	}

	assert.Equal(t, len(b.Requests()), 0, "requests were made")
}
