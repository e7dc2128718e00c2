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

package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/clock"
	"github.com/pkg/errors"
)

// timestampFormat is the layout the backend uses for timestamps
const timestampFormat = "2006-01-02 15:04:05"

// defaultPerPage is the page size used when a request does not specify one
const defaultPerPage = 30

// Request is a request received by the fake backend
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	ContentType string
	Accept      string
	UserAgent   string
	Token       string
	Body        []byte
}

type cannedResponse struct {
	status int
	body   string
}

// Route represents a single route of the fake backend
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	// Public routes are served without a session
	Public bool
}

// Backend is an in-memory Off Course API served over HTTP for tests. Its
// fields may be seeded directly before requests are made.
type Backend struct {
	mu     sync.Mutex
	Server *httptest.Server
	Clock  clock.Clock

	Courses    []models.Course
	Assets     map[string][]models.Asset
	CourseTags map[string][]models.CourseTag
	Tags       []models.Tag
	Scans      map[string]models.Scan
	Logs       []models.Log
	LogTypes   []string
	FileSystem map[string]models.FileSystem

	// User is returned by the identity check. A nil user makes it respond 403.
	User     *models.User
	Password string
	// Token, when set, must be sent as the access_token cookie
	Token string

	requests []Request
	canned   map[string]cannedResponse
}

// NewBackend starts a fake backend that is closed when the test ends
func NewBackend(t *testing.T) *Backend {
	b := &Backend{
		Clock:      clock.NewMock(),
		Assets:     map[string][]models.Asset{},
		CourseTags: map[string][]models.CourseTag{},
		Scans:      map[string]models.Scan{},
		FileSystem: map[string]models.FileSystem{},
		LogTypes:   []string{},
		canned:     map[string]cannedResponse{},
	}

	router := mux.NewRouter()
	for _, route := range b.routes() {
		router.Handle(route.Pattern, b.wrap(route)).Methods(route.Method)
	}

	b.Server = httptest.NewServer(router)
	t.Cleanup(b.Server.Close)

	return b
}

func (b *Backend) routes() []Route {
	return []Route{
		{"GET", "/api/filesystem", b.getFileSystem, false},
		{"GET", "/api/filesystem/{path}", b.getFileSystem, false},

		{"GET", "/api/courses", b.getCourses, false},
		{"POST", "/api/courses", b.createCourse, false},
		{"GET", "/api/courses/{id}", b.getCourse, false},
		{"PUT", "/api/courses/{id}", b.updateCourse, false},
		{"DELETE", "/api/courses/{id}", b.deleteCourse, false},
		{"GET", "/api/courses/{id}/tags", b.getCourseTags, false},
		{"POST", "/api/courses/{id}/tags/", b.createCourseTag, false},
		{"DELETE", "/api/courses/{id}/tags/{tagId}", b.deleteCourseTag, false},
		{"GET", "/api/courses/{id}/assets", b.getAssets, false},

		{"PUT", "/api/assets/{id}", b.updateAsset, false},

		{"GET", "/api/scans/{courseId}", b.getScan, false},
		{"POST", "/api/scans", b.createScan, false},

		{"GET", "/api/tags", b.getTags, false},
		{"POST", "/api/tags", b.createTag, false},
		{"GET", "/api/tags/{name}", b.getTag, false},
		{"PUT", "/api/tags/{name}", b.updateTag, false},
		{"DELETE", "/api/tags/{name}", b.deleteTag, false},

		{"GET", "/api/logs", b.getLogs, false},
		{"GET", "/api/logs/types", b.getLogTypes, false},

		{"POST", "/api/auth/login", b.login, true},
		{"POST", "/api/auth/logout", b.logout, false},
		{"GET", "/api/auth/me", b.getMe, false},
		{"DELETE", "/api/auth/me", b.deleteMe, false},
	}
}

// wrap records the request, serves canned responses and enforces the session
func (b *Backend) wrap(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := readBody(r)

		b.mu.Lock()
		req := Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.Query(),
			ContentType: r.Header.Get("Content-Type"),
			Accept:      r.Header.Get("Accept"),
			UserAgent:   r.Header.Get("User-Agent"),
			Body:        body,
		}
		if c, err := r.Cookie(accessTokenCookie); err == nil {
			req.Token = c.Value
		}
		b.requests = append(b.requests, req)

		canned, hasCanned := b.canned[cannedKey(r.Method, r.URL.Path)]
		unauthorized := !route.Public && b.Token != "" && req.Token != b.Token
		b.mu.Unlock()

		if hasCanned {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			fmt.Fprint(w, canned.body)
			return
		}

		if unauthorized {
			respondError(w, http.StatusForbidden, "Unauthorized")
			return
		}

		r.Body = newBody(body)

		b.mu.Lock()
		defer b.mu.Unlock()
		route.Handler(w, r)
	})
}

func cannedKey(method, path string) string {
	return method + " " + path
}

// Respond makes the backend answer method and path with the given status and
// raw JSON body instead of its normal behavior
func (b *Backend) Respond(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.canned[cannedKey(method, path)] = cannedResponse{status: status, body: body}
}

// Reset removes a canned response
func (b *Backend) Reset(method, path string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.canned, cannedKey(method, path))
}

// Requests returns the requests received so far
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.requests)
}

// LastRequest returns the most recent request. It fails the test if none was received.
func (b *Backend) LastRequest(t *testing.T) Request {
	reqs := b.Requests()
	if len(reqs) == 0 {
		t.Fatal("no request received")
	}

	return reqs[len(reqs)-1]
}

func (b *Backend) now() string {
	return b.Clock.Now().UTC().Format(timestampFormat)
}

func (b *Backend) newBase() models.Base {
	now := b.now()

	return models.Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SeedCourse adds a course and returns it
func (b *Backend) SeedCourse(title, path string) models.Course {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := models.Course{
		Base:      b.newBase(),
		Title:     title,
		Path:      path,
		Available: true,
	}
	b.Courses = append(b.Courses, c)

	return c
}

// SeedAsset adds an asset to a course and returns it
func (b *Backend) SeedAsset(courseID, title string, assetType models.AssetType) models.Asset {
	b.mu.Lock()
	defer b.mu.Unlock()

	assets := b.Assets[courseID]
	a := models.Asset{
		Base:      b.newBase(),
		CourseID:  courseID,
		Title:     title,
		Prefix:    len(assets) + 1,
		Chapter:   "01 Chapter 1",
		Path:      fmt.Sprintf("/courses/%s/%02d %s", courseID, len(assets)+1, title),
		AssetType: assetType,
	}
	b.Assets[courseID] = append(assets, a)

	return a
}

// SeedTag adds a tag and returns it
func (b *Backend) SeedTag(tag string) models.Tag {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.addTag(tag)
}

// SeedLog adds a log entry and returns it
func (b *Backend) SeedLog(level models.LogLevel, message, logType string) models.Log {
	b.mu.Lock()
	defer b.mu.Unlock()

	l := models.Log{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		Data:      map[string]interface{}{"type": logType},
		CreatedAt: b.now(),
	}
	b.Logs = append(b.Logs, l)

	if !slices.Contains(b.LogTypes, logType) {
		b.LogTypes = append(b.LogTypes, logType)
	}

	return l
}

// SeedUser sets the user returned by the identity check along with the
// credentials and session token accepted by the backend
func (b *Backend) SeedUser(username, password string, role models.UserRole) models.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	u := models.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: strings.ToUpper(username[:1]) + username[1:],
		Role:        role,
	}
	b.User = &u
	b.Password = password
	b.Token = uuid.NewString()

	return u
}

func (b *Backend) addTag(tag string) models.Tag {
	t := models.Tag{
		Base: b.newBase(),
		Tag:  tag,
	}
	b.Tags = append(b.Tags, t)

	return t
}

func (b *Backend) findCourse(id string) int {
	return slices.IndexFunc(b.Courses, func(c models.Course) bool { return c.ID == id })
}

func (b *Backend) findTag(idOrName string, byName, insensitive bool) int {
	return slices.IndexFunc(b.Tags, func(t models.Tag) bool {
		if !byName {
			return t.ID == idOrName
		}
		if insensitive {
			return strings.EqualFold(t.Tag, idOrName)
		}
		return t.Tag == idOrName
	})
}

func (b *Backend) courseCount(tag string) int {
	n := 0
	for _, cts := range b.CourseTags {
		for _, ct := range cts {
			if ct.Tag == tag {
				n++
			}
		}
	}

	return n
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(errors.Wrap(err, "encoding response"))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func decodePayload(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func queryBool(q url.Values, key string) bool {
	v, _ := strconv.ParseBool(q.Get(key))
	return v
}

func queryList(q url.Values, key string) []string {
	v := q.Get(key)
	if v == "" {
		return nil
	}

	return strings.Split(v, ",")
}

// paginate returns one page of items in the envelope shape the API uses
func paginate[T any](r *http.Request, items []T) map[string]interface{} {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(q.Get("perPage"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)

	return map[string]interface{}{
		"page":       page,
		"perPage":    perPage,
		"totalItems": total,
		"totalPages": totalPages,
		"items":      items[start:end],
	}
}
