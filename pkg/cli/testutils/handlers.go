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
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/offcourse/offcourse/pkg/cli/models"
)

const accessTokenCookie = "access_token"

func readBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil
	}

	return b
}

func newBody(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}

func decodePath(enc string) (string, error) {
	b, err := base64.URLEncoding.DecodeString(enc)
	if err != nil {
		return "", err
	}

	return url.QueryUnescape(string(b))
}

func (b *Backend) getFileSystem(w http.ResponseWriter, r *http.Request) {
	path := ""
	if enc := mux.Vars(r)["path"]; enc != "" {
		p, err := decodePath(enc)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Failed to decode path")
			return
		}
		path = p
	}

	fs, ok := b.FileSystem[path]
	if !ok {
		respondError(w, http.StatusBadRequest, "Path does not exist")
		return
	}

	respondJSON(w, http.StatusOK, fs)
}

func (b *Backend) getCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	titles := queryList(q, "titles")
	tags := queryList(q, "tags")

	ret := []models.Course{}
	for _, c := range b.Courses {
		if len(titles) > 0 && !slices.ContainsFunc(titles, func(t string) bool { return strings.Contains(c.Title, t) }) {
			continue
		}

		if len(tags) > 0 && !slices.ContainsFunc(b.CourseTags[c.ID], func(ct models.CourseTag) bool { return slices.Contains(tags, ct.Tag) }) {
			continue
		}

		ret = append(ret, c)
	}

	respondJSON(w, http.StatusOK, paginate(r, ret))
}

func (b *Backend) getCourse(w http.ResponseWriter, r *http.Request) {
	i := b.findCourse(mux.Vars(r)["id"])
	if i < 0 {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	respondJSON(w, http.StatusOK, b.Courses[i])
}

func (b *Backend) createCourse(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title string `json:"title"`
		Path  string `json:"path"`
	}
	if err := decodePayload(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing data")
		return
	}

	if payload.Title == "" || payload.Path == "" {
		respondError(w, http.StatusBadRequest, "A title and path are required")
		return
	}

	for _, c := range b.Courses {
		if c.Path == payload.Path {
			respondError(w, http.StatusBadRequest, "A course with this path already exists")
			return
		}
	}

	c := models.Course{
		Base:      b.newBase(),
		Title:     payload.Title,
		Path:      payload.Path,
		Available: true,
	}
	b.Courses = append(b.Courses, c)

	respondJSON(w, http.StatusCreated, c)
}

func (b *Backend) updateCourse(w http.ResponseWriter, r *http.Request) {
	i := b.findCourse(mux.Vars(r)["id"])
	if i < 0 {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	var payload models.Course
	if err := decodePayload(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing data")
		return
	}

	c := b.Courses[i]
	c.Title = payload.Title
	c.UpdatedAt = b.now()
	b.Courses[i] = c

	respondJSON(w, http.StatusOK, c)
}

func (b *Backend) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	i := b.findCourse(id)
	if i < 0 {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	b.Courses = slices.Delete(b.Courses, i, i+1)
	delete(b.Assets, id)
	delete(b.CourseTags, id)
	delete(b.Scans, id)

	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) getCourseTags(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if b.findCourse(id) < 0 {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	ret := b.CourseTags[id]
	if ret == nil {
		ret = []models.CourseTag{}
	}

	respondJSON(w, http.StatusOK, ret)
}

func (b *Backend) createCourseTag(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if b.findCourse(id) < 0 {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	var payload struct {
		Tag string `json:"tag"`
	}
	if err := decodePayload(r, &payload); err != nil || payload.Tag == "" {
		respondError(w, http.StatusBadRequest, "A tag is required")
		return
	}

	for _, ct := range b.CourseTags[id] {
		if strings.EqualFold(ct.Tag, payload.Tag) {
			respondError(w, http.StatusBadRequest, "Duplicate course tag")
			return
		}
	}

	if b.findTag(payload.Tag, true, true) < 0 {
		b.addTag(payload.Tag)
	}

	ct := models.CourseTag{ID: uuid.NewString(), Tag: payload.Tag}
	b.CourseTags[id] = append(b.CourseTags[id], ct)

	respondJSON(w, http.StatusCreated, ct)
}

func (b *Backend) deleteCourseTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cts := b.CourseTags[vars["id"]]
	i := slices.IndexFunc(cts, func(ct models.CourseTag) bool { return ct.ID == vars["tagId"] })
	if i < 0 {
		respondError(w, http.StatusNotFound, "Course tag not found")
		return
	}

	b.CourseTags[vars["id"]] = slices.Delete(cts, i, i+1)

	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) getAssets(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if b.findCourse(id) < 0 {
		respondError(w, http.StatusNotFound, "Course not found")
		return
	}

	expand := queryBool(r.URL.Query(), "expand")

	ret := []models.Asset{}
	for _, a := range b.Assets[id] {
		if !expand {
			a.Attachments = nil
		}
		ret = append(ret, a)
	}

	respondJSON(w, http.StatusOK, paginate(r, ret))
}

func (b *Backend) updateAsset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload models.Asset
	if err := decodePayload(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing data")
		return
	}

	for courseID, assets := range b.Assets {
		for i, a := range assets {
			if a.ID != id {
				continue
			}

			a.VideoPos = payload.VideoPos
			if payload.Completed && !a.Completed {
				a.CompletedAt = b.now()
			} else if !payload.Completed {
				a.CompletedAt = ""
			}
			a.Completed = payload.Completed
			a.UpdatedAt = b.now()
			b.Assets[courseID][i] = a

			respondJSON(w, http.StatusOK, a)
			return
		}
	}

	respondError(w, http.StatusNotFound, "Asset not found")
}

func (b *Backend) getScan(w http.ResponseWriter, r *http.Request) {
	scan, ok := b.Scans[mux.Vars(r)["courseId"]]
	if !ok {
		respondError(w, http.StatusNotFound, "Scan not found")
		return
	}

	respondJSON(w, http.StatusOK, scan)
}

func (b *Backend) createScan(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CourseID string `json:"courseId"`
	}
	if err := decodePayload(r, &payload); err != nil || payload.CourseID == "" {
		respondError(w, http.StatusBadRequest, "A course ID is required")
		return
	}

	i := b.findCourse(payload.CourseID)
	if i < 0 {
		respondError(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	scan, ok := b.Scans[payload.CourseID]
	if !ok {
		scan = models.Scan{
			Base:     b.newBase(),
			CourseID: payload.CourseID,
			Status:   models.ScanStatusWaiting,
		}
		b.Scans[payload.CourseID] = scan
		b.Courses[i].ScanStatus = models.ScanStatusWaiting
	}

	respondJSON(w, http.StatusCreated, scan)
}

func (b *Backend) tagView(t models.Tag, expand bool) models.Tag {
	t.CourseCount = b.courseCount(t.Tag)
	t.Courses = nil

	if expand {
		t.Courses = []models.TagCourse{}
		for _, c := range b.Courses {
			if slices.ContainsFunc(b.CourseTags[c.ID], func(ct models.CourseTag) bool { return ct.Tag == t.Tag }) {
				t.Courses = append(t.Courses, models.TagCourse{ID: c.ID, Title: c.Title})
			}
		}
	}

	return t
}

func (b *Backend) getTags(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := strings.ToLower(q.Get("filter"))
	expand := queryBool(q, "expand")

	ret := []models.Tag{}
	for _, t := range b.Tags {
		if filter != "" && !strings.Contains(strings.ToLower(t.Tag), filter) {
			continue
		}

		ret = append(ret, b.tagView(t, expand))
	}

	respondJSON(w, http.StatusOK, paginate(r, ret))
}

func (b *Backend) getTag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	i := b.findTag(mux.Vars(r)["name"], queryBool(q, "byName"), queryBool(q, "insensitive"))
	if i < 0 {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	respondJSON(w, http.StatusOK, b.tagView(b.Tags[i], queryBool(q, "expand")))
}

func (b *Backend) createTag(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Tag string `json:"tag"`
	}
	if err := decodePayload(r, &payload); err != nil || payload.Tag == "" {
		respondError(w, http.StatusBadRequest, "A tag is required")
		return
	}

	if b.findTag(payload.Tag, true, true) >= 0 {
		respondError(w, http.StatusBadRequest, "Tag already exists")
		return
	}

	respondJSON(w, http.StatusCreated, b.tagView(b.addTag(payload.Tag), false))
}

func (b *Backend) updateTag(w http.ResponseWriter, r *http.Request) {
	i := b.findTag(mux.Vars(r)["name"], false, false)
	if i < 0 {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	var payload models.Tag
	if err := decodePayload(r, &payload); err != nil || payload.Tag == "" {
		respondError(w, http.StatusBadRequest, "A tag is required")
		return
	}

	old := b.Tags[i].Tag
	for courseID, cts := range b.CourseTags {
		for j := range cts {
			if cts[j].Tag == old {
				b.CourseTags[courseID][j].Tag = payload.Tag
			}
		}
	}

	b.Tags[i].Tag = payload.Tag
	b.Tags[i].UpdatedAt = b.now()

	respondJSON(w, http.StatusOK, b.tagView(b.Tags[i], false))
}

func (b *Backend) deleteTag(w http.ResponseWriter, r *http.Request) {
	i := b.findTag(mux.Vars(r)["name"], false, false)
	if i < 0 {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	name := b.Tags[i].Tag
	b.Tags = slices.Delete(b.Tags, i, i+1)

	for courseID, cts := range b.CourseTags {
		b.CourseTags[courseID] = slices.DeleteFunc(cts, func(ct models.CourseTag) bool { return ct.Tag == name })
	}

	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) getLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	levels := queryList(q, "levels")
	types := queryList(q, "types")
	messages := queryList(q, "messages")

	ret := []models.Log{}
	for _, l := range b.Logs {
		if len(levels) > 0 && !slices.Contains(levels, strconv.Itoa(int(l.Level))) {
			continue
		}

		if len(types) > 0 && !slices.Contains(types, fmt.Sprint(l.Data["type"])) {
			continue
		}

		if len(messages) > 0 && !slices.ContainsFunc(messages, func(m string) bool { return strings.Contains(l.Message, m) }) {
			continue
		}

		ret = append(ret, l)
	}

	respondJSON(w, http.StatusOK, paginate(r, ret))
}

func (b *Backend) getLogTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, b.LogTypes)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodePayload(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Error parsing data")
		return
	}

	if b.User == nil || payload.Username != b.User.Username || payload.Password != b.Password {
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, Value: b.Token, Path: "/"})
	respondJSON(w, http.StatusOK, map[string]string{"token": b.Token})
}

func (b *Backend) logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) getMe(w http.ResponseWriter, r *http.Request) {
	if b.User == nil {
		respondError(w, http.StatusForbidden, "Unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, b.User)
}

func (b *Backend) deleteMe(w http.ResponseWriter, r *http.Request) {
	if b.User == nil {
		respondError(w, http.StatusForbidden, "Unauthorized")
		return
	}

	b.User = nil
	b.Token = ""

	w.WriteHeader(http.StatusNoContent)
}
