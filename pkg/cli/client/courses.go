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
	"net/url"
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/pagination"
	"github.com/pkg/errors"
)

// GetCourses gets a page of courses. Use GetAllCourses to get every course.
func GetCourses(ctx context.OffCourseCtx, params *CoursesParams) (models.Page[models.Course], error) {
	ret, err := getPage(ctx, CourseAPI, params.Query(), models.CourseDecoder)
	if err != nil {
		return models.Page[models.Course]{}, errors.Wrap(err, "failed to retrieve courses")
	}

	return ret, nil
}

// GetAllCourses gets every course matching params by walking the pages
func GetAllCourses(ctx context.OffCourseCtx, params *CoursesParams) ([]models.Course, error) {
	var p CoursesParams
	if params != nil {
		p = *params
	}

	ret, err := pagination.Collect(func(page, perPage int) (models.Page[models.Course], error) {
		p.Page = page
		p.PerPage = perPage
		return GetCourses(ctx, &p)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch all courses")
	}

	return ret, nil
}

// GetCourse gets a course by id
func GetCourse(ctx context.OffCourseCtx, id string) (models.Course, error) {
	if id == "" {
		return models.Course{}, errors.Wrap(ErrMissingID, "failed to retrieve course")
	}

	ret, err := getJSON(ctx, resourcePath(CourseAPI, id), nil, models.CourseDecoder)
	if err != nil {
		return models.Course{}, errors.Wrap(err, "failed to retrieve course")
	}

	return ret, nil
}

// CourseIDFromParams returns the course id carried by the query parameters
func CourseIDFromParams(params url.Values) (string, error) {
	id := strings.TrimSpace(params.Get("id"))
	if id == "" {
		return "", errors.Wrap(ErrMissingID, "missing course id")
	}

	return id, nil
}

// GetCourseFromParams gets the course whose id is carried by the query parameters
func GetCourseFromParams(ctx context.OffCourseCtx, params url.Values) (models.Course, error) {
	id, err := CourseIDFromParams(params)
	if err != nil {
		return models.Course{}, err
	}

	return GetCourse(ctx, id)
}

type addCoursePayload struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// AddCourse creates a course for the directory at path
func AddCourse(ctx context.OffCourseCtx, title, path string) (models.Course, error) {
	payload := addCoursePayload{
		Title: title,
		Path:  path,
	}

	ret, err := sendJSON(ctx, http.MethodPost, CourseAPI, payload, models.CourseDecoder)
	if err != nil {
		return models.Course{}, errors.Wrap(err, "failed to create course")
	}

	return ret, nil
}

// UpdateCourse sends the full course to the server and returns the updated course
func UpdateCourse(ctx context.OffCourseCtx, course models.Course) (models.Course, error) {
	if course.ID == "" {
		return models.Course{}, errors.Wrap(ErrMissingID, "failed to update course")
	}

	ret, err := sendJSON(ctx, http.MethodPut, resourcePath(CourseAPI, course.ID), course, models.CourseDecoder)
	if err != nil {
		return models.Course{}, errors.Wrap(err, "failed to update course")
	}

	return ret, nil
}

// DeleteCourse deletes a course by id
func DeleteCourse(ctx context.OffCourseCtx, id string) (bool, error) {
	if id == "" {
		return false, errors.Wrap(ErrMissingID, "failed to delete course")
	}

	if err := deleteReq(ctx, resourcePath(CourseAPI, id)); err != nil {
		return false, errors.Wrap(err, "failed to delete course")
	}

	return true, nil
}
