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

	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/pkg/errors"
)

// GetCourseTags gets the tags of a course in server order
func GetCourseTags(ctx context.OffCourseCtx, courseID string) ([]models.CourseTag, error) {
	if courseID == "" {
		return nil, errors.Wrap(ErrMissingID, "failed to retrieve course tags")
	}

	ret, err := getJSON(ctx, resourcePath(CourseAPI, courseID, "tags"), nil, models.CourseTagsDecoder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve course tags")
	}

	return ret, nil
}

type addCourseTagPayload struct {
	Tag string `json:"tag"`
}

// AddCourseTag adds a tag to a course. The server creates the tag if it does
// not exist.
func AddCourseTag(ctx context.OffCourseCtx, courseID, tag string) (models.CourseTag, error) {
	if courseID == "" {
		return models.CourseTag{}, errors.Wrap(ErrMissingID, "failed to add course tag")
	}

	api := resourcePath(CourseAPI, courseID, "tags") + "/"
	ret, err := sendJSON(ctx, http.MethodPost, api, addCourseTagPayload{Tag: tag}, models.CourseTagDecoder)
	if err != nil {
		return models.CourseTag{}, errors.Wrap(err, "failed to add course tag")
	}

	return ret, nil
}

// DeleteCourseTag removes a tag from a course
func DeleteCourseTag(ctx context.OffCourseCtx, courseID, tagID string) (bool, error) {
	if courseID == "" || tagID == "" {
		return false, errors.Wrap(ErrMissingID, "failed to delete course tag")
	}

	if err := deleteReq(ctx, resourcePath(CourseAPI, courseID, "tags", tagID)); err != nil {
		return false, errors.Wrap(err, "failed to delete course tag")
	}

	return true, nil
}
