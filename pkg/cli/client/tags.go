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
	"github.com/offcourse/offcourse/pkg/cli/pagination"
	"github.com/pkg/errors"
)

// GetTag gets a tag by id, or by name when params.ByName is set
func GetTag(ctx context.OffCourseCtx, idOrName string, params *TagParams) (models.Tag, error) {
	if idOrName == "" {
		return models.Tag{}, errors.Wrap(ErrMissingID, "failed to get tag")
	}

	ret, err := getJSON(ctx, resourcePath(TagsAPI, idOrName), params.Query(), models.TagDecoder)
	if err != nil {
		return models.Tag{}, errors.Wrap(err, "failed to get tag")
	}

	return ret, nil
}

// GetTags gets a page of tags. Use GetAllTags to get every tag.
func GetTags(ctx context.OffCourseCtx, params *TagsParams) (models.Page[models.Tag], error) {
	ret, err := getPage(ctx, TagsAPI, params.Query(), models.TagDecoder)
	if err != nil {
		return models.Page[models.Tag]{}, errors.Wrap(err, "failed to retrieve tags")
	}

	return ret, nil
}

// GetAllTags gets every tag matching params by walking the pages
func GetAllTags(ctx context.OffCourseCtx, params *TagsParams) ([]models.Tag, error) {
	var p TagsParams
	if params != nil {
		p = *params
	}

	ret, err := pagination.Collect(func(page, perPage int) (models.Page[models.Tag], error) {
		p.Page = page
		p.PerPage = perPage
		return GetTags(ctx, &p)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch all tags")
	}

	return ret, nil
}

type addTagPayload struct {
	Tag string `json:"tag"`
}

// AddTag creates a tag
func AddTag(ctx context.OffCourseCtx, tag string) (models.Tag, error) {
	ret, err := sendJSON(ctx, http.MethodPost, TagsAPI, addTagPayload{Tag: tag}, models.TagDecoder)
	if err != nil {
		return models.Tag{}, errors.Wrap(err, "failed to add tag")
	}

	return ret, nil
}

// UpdateTag sends the full tag to the server and returns the updated tag
func UpdateTag(ctx context.OffCourseCtx, tag models.Tag) (models.Tag, error) {
	if tag.ID == "" {
		return models.Tag{}, errors.Wrap(ErrMissingID, "failed to update tag")
	}

	ret, err := sendJSON(ctx, http.MethodPut, resourcePath(TagsAPI, tag.ID), tag, models.TagDecoder)
	if err != nil {
		return models.Tag{}, errors.Wrap(err, "failed to update tag")
	}

	return ret, nil
}

// DeleteTag deletes a tag by id
func DeleteTag(ctx context.OffCourseCtx, id string) (bool, error) {
	if id == "" {
		return false, errors.Wrap(ErrMissingID, "failed to delete tag")
	}

	if err := deleteReq(ctx, resourcePath(TagsAPI, id)); err != nil {
		return false, errors.Wrap(err, "failed to delete tag")
	}

	return true, nil
}
