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

// GetCourseAssets gets a page of a course's assets. Use GetAllCourseAssets to
// get every asset.
func GetCourseAssets(ctx context.OffCourseCtx, courseID string, params *AssetsParams) (models.Page[models.Asset], error) {
	if courseID == "" {
		return models.Page[models.Asset]{}, errors.Wrap(ErrMissingID, "failed to get course assets")
	}

	ret, err := getPage(ctx, resourcePath(CourseAPI, courseID, "assets"), params.Query(), models.AssetDecoder)
	if err != nil {
		return models.Page[models.Asset]{}, errors.Wrap(err, "failed to get course assets")
	}

	return ret, nil
}

// GetAllCourseAssets gets every asset of a course by walking the pages
func GetAllCourseAssets(ctx context.OffCourseCtx, courseID string, params *AssetsParams) ([]models.Asset, error) {
	var p AssetsParams
	if params != nil {
		p = *params
	}

	ret, err := pagination.Collect(func(page, perPage int) (models.Page[models.Asset], error) {
		p.Page = page
		p.PerPage = perPage
		return GetCourseAssets(ctx, courseID, &p)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get all course assets")
	}

	return ret, nil
}

// UpdateAsset sends the full asset to the server and returns the updated asset
func UpdateAsset(ctx context.OffCourseCtx, asset models.Asset) (models.Asset, error) {
	if asset.ID == "" {
		return models.Asset{}, errors.Wrap(ErrMissingID, "failed to update asset")
	}

	ret, err := sendJSON(ctx, http.MethodPut, resourcePath(AssetAPI, asset.ID), asset, models.AssetDecoder)
	if err != nil {
		return models.Asset{}, errors.Wrap(err, "failed to update asset")
	}

	return ret, nil
}
