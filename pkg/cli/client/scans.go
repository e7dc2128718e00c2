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

// GetScan gets the scan of a course. It fails with a 404 HTTPError when the
// course has no scan.
func GetScan(ctx context.OffCourseCtx, courseID string) (models.Scan, error) {
	if courseID == "" {
		return models.Scan{}, errors.Wrap(ErrMissingID, "failed to get scan")
	}

	ret, err := getJSON(ctx, resourcePath(ScanAPI, courseID), nil, models.ScanDecoder)
	if err != nil {
		return models.Scan{}, errors.Wrap(err, "failed to get scan")
	}

	return ret, nil
}

type addScanPayload struct {
	CourseID string `json:"courseId"`
}

// AddScan queues a scan of a course
func AddScan(ctx context.OffCourseCtx, courseID string) (models.Scan, error) {
	if courseID == "" {
		return models.Scan{}, errors.Wrap(ErrMissingID, "failed to add scan job")
	}

	ret, err := sendJSON(ctx, http.MethodPost, ScanAPI, addScanPayload{CourseID: courseID}, models.ScanDecoder)
	if err != nil {
		return models.Scan{}, errors.Wrap(err, "failed to add scan job")
	}

	return ret, nil
}
