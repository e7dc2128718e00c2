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
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/pkg/errors"
)

// GetLogs gets a page of server logs
func GetLogs(ctx context.OffCourseCtx, params *LogsParams) (models.Page[models.Log], error) {
	ret, err := getPage(ctx, LogAPI, params.Query(), models.LogDecoder)
	if err != nil {
		return models.Page[models.Log]{}, errors.Wrap(err, "failed to retrieve logs")
	}

	return ret, nil
}

// GetLogTypes gets the distinct log types known to the server
func GetLogTypes(ctx context.OffCourseCtx) ([]string, error) {
	ret, err := getJSON(ctx, resourcePath(LogAPI, "types"), nil, models.LogTypesDecoder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve log types")
	}

	return ret, nil
}
