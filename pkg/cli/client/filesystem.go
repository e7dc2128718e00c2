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

// GetFileSystem lists the directories and files under path. An empty path
// lists the available drives.
func GetFileSystem(ctx context.OffCourseCtx, path string) (models.FileSystem, error) {
	api := FSAPI
	if path != "" {
		api = resourcePath(FSAPI, EncodePath(path))
	}

	ret, err := getJSON(ctx, api, nil, models.FileSystemDecoder)
	if err != nil {
		return models.FileSystem{}, errors.Wrap(err, "failed to retrieve file system")
	}

	return ret, nil
}
