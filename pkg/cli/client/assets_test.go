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
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/testutils"
)

func TestCourseAssets(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	c := b.SeedCourse("Go Basics", "/courses/go")
	a1 := b.SeedAsset(c.ID, "intro", models.AssetTypeVideo)
	a2 := b.SeedAsset(c.ID, "notes", models.AssetTypePDF)
	a3 := b.SeedAsset(c.ID, "slides", models.AssetTypeHTML)

	t.Run("page", func(t *testing.T) {
		got, err := GetCourseAssets(ctx, c.ID, &AssetsParams{PageParams: PageParams{Page: 2, PerPage: 2}})
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, got.Page, 2, "page mismatch")
		assert.Equal(t, got.TotalPages, 2, "totalPages mismatch")
		assert.DeepEqual(t, got.Items, []models.Asset{a3}, "items mismatch")
	})

	t.Run("all", func(t *testing.T) {
		got, err := GetAllCourseAssets(ctx, c.ID, &AssetsParams{Expand: true})
		if err != nil {
			t.Fatal(err)
		}

		assert.DeepEqual(t, got, []models.Asset{a1, a2, a3}, "assets mismatch")

		req := b.LastRequest(t)
		assert.Equal(t, req.Path, "/api/courses/"+c.ID+"/assets", "path mismatch")
		assert.Equal(t, req.Query.Get("expand"), "true", "expand mismatch")
		assert.Equal(t, req.Query.Get("perPage"), "100", "perPage mismatch")
	})

	t.Run("update progress", func(t *testing.T) {
		a := a1
		a.VideoPos = 95
		a.Completed = true

		got, err := UpdateAsset(ctx, a)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, got.VideoPos, 95, "videoPos mismatch")
		assert.Equal(t, got.Completed, true, "completed mismatch")
		assert.NotEqual(t, got.CompletedAt, "", "completedAt should be set")
		assert.Equal(t, got.Started(), true, "started mismatch")
		assert.Equal(t, b.LastRequest(t).Path, "/api/assets/"+a1.ID, "path mismatch")
	})
}
