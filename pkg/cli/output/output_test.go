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

package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
)

func init() {
	color.NoColor = true
}

func TestCourseList(t *testing.T) {
	var buf bytes.Buffer

	CourseList(&buf, []models.Course{
		{Base: models.Base{ID: "c1"}, Title: "Go Basics"},
		{Base: models.Base{ID: "c2"}, Title: "Rust", Started: true, Percent: 40},
		{Base: models.Base{ID: "c3"}, Title: "SQL", Started: true, Percent: 100},
	})

	expected := "(c1) Go Basics not started\n" +
		"(c2) Rust 40%\n" +
		"(c3) SQL completed\n"
	assert.Equal(t, buf.String(), expected, "output mismatch")
}

func TestAssetList(t *testing.T) {
	var buf bytes.Buffer

	AssetList(&buf, []models.Asset{
		{Base: models.Base{ID: "a1"}, Prefix: 1, Title: "Intro", Chapter: "01 Start", AssetType: models.AssetTypeVideo, VideoPos: 30},
		{Base: models.Base{ID: "a2"}, Prefix: 2, Title: "Notes", Chapter: "01 Start", AssetType: models.AssetTypePDF, Completed: true,
			Attachments: []models.Attachment{{Title: "cheatsheet.txt"}}},
		{Base: models.Base{ID: "a3"}, Prefix: 1, Title: "Setup", Chapter: "", AssetType: models.AssetTypeHTML},
	})

	expected := "01 Start\n" +
		"  1. Intro [video] (a1) 30s\n" +
		"  2. Notes [pdf] (a2) ✔\n" +
		"     - cheatsheet.txt\n" +
		"(no chapter)\n" +
		"  1. Setup [html] (a3)\n"
	assert.Equal(t, buf.String(), expected, "output mismatch")
}

func TestLogList(t *testing.T) {
	var buf bytes.Buffer

	LogList(&buf, []models.Log{
		{CreatedAt: "2024-03-01 09:30:00", Level: models.LogLevelWarn, Message: "slow", Data: map[string]interface{}{"type": "api", "ms": 1200}},
	})

	assert.Equal(t, buf.String(), "2024-03-01 09:30:00 WARN slow ms=1200 type=api\n", "output mismatch")
}

func TestFileSystem(t *testing.T) {
	var buf bytes.Buffer

	FileSystem(&buf, models.FileSystem{
		Count: 2,
		Directories: []models.FileInfo{
			{Path: "/courses/go", Classification: models.PathClassificationCourse},
			{Path: "/tmp"},
		},
		Files: []models.FileInfo{{Path: "/notes.txt"}},
	})

	expected := "/courses/go/ [course]\n" +
		"/tmp/\n" +
		"/notes.txt\n"
	assert.Equal(t, buf.String(), expected, "output mismatch")
}

func TestPageFooter(t *testing.T) {
	var buf bytes.Buffer

	PageFooter(&buf, models.Page[models.Tag]{Page: 1, PerPage: 2, TotalItems: 3, TotalPages: 2})

	assert.Equal(t, buf.String(), "page 1 of 2 (3 items)\n", "output mismatch")
}
