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

// Package output provides functions to print API entities to the terminal
// in a consistent manner
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/utils"
)

// maxTitleWidth is the width titles are truncated to in listings
const maxTitleWidth = 48

func progress(c models.Course) string {
	switch {
	case c.Completed():
		return log.ColorGreen.Sprint("completed")
	case c.Started:
		return log.ColorYellow.Sprintf("%d%%", c.Percent)
	default:
		return log.ColorGray.Sprint("not started")
	}
}

// CourseInfo prints the details of a course
func CourseInfo(w io.Writer, c models.Course) {
	fmt.Fprintf(w, "title: %s\n", c.Title)
	fmt.Fprintf(w, "id: %s\n", c.ID)
	fmt.Fprintf(w, "path: %s\n", c.Path)
	fmt.Fprintf(w, "available: %t\n", c.Available)
	fmt.Fprintf(w, "scan: %s\n", c.ScanStatus)
	fmt.Fprintf(w, "progress: %s\n", progress(c))
	if c.StartedAt != "" {
		fmt.Fprintf(w, "started at: %s\n", c.StartedAt)
	}
	if c.CompletedAt != "" {
		fmt.Fprintf(w, "completed at: %s\n", c.CompletedAt)
	}
	fmt.Fprintf(w, "created at: %s\n", c.CreatedAt)
}

// CourseList prints one line per course
func CourseList(w io.Writer, courses []models.Course) {
	for _, c := range courses {
		fmt.Fprintf(w, "(%s) %s %s\n", log.ColorGray.Sprint(c.ID), utils.Truncate(c.Title, maxTitleWidth), progress(c))
	}
}

// AssetList prints the assets of a course grouped by chapter, in the given order
func AssetList(w io.Writer, assets []models.Asset) {
	chapter := ""
	for i, a := range assets {
		if i == 0 || a.Chapter != chapter {
			chapter = a.Chapter
			name := chapter
			if name == "" {
				name = "(no chapter)"
			}
			fmt.Fprintf(w, "%s\n", log.ColorBlue.Sprint(name))
		}

		state := ""
		switch {
		case a.Completed:
			state = log.ColorGreen.Sprint("✔")
		case a.Started():
			state = log.ColorYellow.Sprintf("%ds", a.VideoPos)
		}

		line := utils.JoinNonEmpty([]string{
			fmt.Sprintf("%d.", a.Prefix),
			utils.Truncate(a.Title, maxTitleWidth),
			fmt.Sprintf("[%s]", a.AssetType),
			fmt.Sprintf("(%s)", log.ColorGray.Sprint(a.ID)),
			state,
		}, " ")
		fmt.Fprintf(w, "  %s\n", line)

		for _, at := range a.Attachments {
			fmt.Fprintf(w, "     - %s\n", at.Title)
		}
	}
}

// CourseTags prints the tags of a course
func CourseTags(w io.Writer, tags []models.CourseTag) {
	for _, t := range tags {
		fmt.Fprintf(w, "(%s) %s\n", log.ColorGray.Sprint(t.ID), t.Tag)
	}
}

// TagInfo prints the details of a tag
func TagInfo(w io.Writer, t models.Tag) {
	fmt.Fprintf(w, "tag: %s\n", t.Tag)
	fmt.Fprintf(w, "id: %s\n", t.ID)
	fmt.Fprintf(w, "courses: %d\n", t.CourseCount)
	for _, c := range t.Courses {
		fmt.Fprintf(w, "  - %s (%s)\n", c.Title, log.ColorGray.Sprint(c.ID))
	}
}

// TagList prints one line per tag
func TagList(w io.Writer, tags []models.Tag) {
	for _, t := range tags {
		fmt.Fprintf(w, "(%s) %s [%d]\n", log.ColorGray.Sprint(t.ID), t.Tag, t.CourseCount)

		for _, c := range t.Courses {
			fmt.Fprintf(w, "  - %s\n", c.Title)
		}
	}
}

// ScanInfo prints a scan
func ScanInfo(w io.Writer, s models.Scan) {
	fmt.Fprintf(w, "course: %s\n", s.CourseID)
	fmt.Fprintf(w, "status: %s\n", s.Status)
	fmt.Fprintf(w, "queued at: %s\n", s.CreatedAt)
}

func levelColor(l models.LogLevel) string {
	name := strings.ToUpper(l.String())

	switch l {
	case models.LogLevelError:
		return log.ColorRed.Sprint(name)
	case models.LogLevelWarn:
		return log.ColorYellow.Sprint(name)
	case models.LogLevelDebug:
		return log.ColorGray.Sprint(name)
	default:
		return log.ColorBlue.Sprint(name)
	}
}

// LogList prints one line per log entry with its data as sorted key=value pairs
func LogList(w io.Writer, logs []models.Log) {
	for _, l := range logs {
		keys := make([]string, 0, len(l.Data))
		for k := range l.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, l.Data[k]))
		}

		fmt.Fprintf(w, "%s %s %s %s\n", l.CreatedAt, levelColor(l.Level), l.Message, log.ColorGray.Sprint(strings.Join(pairs, " ")))
	}
}

// UserInfo prints a user
func UserInfo(w io.Writer, u models.User) {
	fmt.Fprintf(w, "username: %s\n", u.Username)
	if u.DisplayName != "" {
		fmt.Fprintf(w, "display name: %s\n", u.DisplayName)
	}
	fmt.Fprintf(w, "role: %s\n", u.Role)
}

// FileSystem prints a directory listing, directories first
func FileSystem(w io.Writer, fs models.FileSystem) {
	for _, d := range fs.Directories {
		suffix := ""
		if d.Classification != models.PathClassificationNone {
			suffix = " " + log.ColorGray.Sprintf("[%s]", d.Classification)
		}

		fmt.Fprintf(w, "%s/%s\n", log.ColorBlue.Sprint(d.Path), suffix)
	}

	for _, f := range fs.Files {
		fmt.Fprintf(w, "%s\n", f.Path)
	}
}

// PageFooter prints the position of a page within its listing
func PageFooter[T any](w io.Writer, p models.Page[T]) {
	fmt.Fprintf(w, "%s\n", log.ColorGray.Sprintf("page %d of %d (%d items)", p.Page, p.TotalPages, p.TotalItems))
}
