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
	"net/url"
	"strconv"
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/models"
)

// PageParams selects a page of a paginated list. Zero values are omitted.
type PageParams struct {
	Page    int
	PerPage int
}

func (p PageParams) apply(v url.Values) {
	setInt(v, "page", p.Page)
	setInt(v, "perPage", p.PerPage)
}

// CoursesParams filters and sorts a course listing
type CoursesParams struct {
	PageParams
	OrderBy  string
	Progress models.CourseProgress
	Tags     []string
	Titles   []string
}

// Query returns the query string values for the params
func (p *CoursesParams) Query() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}

	p.PageParams.apply(v)
	setString(v, "orderBy", p.OrderBy)
	setString(v, "progress", string(p.Progress))
	setList(v, "tags", p.Tags)
	setList(v, "titles", p.Titles)

	return v
}

// AssetsParams sorts a course's asset listing
type AssetsParams struct {
	PageParams
	OrderBy string
	// Expand includes the attachments of each asset
	Expand bool
}

// Query returns the query string values for the params
func (p *AssetsParams) Query() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}

	p.PageParams.apply(v)
	setString(v, "orderBy", p.OrderBy)
	setBool(v, "expand", p.Expand)

	return v
}

// TagParams controls how a single tag is looked up
type TagParams struct {
	// ByName treats the identifier as a tag name rather than an id
	ByName bool
	// Insensitive matches the name case-insensitively
	Insensitive bool
	// Expand includes the courses of the tag
	Expand bool
}

// Query returns the query string values for the params
func (p *TagParams) Query() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}

	setBool(v, "byName", p.ByName)
	setBool(v, "insensitive", p.Insensitive)
	setBool(v, "expand", p.Expand)

	return v
}

// TagsParams filters and sorts a tag listing
type TagsParams struct {
	PageParams
	OrderBy string
	Filter  string
	// Expand includes the courses of each tag
	Expand bool
}

// Query returns the query string values for the params
func (p *TagsParams) Query() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}

	p.PageParams.apply(v)
	setString(v, "orderBy", p.OrderBy)
	setString(v, "filter", p.Filter)
	setBool(v, "expand", p.Expand)

	return v
}

// LogsParams filters a log listing
type LogsParams struct {
	PageParams
	Levels   []models.LogLevel
	Types    []string
	Messages []string
}

// Query returns the query string values for the params
func (p *LogsParams) Query() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}

	p.PageParams.apply(v)

	levels := make([]string, 0, len(p.Levels))
	for _, l := range p.Levels {
		levels = append(levels, strconv.Itoa(int(l)))
	}
	setList(v, "levels", levels)
	setList(v, "types", p.Types)
	setList(v, "messages", p.Messages)

	return v
}

func setString(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setInt(v url.Values, key string, val int) {
	if val != 0 {
		v.Set(key, strconv.Itoa(val))
	}
}

func setBool(v url.Values, key string, val bool) {
	if val {
		v.Set(key, "true")
	}
}

func setList(v url.Values, key string, vals []string) {
	nonEmpty := make([]string, 0, len(vals))
	for _, s := range vals {
		if s = strings.TrimSpace(s); s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	if len(nonEmpty) > 0 {
		v.Set(key, strings.Join(nonEmpty, ","))
	}
}
