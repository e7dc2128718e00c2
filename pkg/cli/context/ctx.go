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

// Package context defines the offcourse runtime context
package context

import (
	"net/http"

	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/clock"
)

// Mode selects how API URLs are resolved
type Mode string

const (
	// ModeProduction resolves API paths relative to the origin serving the app
	ModeProduction Mode = "production"
	// ModeDevelopment resolves API paths against a separately running backend
	ModeDevelopment Mode = "development"
)

const (
	// DefaultBackendHost is the development backend host when none is configured
	DefaultBackendHost = "localhost"
	// DefaultBackendPort is the development backend port when none is configured
	DefaultBackendPort = 9081
)

// Backend describes where the API lives. It is resolved once at startup.
type Backend struct {
	Mode Mode
	Host string
	Port int
	// Origin is joined with relative URLs produced in production mode
	Origin string
}

// Paths contain directory definitions
type Paths struct {
	Config string
	Data   string
}

// OffCourseCtx holds the information of the current runtime
type OffCourseCtx struct {
	Paths        Paths
	Backend      Backend
	Version      string
	DB           *database.DB
	SessionToken string
	Clock        clock.Clock
	HTTPClient   *http.Client
}

// Redact replaces private information from the context with placeholders
func Redact(ctx OffCourseCtx) OffCourseCtx {
	if ctx.SessionToken != "" {
		ctx.SessionToken = "1"
	} else {
		ctx.SessionToken = "0"
	}

	return ctx
}
