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
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/context"
)

// Logical API paths
const (
	FSAPI     = "/api/filesystem"
	CourseAPI = "/api/courses"
	AssetAPI  = "/api/assets"
	TagsAPI   = "/api/tags"
	ScanAPI   = "/api/scans"
	LogAPI    = "/api/logs"
	AuthAPI   = "/api/auth"
)

// BackendURL returns the URL for the given logical API path. In production
// mode the path is returned unchanged and is relative to the serving origin.
func BackendURL(b context.Backend, api string) string {
	if b.Mode == context.ModeProduction {
		return api
	}

	host := b.Host
	if host == "" {
		host = context.DefaultBackendHost
	}

	port := b.Port
	if port == 0 {
		port = context.DefaultBackendPort
	}

	return fmt.Sprintf("http://%s:%d%s", host, port, api)
}

// resolveURL returns an absolute URL for api, joining relative results with
// the configured origin
func resolveURL(b context.Backend, api string) (string, error) {
	u := BackendURL(b, api)
	if !strings.HasPrefix(u, "/") {
		return u, nil
	}

	if b.Origin == "" {
		return "", ErrNoOrigin
	}

	return strings.TrimRight(b.Origin, "/") + u, nil
}

// EncodePath encodes a filesystem path for use as a single URL path segment.
// The path is URI-component escaped and then base64url encoded.
// The server must decode the segment with the padded URL-safe base64 alphabet
// (RFC 4648 section 5), not the standard one.
func EncodePath(p string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(p), "+", "%20")

	return base64.URLEncoding.EncodeToString([]byte(escaped))
}

// DecodePath reverses EncodePath
func DecodePath(s string) (string, error) {
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}

	return url.QueryUnescape(string(b))
}

func resourcePath(api string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, api)
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}

	return strings.Join(parts, "/")
}
