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

package testutils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/pkg/errors"
)

func get(t *testing.T, b *Backend, path, token string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, b.Server.URL+path, nil)
	if err != nil {
		t.Fatal(errors.Wrap(err, "building the request"))
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: token})
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "making the request"))
	}
	t.Cleanup(func() { res.Body.Close() })

	return res
}

func TestBackendSession(t *testing.T) {
	b := NewBackend(t)
	b.SeedUser("alice", "secret", "user")

	assert.StatusCodeEquals(t, get(t, b, "/api/courses", ""), http.StatusForbidden, "request without a token")
	assert.StatusCodeEquals(t, get(t, b, "/api/courses", "wrong"), http.StatusForbidden, "request with a wrong token")
	assert.StatusCodeEquals(t, get(t, b, "/api/courses", b.Token), http.StatusOK, "request with the token")

	reqs := b.Requests()
	assert.Equal(t, len(reqs), 3, "request count mismatch")
	assert.Equal(t, reqs[2].Token, b.Token, "recorded token mismatch")
}

func TestBackendCanned(t *testing.T) {
	b := NewBackend(t)
	b.Respond(http.MethodGet, "/api/tags", http.StatusInternalServerError, `{"message":"boom"}`)

	res := get(t, b, "/api/tags", "")
	assert.StatusCodeEquals(t, res, http.StatusInternalServerError, "canned status")

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, string(body), `{"message":"boom"}`, "canned body mismatch")

	b.Reset(http.MethodGet, "/api/tags")
	assert.StatusCodeEquals(t, get(t, b, "/api/tags", ""), http.StatusOK, "status after reset")
}

func TestBackendPaginate(t *testing.T) {
	b := NewBackend(t)
	for i := 0; i < 5; i++ {
		b.SeedTag(fmt.Sprintf("tag%d", i))
	}

	testCases := []struct {
		query      string
		page       int
		items      int
		totalPages int
	}{
		{query: "", page: 1, items: 5, totalPages: 1},
		{query: "?perPage=2", page: 1, items: 2, totalPages: 3},
		{query: "?perPage=2&page=3", page: 3, items: 1, totalPages: 3},
		{query: "?perPage=2&page=9", page: 9, items: 0, totalPages: 3},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("query %q", tc.query), func(t *testing.T) {
			res := get(t, b, "/api/tags"+tc.query, "")
			assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

			var envelope struct {
				Page       int               `json:"page"`
				TotalItems int               `json:"totalItems"`
				TotalPages int               `json:"totalPages"`
				Items      []json.RawMessage `json:"items"`
			}
			if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
				t.Fatal(errors.Wrap(err, "decoding the envelope"))
			}

			assert.Equalf(t, envelope.Page, tc.page, "page mismatch")
			assert.Equalf(t, len(envelope.Items), tc.items, "item count mismatch")
			assert.Equalf(t, envelope.TotalPages, tc.totalPages, "total pages mismatch")
			assert.Equalf(t, envelope.TotalItems, 5, "total items mismatch")
		})
	}
}
