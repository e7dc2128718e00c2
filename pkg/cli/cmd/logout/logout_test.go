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

package logout

import (
	"net/http"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/testutils"
)

func TestDo(t *testing.T) {
	b := testutils.NewBackend(t)
	b.SeedUser("alice", "secret", "user")
	ctx := testutils.NewCtx(t, b)
	testutils.Login(t, &ctx, b.Token)

	if err := Do(ctx); err != nil {
		t.Fatal(err)
	}

	req := b.LastRequest(t)
	assert.Equal(t, req.Method, http.MethodPost, "method mismatch")
	assert.Equal(t, req.Path, "/api/auth/logout", "path mismatch")

	var token string
	err := database.GetSystem(ctx.DB, consts.SystemSessionToken, &token)
	assert.Equal(t, err, database.ErrNotFound, "token should have been deleted")
}

func TestDo_notLoggedIn(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)

	assert.Equal(t, Do(ctx), infra.ErrNotLoggedIn, "error mismatch")
	assert.Equal(t, len(b.Requests()), 0, "no request should be made")
}
