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

package login

import (
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/cli/testutils"
)

func TestDo(t *testing.T) {
	b := testutils.NewBackend(t)
	b.SeedUser("alice", "secret", "user")
	ctx := testutils.NewCtx(t, b)

	if err := Do(ctx, "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, database.MustGetSystem(t, ctx.DB, consts.SystemSessionToken), b.Token, "token mismatch")
	assert.Equal(t, database.MustGetSystem(t, ctx.DB, consts.SystemSessionUser), "alice", "user mismatch")
}

func TestDo_wrongPassword(t *testing.T) {
	b := testutils.NewBackend(t)
	b.SeedUser("alice", "secret", "user")
	ctx := testutils.NewCtx(t, b)

	err := Do(ctx, "alice", "nope")
	assert.Equal(t, client.StatusCode(err), 401, "status mismatch")

	var token string
	err = database.GetSystem(ctx.DB, consts.SystemSessionToken, &token)
	assert.Equal(t, err, database.ErrNotFound, "no token should be stored")
}
