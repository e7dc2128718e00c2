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
	"net/http"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/testutils"
)

func TestLogin(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)
	b.SeedUser("amy", "secret", models.UserRoleAdmin)

	t.Run("wrong password", func(t *testing.T) {
		_, err := Login(ctx, "amy", "nope")
		assert.Equal(t, StatusCode(err), http.StatusUnauthorized, "status mismatch")
	})

	t.Run("success", func(t *testing.T) {
		got, err := Login(ctx, "amy", "secret")
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, got.Token, b.Token, "token mismatch")
		assert.Equal(t, b.LastRequest(t).Token, "", "login should not send a token")
	})
}

func TestSessionRequired(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)
	b.SeedUser("amy", "secret", models.UserRoleUser)

	_, err := GetMe(ctx)
	assert.Equal(t, StatusCode(err), http.StatusForbidden, "status mismatch")

	testutils.Login(t, &ctx, b.Token)

	me, err := GetMe(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, me.Username, "amy", "username mismatch")
	assert.Equal(t, me.Role, models.UserRoleUser, "role mismatch")
}

func TestLogoutAndDeleteMe(t *testing.T) {
	b := testutils.NewBackend(t)
	ctx := testutils.NewCtx(t, b)
	b.SeedUser("amy", "secret", models.UserRoleUser)
	testutils.Login(t, &ctx, b.Token)

	if err := Logout(ctx); err != nil {
		t.Fatal(err)
	}
	req := b.LastRequest(t)
	assert.Equal(t, req.Method, http.MethodPost, "logout method mismatch")
	assert.Equal(t, req.Path, "/api/auth/logout", "logout path mismatch")

	if err := DeleteMe(ctx); err != nil {
		t.Fatal(err)
	}
	req = b.LastRequest(t)
	assert.Equal(t, req.Method, http.MethodDelete, "delete method mismatch")
	assert.Equal(t, req.Path, "/api/auth/me", "delete path mismatch")

	_, err := GetMe(ctx)
	assert.Equal(t, StatusCode(err), http.StatusForbidden, "status after delete mismatch")
}
