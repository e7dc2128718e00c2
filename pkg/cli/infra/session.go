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

package infra

import (
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/session"
	"github.com/pkg/errors"
)

// ErrNotLoggedIn is returned by commands that were rejected for lack of a valid session
var ErrNotLoggedIn = errors.New("not logged in")

// NewSession returns a session holder for the command line. Clearing the
// session forgets the stored token and points the user to the login command.
func NewSession(ctx context.OffCourseCtx) *session.Holder {
	return session.New(ctx, func(path string) {
		log.Debug("redirecting to %s\n", path)

		if err := database.DeleteSystem(ctx.DB, consts.SystemSessionToken); err != nil {
			log.Errorf("%s\n", errors.Wrap(err, "forgetting the session token").Error())
		}
		if err := database.DeleteSystem(ctx.DB, consts.SystemSessionUser); err != nil {
			log.Errorf("%s\n", errors.Wrap(err, "forgetting the session user").Error())
		}

		log.Warnf("not logged in. run 'offcourse login'\n")
	})
}

// CheckSession converts a rejected session into ErrNotLoggedIn after
// clearing it. Other errors are returned as they are.
func CheckSession(ctx context.OffCourseCtx, err error) error {
	if err == nil || !client.IsUnauthenticated(err) {
		return err
	}

	NewSession(ctx).Clear()

	return ErrNotLoggedIn
}
