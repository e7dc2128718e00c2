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

// Package session tracks the identity of the authenticated user
package session

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/clock"
	"github.com/pkg/errors"
)

// State is the authentication state of a session
type State int

const (
	// StateUnknown means no identity is known
	StateUnknown State = iota
	// StateAuthenticated means the last identity check succeeded
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}

	return "unknown"
}

// Snapshot is a copy of the session state
type Snapshot struct {
	State     State
	User      *models.User
	Initial   string
	IsAdmin   bool
	CheckedAt time.Time
	// Error is the message of the last failed identity check
	Error string
}

// RedirectFunc navigates to the given view
type RedirectFunc func(path string)

// Holder holds the session of the current user. It is safe for concurrent use.
type Holder struct {
	ctx      context.OffCourseCtx
	clock    clock.Clock
	redirect RedirectFunc

	mu     sync.RWMutex
	state  Snapshot
	subs   map[int]func(Snapshot)
	nextID int
}

// New returns a holder in the unknown state. redirect is called with the
// login view whenever the session is cleared; it may be nil.
func New(ctx context.OffCourseCtx, redirect RedirectFunc) *Holder {
	c := ctx.Clock
	if c == nil {
		c = clock.New()
	}

	return &Holder{
		ctx:      ctx,
		clock:    c,
		redirect: redirect,
		subs:     map[int]func(Snapshot){},
	}
}

// Snapshot returns a copy of the current state
func (h *Holder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return copySnapshot(h.state)
}

// Subscribe registers fn to be called with the new state on every change.
// The returned function removes the subscription.
func (h *Holder) Subscribe(fn func(Snapshot)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subs, id)
	}
}

func copySnapshot(s Snapshot) Snapshot {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}

	return s
}

// set replaces the state and notifies subscribers outside the lock
func (h *Holder) set(fn func(s *Snapshot)) {
	h.mu.Lock()
	fn(&h.state)
	snap := copySnapshot(h.state)

	// notify in subscription order
	subs := make([]func(Snapshot), 0, len(h.subs))
	for _, id := range slices.Sorted(maps.Keys(h.subs)) {
		subs = append(subs, h.subs[id])
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// Initial returns the upper-cased first letter of the display name, falling
// back to the username
func Initial(u models.User) string {
	name := u.DisplayName
	if name == "" {
		name = u.Username
	}

	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}

	return strings.ToUpper(string(r))
}

// Refresh checks the identity with the server. An unauthenticated response
// clears the session and redirects to the login view without returning an
// error. Any other failure keeps the state and is returned.
func (h *Holder) Refresh() error {
	user, err := client.GetMe(h.ctx)
	if err != nil {
		if client.IsUnauthenticated(err) {
			log.Debug("session rejected: %s\n", err)
			h.Clear()
			return nil
		}

		h.set(func(s *Snapshot) {
			s.Error = err.Error()
		})

		return errors.Wrap(err, "checking the session")
	}

	h.set(func(s *Snapshot) {
		*s = Snapshot{
			State:     StateAuthenticated,
			User:      &user,
			Initial:   Initial(user),
			IsAdmin:   user.Role == models.UserRoleAdmin,
			CheckedAt: h.clock.Now(),
		}
	})

	return nil
}

// Logout ends the session on the server, then clears it
func (h *Holder) Logout() error {
	if err := client.Logout(h.ctx); err != nil && !client.IsUnauthenticated(err) {
		return errors.Wrap(err, "logging out")
	}

	h.Clear()
	return nil
}

// DeleteAccount deletes the account of the current user, then clears the session
func (h *Holder) DeleteAccount() error {
	if err := client.DeleteMe(h.ctx); err != nil {
		return errors.Wrap(err, "deleting the account")
	}

	h.Clear()
	return nil
}

// Clear resets the session to the unknown state and redirects to the login view
func (h *Holder) Clear() {
	h.set(func(s *Snapshot) {
		*s = Snapshot{State: StateUnknown}
	})

	if h.redirect != nil {
		h.redirect(consts.LoginPath)
	}
}
