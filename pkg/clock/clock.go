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

// Package clock abstracts the wall clock so that time-dependent state can be
// tested deterministically
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// New returns a clock backed by the system time
func New() Clock {
	return realClock{}
}

// Mock is a clock whose time only changes when told to
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock returns a mock clock frozen at a fixed instant
func NewMock() *Mock {
	return &Mock{
		now: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC),
	}
}

// SetNow freezes the mock at t
func (m *Mock) SetNow(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = t
}

// Advance moves the mock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
}

// Now returns the frozen time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.now
}
