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

// Package pagination walks paginated API listings and stitches their pages
// into complete collections
package pagination

import (
	"iter"

	"github.com/offcourse/offcourse/pkg/cli/models"
)

// DefaultPerPage is the page size used when collecting a full listing
const DefaultPerPage = 100

// Fetcher fetches a single page of a listing
type Fetcher[T any] func(page, perPage int) (models.Page[T], error)

// State is the state of an Iterator
type State int

const (
	// StateReady means the next page can be fetched
	StateReady State = iota
	// StateFetching means a page request is in flight
	StateFetching
	// StateDone means the listing was exhausted
	StateDone
	// StateFailed means a page request failed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFetching:
		return "fetching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Iterator fetches the pages of a listing one at a time, in order, starting
// at page 1. It is finite and cannot be restarted.
type Iterator[T any] struct {
	fetch   Fetcher[T]
	perPage int
	page    int
	state   State
	items   []T
	err     error
}

// NewIterator returns an iterator over the pages returned by fetch
func NewIterator[T any](fetch Fetcher[T], perPage int) *Iterator[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	return &Iterator[T]{
		fetch:   fetch,
		perPage: perPage,
		page:    1,
		state:   StateReady,
	}
}

// Next fetches the next page and reports whether it holds items. It returns
// false once the listing is exhausted or a fetch failed.
func (it *Iterator[T]) Next() bool {
	if it.state != StateReady {
		return false
	}

	it.state = StateFetching
	it.items = nil

	p, err := it.fetch(it.page, it.perPage)
	if err != nil {
		it.state = StateFailed
		it.err = err
		return false
	}

	if p.TotalItems == 0 || len(p.Items) == 0 {
		it.state = StateDone
		return false
	}

	it.items = p.Items

	if it.page >= p.TotalPages {
		it.state = StateDone
	} else {
		it.page++
		it.state = StateReady
	}

	return true
}

// Items returns the items of the page fetched by the last call to Next
func (it *Iterator[T]) Items() []T {
	return it.items
}

// Err returns the error that stopped the iterator, if any
func (it *Iterator[T]) Err() error {
	return it.err
}

// State returns the current state of the iterator
func (it *Iterator[T]) State() State {
	return it.state
}

// Pages returns a sequence of the item slices of each page. A failed fetch is
// yielded as the final element. Stopping the range early fetches no further
// pages.
func Pages[T any](fetch Fetcher[T], perPage int) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		it := NewIterator(fetch, perPage)
		for it.Next() {
			if !yield(it.Items(), nil) {
				return
			}
		}

		if err := it.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Collect fetches every page with DefaultPerPage and returns the items in
// server order. Any error aborts and no partial result is returned.
func Collect[T any](fetch Fetcher[T]) ([]T, error) {
	ret := []T{}

	for items, err := range Pages(fetch, DefaultPerPage) {
		if err != nil {
			return nil, err
		}

		ret = append(ret, items...)
	}

	return ret, nil
}
