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

package models

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Pagination is the envelope wrapping every paginated list. Items are kept
// raw until the caller decodes them as a specific entity.
type Pagination struct {
	Page       int               `json:"page" validate:"min=0"`
	PerPage    int               `json:"perPage" validate:"min=0"`
	TotalItems int               `json:"totalItems" validate:"min=0"`
	TotalPages int               `json:"totalPages" validate:"min=0"`
	Items      []json.RawMessage `json:"items"`
}

// Page is a decoded pagination envelope
type Page[T any] struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	Items      []T
}

// Check verifies the envelope invariants
func (p Pagination) Check() *ValidationError {
	if p.TotalItems > 0 && p.Page > p.TotalPages {
		return &ValidationError{
			Entity: "pagination",
			Field:  "page",
			Reason: fmt.Sprintf("%d exceeds totalPages %d", p.Page, p.TotalPages),
		}
	}

	if p.PerPage > 0 && len(p.Items) > p.PerPage {
		return &ValidationError{
			Entity: "pagination",
			Field:  "items",
			Reason: fmt.Sprintf("has %d entries, more than perPage %d", len(p.Items), p.PerPage),
		}
	}

	return nil
}

// DecodePage decodes a pagination envelope and every item in it with dec.
// One invalid item rejects the whole page.
func DecodePage[T any](raw []byte, dec Decoder[T]) (Page[T], error) {
	env, err := Decode[Pagination](raw)
	if err != nil {
		return Page[T]{}, err
	}

	if err := env.Check(); err != nil {
		return Page[T]{}, err
	}

	ret := Page[T]{
		Page:       env.Page,
		PerPage:    env.PerPage,
		TotalItems: env.TotalItems,
		TotalPages: env.TotalPages,
		Items:      make([]T, 0, len(env.Items)),
	}

	for i, item := range env.Items {
		v, err := dec.Decode(item)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return Page[T]{}, &ValidationError{
					Entity: verr.Entity,
					Field:  joinPath(fmt.Sprintf("items[%d]", i), verr.Field),
					Reason: verr.Reason,
				}
			}

			return Page[T]{}, errors.Wrapf(err, "decoding item %d", i)
		}

		ret.Items = append(ret.Items, v)
	}

	return ret, nil
}
