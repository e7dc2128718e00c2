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

package database

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

// InitTestFileDB opens a database inside a temporary directory removed when the test ends
func InitTestFileDB(t *testing.T) *DB {
	path := filepath.Join(t.TempDir(), "offcourse-test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(errors.Wrap(err, "opening test database"))
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// MustGetSystem fails the test if key cannot be read
func MustGetSystem(t *testing.T, db *DB, key string) string {
	var val string
	if err := GetSystem(db, key, &val); err != nil {
		t.Fatal(errors.Wrapf(err, "getting system key %s", key))
	}

	return val
}
