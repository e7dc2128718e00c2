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
	"database/sql"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a system key has no value
var ErrNotFound = errors.New("not found")

// GetSystem reads the value stored under key into dest
func GetSystem(db *DB, key string, dest *string) error {
	err := db.Conn.QueryRow("SELECT value FROM system WHERE key = ?", key).Scan(dest)
	if err == sql.ErrNoRows {
		return ErrNotFound
	} else if err != nil {
		return errors.Wrapf(err, "finding system key %s", key)
	}

	return nil
}

// UpsertSystem stores val under key, replacing any previous value
func UpsertSystem(db *DB, key, val string) error {
	_, err := db.Conn.Exec(`INSERT INTO system (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, val)
	if err != nil {
		return errors.Wrapf(err, "saving system key %s", key)
	}

	return nil
}

// DeleteSystem removes key. Removing a missing key is not an error.
func DeleteSystem(db *DB, key string) error {
	if _, err := db.Conn.Exec("DELETE FROM system WHERE key = ?", key); err != nil {
		return errors.Wrapf(err, "deleting system key %s", key)
	}

	return nil
}
