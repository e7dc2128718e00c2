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

// Package database stores the local offcourse state in SQLite
package database

import (
	"database/sql"

	// sqlite driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DB wraps a SQLite handle
type DB struct {
	Conn     *sql.DB
	Filepath string
}

// Open opens the database at the given path and creates the schema if it is missing
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening the database at %s", path)
	}

	db := &DB{Conn: conn, Filepath: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "initializing the schema")
	}

	return db, nil
}

func (db *DB) initSchema() error {
	_, err := db.Conn.Exec(`CREATE TABLE IF NOT EXISTS system
		(
			key string NOT NULL,
			value text NOT NULL
		)`)
	if err != nil {
		return errors.Wrap(err, "creating system table")
	}

	_, err = db.Conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_system_key ON system(key)`)
	if err != nil {
		return errors.Wrap(err, "creating system index")
	}

	return nil
}

// Close closes the underlying connection
func (db *DB) Close() error {
	return db.Conn.Close()
}
