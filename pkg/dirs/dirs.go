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

// Package dirs resolves the base directories offcourse reads and writes
package dirs

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/pkg/errors"
)

// AppDirName is the directory created under each base directory
const AppDirName = "offcourse"

var (
	// Home is the home directory of the current user
	Home string
	// ConfigHome is the directory under which user configuration is written
	ConfigHome string
	// DataHome is the directory under which user data files are written
	DataHome string
)

func init() {
	Reload()
}

// Reload re-reads the directory definitions from the environment
func Reload() {
	initDirs()
}

// AppConfig returns the offcourse directory inside ConfigHome
func AppConfig() string {
	return filepath.Join(ConfigHome, AppDirName)
}

// AppData returns the offcourse directory inside DataHome
func AppData() string {
	return filepath.Join(DataHome, AppDirName)
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		panic(errors.Wrap(err, "looking up the current user"))
	}

	return usr.HomeDir
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}

	return fallback
}
