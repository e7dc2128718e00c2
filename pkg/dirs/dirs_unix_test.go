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

//go:build linux || darwin || freebsd

package dirs

import (
	"path/filepath"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
)

func TestDefaultDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	Reload()

	assert.NotEqual(t, Home, "", "home is empty")
	assert.Equal(t, ConfigHome, filepath.Join(Home, ".config"), "config home mismatch")
	assert.Equal(t, DataHome, filepath.Join(Home, ".local", "share"), "data home mismatch")
	assert.Equal(t, AppConfig(), filepath.Join(Home, ".config", "offcourse"), "app config dir mismatch")
	assert.Equal(t, AppData(), filepath.Join(Home, ".local", "share", "offcourse"), "app data dir mismatch")
}

func TestCustomDirs(t *testing.T) {
	testCases := []struct {
		envKey   string
		envVal   string
		got      *string
		expected string
	}{
		{
			envKey:   "XDG_CONFIG_HOME",
			envVal:   "/tmp/custom/config",
			got:      &ConfigHome,
			expected: "/tmp/custom/config",
		},
		{
			envKey:   "XDG_DATA_HOME",
			envVal:   "/tmp/custom/data",
			got:      &DataHome,
			expected: "/tmp/custom/data",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.envKey, func(t *testing.T) {
			t.Setenv(tc.envKey, tc.envVal)
			Reload()

			assert.Equal(t, *tc.got, tc.expected, "result mismatch")
		})
	}
}
