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

// Package root defines the root command of offcourse
package root

import (
	"github.com/spf13/cobra"
)

// Names of the persistent flags. They are read before the context is
// initialized, so they are registered here only for help and validation.
const (
	FlagDBPath = "dbPath"
	FlagMode   = "mode"
	FlagOrigin = "origin"
)

var dbPathFlag, modeFlag, originFlag string

var root = &cobra.Command{
	Use:           "offcourse",
	Short:         "Off Course - manage your courses from the command line",
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	f := root.PersistentFlags()
	f.StringVar(&dbPathFlag, FlagDBPath, "", "the path to the database file (defaults to standard location)")
	f.StringVar(&modeFlag, FlagMode, "", "how API URLs are resolved: production or development (defaults to value in config)")
	f.StringVar(&originFlag, FlagOrigin, "", "the origin serving the API in production mode")
}

// GetRoot returns the root command
func GetRoot() *cobra.Command {
	return root
}

// Register adds a new command
func Register(cmd *cobra.Command) {
	root.AddCommand(cmd)
}

// Execute runs the main command
func Execute() error {
	return root.Execute()
}
