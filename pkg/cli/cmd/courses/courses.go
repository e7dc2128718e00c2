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

// Package courses implements the commands managing courses
package courses

import (
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCmd returns a new courses command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"c"},
		Short:   "Manage courses",
	}

	cmd.AddCommand(
		newLsCmd(ctx),
		newGetCmd(ctx),
		newAddCmd(ctx),
		newUpdateCmd(ctx),
		newRemoveCmd(ctx),
		newTagsCmd(ctx),
		newTagCmd(ctx),
		newUntagCmd(ctx),
	)

	return cmd
}

// parseProgress maps a case-insensitive progress name to its filter value
func parseProgress(s string) (models.CourseProgress, error) {
	if s == "" {
		return "", nil
	}

	for _, p := range models.CourseProgresses {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}

	return "", errors.Errorf("invalid progress '%s'", s)
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New("Incorrect number of argument")
		}

		return nil
	}
}
