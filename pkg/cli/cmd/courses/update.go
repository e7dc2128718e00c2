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

package courses

import (
	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/offcourse/offcourse/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var titleFlag string

func newUpdateCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update <id>",
		Aliases: []string{"u"},
		Short:   "Update a course",
		Example: "\n  offcourse courses update 8d2c1e --title \"Go Basics, 2nd edition\"",
		Args:    exactArgs(1),
		RunE:    newUpdateRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&titleFlag, "title", "t", "", "the new title")

	return cmd
}

func newUpdateRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := validate.ID(id); err != nil {
			return errors.Wrap(err, "invalid course id")
		}
		if !cmd.Flags().Changed("title") {
			return errors.New("nothing to update")
		}
		if err := validate.Title(titleFlag); err != nil {
			return errors.Wrap(err, "invalid title")
		}

		course, err := client.GetCourse(ctx, id)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		course.Title = titleFlag

		updated, err := client.UpdateCourse(ctx, course)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Success("updated the course\n")
		output.CourseInfo(color.Output, updated)

		return nil
	}
}
