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

var addExample = `
 offcourse courses add "Go Basics" /home/alice/courses/go-basics`

func newAddCmd(ctx context.OffCourseCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "add <title> <path>",
		Aliases: []string{"a"},
		Short:   "Add a course for a directory on the server",
		Example: addExample,
		Args:    exactArgs(2),
		RunE:    newAddRun(ctx),
	}
}

func newAddRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		title, path := args[0], args[1]
		if err := validate.Title(title); err != nil {
			return errors.Wrap(err, "invalid title")
		}
		if err := validate.Path(path); err != nil {
			return errors.Wrap(err, "invalid path")
		}

		course, err := client.AddCourse(ctx, title, path)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Successf("added %s\n", course.Title)
		output.CourseInfo(color.Output, course)

		return nil
	}
}
