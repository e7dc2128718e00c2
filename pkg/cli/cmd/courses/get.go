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
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/offcourse/offcourse/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newGetCmd(ctx context.OffCourseCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Print a course",
		Example: "\n  offcourse courses get 8d2c1e",
		Args:    exactArgs(1),
		RunE:    newGetRun(ctx),
	}
}

func newGetRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := validate.ID(id); err != nil {
			return errors.Wrap(err, "invalid course id")
		}

		course, err := client.GetCourse(ctx, id)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		output.CourseInfo(color.Output, course)

		return nil
	}
}
