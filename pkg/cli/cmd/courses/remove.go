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
	"fmt"

	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/ui"
	"github.com/offcourse/offcourse/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var yesFlag bool

func newRemoveCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "d"},
		Short:   "Remove a course",
		Example: "\n  offcourse courses rm 8d2c1e",
		Args:    exactArgs(1),
		RunE:    newRemoveRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation")

	return cmd
}

func newRemoveRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := validate.ID(id); err != nil {
			return errors.Wrap(err, "invalid course id")
		}

		course, err := client.GetCourse(ctx, id)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		if !yesFlag {
			ok, err := ui.Confirm(fmt.Sprintf("delete course '%s'?", course.Title), false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !ok {
				log.Warnf("aborted by user\n")
				return nil
			}
		}

		if _, err := client.DeleteCourse(ctx, id); err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Successf("removed %s\n", course.Title)

		return nil
	}
}
