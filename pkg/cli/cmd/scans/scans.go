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

// Package scans implements the commands queueing and inspecting course scans
package scans

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

// NewCmd returns a new scans command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scans",
		Short: "Queue and inspect course scans",
	}

	get := &cobra.Command{
		Use:   "get <courseId>",
		Short: "Print the scan of a course",
		Args:  cobra.ExactArgs(1),
		RunE:  newRun(ctx, false),
	}

	add := &cobra.Command{
		Use:   "add <courseId>",
		Short: "Queue a scan of a course",
		Args:  cobra.ExactArgs(1),
		RunE:  newRun(ctx, true),
	}

	cmd.AddCommand(get, add)

	return cmd
}

func newRun(ctx context.OffCourseCtx, queue bool) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		courseID := args[0]
		if err := validate.ID(courseID); err != nil {
			return errors.Wrap(err, "invalid course id")
		}

		get := client.GetScan
		if queue {
			get = client.AddScan
		}

		scan, err := get(ctx, courseID)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		if queue {
			log.Success("scan queued\n")
		}
		output.ScanInfo(color.Output, scan)

		return nil
	}
}
