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

func newTagsCmd(ctx context.OffCourseCtx) *cobra.Command {
	return &cobra.Command{
		Use:   "tags <id>",
		Short: "List the tags of a course",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := validate.ID(id); err != nil {
				return errors.Wrap(err, "invalid course id")
			}

			tags, err := client.GetCourseTags(ctx, id)
			if err != nil {
				return infra.CheckSession(ctx, err)
			}

			if len(tags) == 0 {
				log.Info("no tags\n")
				return nil
			}

			output.CourseTags(color.Output, tags)

			return nil
		},
	}
}

func newTagCmd(ctx context.OffCourseCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "tag <id> <tag>",
		Short:   "Tag a course",
		Example: "\n  offcourse courses tag 8d2c1e golang",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, tag := args[0], args[1]
			if err := validate.ID(id); err != nil {
				return errors.Wrap(err, "invalid course id")
			}
			if err := validate.Tag(tag); err != nil {
				return errors.Wrap(err, "invalid tag")
			}

			ct, err := client.AddCourseTag(ctx, id, tag)
			if err != nil {
				return infra.CheckSession(ctx, err)
			}

			log.Successf("tagged with %s\n", ct.Tag)

			return nil
		},
	}
}

func newUntagCmd(ctx context.OffCourseCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "untag <id> <tagId>",
		Short:   "Remove a tag from a course",
		Example: "\n  offcourse courses untag 8d2c1e 41ab07",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, tagID := args[0], args[1]
			if err := validate.ID(id); err != nil {
				return errors.Wrap(err, "invalid course id")
			}
			if err := validate.ID(tagID); err != nil {
				return errors.Wrap(err, "invalid tag id")
			}

			if _, err := client.DeleteCourseTag(ctx, id, tagID); err != nil {
				return infra.CheckSession(ctx, err)
			}

			log.Success("removed the tag\n")

			return nil
		},
	}
}
