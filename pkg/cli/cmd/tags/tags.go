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

// Package tags implements the commands managing tags
package tags

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/offcourse/offcourse/pkg/cli/ui"
	"github.com/offcourse/offcourse/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * List every tag with its courses
 offcourse tags ls --all --expand

 * Look up a tag by name
 offcourse tags get GoLang --byName --insensitive

 * Rename a tag
 offcourse tags rename 41ab07 golang`

var (
	allFlag         bool
	expandFlag      bool
	filterFlag      string
	orderByFlag     string
	pageFlag        int
	perPageFlag     int
	byNameFlag      bool
	insensitiveFlag bool
	yesFlag         bool
)

// NewCmd returns a new tags command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"t"},
		Short:   "Manage tags",
		Example: example,
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE:  newLsRun(ctx),
	}
	lf := ls.Flags()
	lf.BoolVar(&allFlag, "all", false, "list every page")
	lf.BoolVar(&expandFlag, "expand", false, "include the courses of each tag")
	lf.StringVar(&filterFlag, "filter", "", "only list tags containing this text")
	lf.StringVar(&orderByFlag, "orderBy", "", "sort order, for instance 'tag asc'")
	lf.IntVar(&pageFlag, "page", 0, "page to list")
	lf.IntVar(&perPageFlag, "perPage", 0, "number of tags per page")

	get := &cobra.Command{
		Use:   "get <idOrName>",
		Short: "Print a tag",
		Args:  cobra.ExactArgs(1),
		RunE:  newGetRun(ctx),
	}
	gf := get.Flags()
	gf.BoolVar(&byNameFlag, "byName", false, "look the tag up by name")
	gf.BoolVar(&insensitiveFlag, "insensitive", false, "match the name case-insensitively")
	gf.BoolVar(&expandFlag, "expand", false, "include the courses of the tag")

	add := &cobra.Command{
		Use:   "add <tag>",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(1),
		RunE:  newAddRun(ctx),
	}

	rename := &cobra.Command{
		Use:   "rename <id> <tag>",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE:  newRenameRun(ctx),
	}

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a tag",
		Args:    cobra.ExactArgs(1),
		RunE:    newRemoveRun(ctx),
	}
	rm.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation")

	cmd.AddCommand(ls, get, add, rename, rm)

	return cmd
}

func newLsRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		params := &client.TagsParams{
			PageParams: client.PageParams{Page: pageFlag, PerPage: perPageFlag},
			OrderBy:    orderByFlag,
			Filter:     filterFlag,
			Expand:     expandFlag,
		}

		if allFlag {
			tags, err := client.GetAllTags(ctx, params)
			if err != nil {
				return infra.CheckSession(ctx, err)
			}

			if len(tags) == 0 {
				log.Info("no tags\n")
				return nil
			}

			output.TagList(color.Output, tags)
			return nil
		}

		page, err := client.GetTags(ctx, params)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		output.TagList(color.Output, page.Items)
		output.PageFooter(color.Output, page)

		return nil
	}
}

func newGetRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := validate.ID(key); err != nil {
			return errors.Wrap(err, "invalid tag")
		}

		tag, err := client.GetTag(ctx, key, &client.TagParams{ByName: byNameFlag, Insensitive: insensitiveFlag, Expand: expandFlag})
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		output.TagInfo(color.Output, tag)

		return nil
	}
}

func newAddRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validate.Tag(name); err != nil {
			return errors.Wrap(err, "invalid tag")
		}

		tag, err := client.AddTag(ctx, name)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Successf("added %s\n", tag.Tag)

		return nil
	}
}

func newRenameRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id, name := args[0], args[1]
		if err := validate.ID(id); err != nil {
			return errors.Wrap(err, "invalid tag id")
		}
		if err := validate.Tag(name); err != nil {
			return errors.Wrap(err, "invalid tag")
		}

		tag, err := client.GetTag(ctx, id, nil)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		old := tag.Tag
		tag.Tag = name

		updated, err := client.UpdateTag(ctx, tag)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Successf("renamed %s to %s\n", old, updated.Tag)

		return nil
	}
}

func newRemoveRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := validate.ID(id); err != nil {
			return errors.Wrap(err, "invalid tag id")
		}

		tag, err := client.GetTag(ctx, id, nil)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		if !yesFlag {
			question := fmt.Sprintf("delete tag '%s' from %d courses?", tag.Tag, tag.CourseCount)
			ok, err := ui.Confirm(question, false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !ok {
				log.Warnf("aborted by user\n")
				return nil
			}
		}

		if _, err := client.DeleteTag(ctx, id); err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Successf("removed %s\n", tag.Tag)

		return nil
	}
}
