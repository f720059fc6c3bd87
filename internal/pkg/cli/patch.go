// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/cfn-update/cfn-update/cmd/cfn-update/template"
	"github.com/cfn-update/cfn-update/internal/pkg/cli/group"
	"github.com/cfn-update/cfn-update/internal/pkg/override"
	"github.com/cfn-update/cfn-update/internal/pkg/term/color"
	"github.com/cfn-update/cfn-update/internal/pkg/term/prompt"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

const patchConfirmHelp = "The templates are rewritten in place. Run the command with --dry-run to preview the changes first."

type patchVars struct {
	file             string
	skipConfirmation bool
}

type patchOpts struct {
	patchVars
	walkOpts

	prompt prompter
	patch  *override.Patch
}

func newPatchOpts(walk walkVars, vars patchVars) *patchOpts {
	return &patchOpts{
		patchVars: vars,
		walkOpts:  newWalkOpts(walk),
		prompt:    prompt.New(),
	}
}

// Validate returns an error if the configuration file, the exclude patterns, or the patch document are invalid.
func (o *patchOpts) Validate() error {
	if err := o.walkOpts.validate(); err != nil {
		return err
	}
	patch, err := override.NewPatch(o.file, o.fs)
	if err != nil {
		return err
	}
	o.patch = patch
	return nil
}

// Ask confirms that the templates should be rewritten unless it is a dry run.
func (o *patchOpts) Ask() error {
	if o.skipConfirmation || o.DryRun {
		return nil
	}
	confirmed, err := o.prompt.Confirm(
		fmt.Sprintf("Apply %s from %s to the templates under %s?",
			english.Plural(o.patch.Operations(), "operation", ""),
			color.HighlightUserInput(o.file),
			strings.Join(o.paths, ", ")),
		patchConfirmHelp,
		prompt.WithTrueDefault(),
		prompt.WithFinalMessage("Apply patch:"))
	if err != nil {
		return fmt.Errorf("confirm patch: %w", err)
	}
	if !confirmed {
		return errPatchCancelled
	}
	return nil
}

// Execute applies the patch to every template under the paths.
func (o *patchOpts) Execute() error {
	summary, err := o.update(o.patch)
	if err != nil {
		return err
	}
	o.logSummary(summary)
	return nil
}

// BuildPatchCmd builds the command to apply a YAML patch document to templates.
func BuildPatchCmd() *cobra.Command {
	walk, vars := walkVars{}, patchVars{}
	cmd := &cobra.Command{
		Use:   "patch PATH...",
		Short: "Apply a list of YAML patch operations to CloudFormation templates.",
		Long: `Apply a list of YAML patch operations to every CloudFormation template under the paths.
Supported operations are add, remove and replace. Paths are JSON pointers, for example /Resources/Bucket/Properties.`,
		Example: `
  Add a tag to every template under the stacks directory.
  /code $ cfn-update patch --file patches.yml stacks/
  Preview the changes without writing them.
  /code $ cfn-update patch --file patches.yml --dry-run stacks/ templates/queue.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			walk.paths = args
			return run(newPatchOpts(walk, vars))
		}),
		Annotations: map[string]string{
			"group": group.Update,
		},
	}
	cmd.Flags().StringVarP(&vars.file, patchFileFlag, patchFileFlagShort, "", patchFileFlagDescription)
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	addWalkFlags(cmd.Flags(), &walk)
	_ = cmd.MarkFlagRequired(patchFileFlag)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
