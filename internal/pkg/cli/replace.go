// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/cfn-update/cfn-update/cmd/cfn-update/template"
	"github.com/cfn-update/cfn-update/internal/pkg/cli/group"
	"github.com/cfn-update/cfn-update/internal/pkg/override"
	"github.com/cfn-update/cfn-update/internal/pkg/term/log"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

type replaceVars struct {
	oldValue string
	newValue string
	key      string
}

type replaceOpts struct {
	replaceVars
	walkOpts

	replace *override.Replace
}

func newReplaceOpts(walk walkVars, vars replaceVars) *replaceOpts {
	return &replaceOpts{
		replaceVars: vars,
		walkOpts:    newWalkOpts(walk),
	}
}

// Validate returns an error if the configuration file or the exclude patterns are invalid, or if there is no value to look for.
func (o *replaceOpts) Validate() error {
	if err := o.walkOpts.validate(); err != nil {
		return err
	}
	replace, err := override.NewReplace(o.oldValue, o.newValue, o.key)
	if err != nil {
		return err
	}
	o.replace = replace
	return nil
}

// Ask is a no-op for this command.
func (o *replaceOpts) Ask() error {
	return nil
}

// Execute replaces the values in every template under the paths.
func (o *replaceOpts) Execute() error {
	summary, err := o.update(o.replace)
	if err != nil {
		return err
	}
	if n := o.replace.Replaced(); n > 0 {
		verb := "Replaced"
		if o.DryRun {
			verb = "Would replace"
		}
		log.Infof("%s %s across %s.\n", verb,
			english.Plural(n, "value", ""), english.Plural(len(summary.Updated), "template", ""))
	}
	o.logSummary(summary)
	return nil
}

// BuildReplaceCmd builds the command to replace string values in templates.
func BuildReplaceCmd() *cobra.Command {
	walk, vars := walkVars{}, replaceVars{}
	cmd := &cobra.Command{
		Use:   "replace PATH...",
		Short: "Replace string values in CloudFormation templates.",
		Long: `Replace every string value equal to --old with --new in the CloudFormation templates under the paths.
Mapping keys are never replaced.`,
		Example: `
  Upgrade the runtime of every Lambda function.
  /code $ cfn-update replace --old python3.8 --new python3.12 --key Runtime stacks/
  Rename an export everywhere.
  /code $ cfn-update replace --old legacy-vpc-id --new shared-vpc-id .`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			walk.paths = args
			return run(newReplaceOpts(walk, vars))
		}),
		Annotations: map[string]string{
			"group": group.Update,
		},
	}
	cmd.Flags().StringVar(&vars.oldValue, oldValueFlag, "", oldValueFlagDescription)
	cmd.Flags().StringVar(&vars.newValue, newValueFlag, "", newValueFlagDescription)
	cmd.Flags().StringVar(&vars.key, keyFlag, "", keyFlagDescription)
	addWalkFlags(cmd.Flags(), &walk)
	_ = cmd.MarkFlagRequired(oldValueFlag)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
