// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/cfn-update/cfn-update/cmd/cfn-update/template"
	"github.com/cfn-update/cfn-update/internal/pkg/aws/cloudformation"
	"github.com/cfn-update/cfn-update/internal/pkg/aws/profile"
	"github.com/cfn-update/cfn-update/internal/pkg/aws/sessions"
	"github.com/cfn-update/cfn-update/internal/pkg/cli/group"
	"github.com/cfn-update/cfn-update/internal/pkg/term/color"
	"github.com/cfn-update/cfn-update/internal/pkg/term/spinner"
	cfntemplate "github.com/cfn-update/cfn-update/internal/pkg/template"
	"github.com/spf13/cobra"
)

// templateChecker is a read-only hook that sends every template to CloudFormation.
type templateChecker struct {
	validator templateValidator
	prog      progress

	checked int
	failed  []string
}

// UpdateTemplate validates the template without modifying it.
// Templates rejected by CloudFormation are recorded, any other error aborts the walk.
func (c *templateChecker) UpdateTemplate(doc *cfntemplate.Document) error {
	body, err := doc.Marshal()
	if err != nil {
		return err
	}
	c.checked++
	c.prog.Start(fmt.Sprintf("Validating %s", doc.Filename))
	summary, err := c.validator.ValidateTemplate(string(body))
	if err != nil {
		var errInvalid *cloudformation.ErrTemplateInvalid
		var errTooLarge *cloudformation.ErrTemplateBodyTooLarge
		if !errors.As(err, &errInvalid) && !errors.As(err, &errTooLarge) {
			c.prog.Stop(fmt.Sprintf("%s %s", color.ErrorMarker, doc.Filename))
			return err
		}
		c.failed = append(c.failed, doc.Filename)
		c.prog.Stop(fmt.Sprintf("%s %s: %v", color.ErrorMarker, doc.Filename, err))
		return nil
	}
	label := fmt.Sprintf("%s %s", color.SuccessMarker, doc.Filename)
	if len(summary.Capabilities) > 0 {
		label = fmt.Sprintf("%s %s", label, color.Faint.Sprintf("requires %s", strings.Join(summary.Capabilities, ", ")))
	}
	c.prog.Stop(label)
	return nil
}

type validateVars struct {
	profile string
	region  string
}

type validateOpts struct {
	validateVars
	walkOpts

	prog          progress
	profileConfig func() (profileChecker, error)
	newValidator  func() (templateValidator, error)
}

func newValidateOpts(walk walkVars, vars validateVars) *validateOpts {
	return &validateOpts{
		validateVars: vars,
		walkOpts:     newWalkOpts(walk),
		prog:         spinner.New(),
		profileConfig: func() (profileChecker, error) {
			return profile.NewConfig()
		},
		newValidator: func() (templateValidator, error) {
			sess, err := newSession(sessions.NewProvider(), vars.profile, vars.region)
			if err != nil {
				return nil, err
			}
			return cloudformation.New(sess), nil
		},
	}
}

func newSession(provider *sessions.Provider, profileName, region string) (*session.Session, error) {
	switch {
	case profileName != "" && region != "":
		return provider.FromProfileWithRegion(profileName, region)
	case profileName != "":
		return provider.FromProfile(profileName)
	case region != "":
		return provider.DefaultWithRegion(region)
	default:
		return provider.Default()
	}
}

// Validate returns an error if the configuration file or the exclude patterns are invalid,
// or if the profile is not defined in the AWS config file.
func (o *validateOpts) Validate() error {
	if err := o.walkOpts.validate(); err != nil {
		return err
	}
	if o.profile == "" {
		return nil
	}
	cfg, err := o.profileConfig()
	if err != nil {
		return err
	}
	if !cfg.Has(o.profile) {
		return &errProfileNotFound{
			name:     o.profile,
			profiles: cfg.Names(),
		}
	}
	return nil
}

// Ask is a no-op for this command.
func (o *validateOpts) Ask() error {
	return nil
}

// Execute validates every template under the paths with CloudFormation.
func (o *validateOpts) Execute() error {
	validator, err := o.newValidator()
	if err != nil {
		return err
	}
	checker := &templateChecker{
		validator: validator,
		prog:      o.prog,
	}
	if _, err := o.update(checker); err != nil {
		return err
	}
	if len(checker.failed) > 0 {
		return &errValidationFailed{
			failed: checker.failed,
			total:  checker.checked,
		}
	}
	return nil
}

// BuildValidateCmd builds the command to validate templates with CloudFormation.
func BuildValidateCmd() *cobra.Command {
	walk, vars := walkVars{}, validateVars{}
	cmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "Validate CloudFormation templates with the ValidateTemplate API.",
		Long: fmt.Sprintf(`Validate every CloudFormation template under the paths with the ValidateTemplate API.
Templates larger than %d bytes cannot be sent inline and are reported as invalid.`, cloudformation.MaxTemplateBodySize),
		Example: `
  Validate the templates under the stacks directory with the "prod" profile.
  /code $ cfn-update validate --profile prod stacks/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			walk.paths = args
			return run(newValidateOpts(walk, vars))
		}),
		Annotations: map[string]string{
			"group": group.Inspect,
		},
	}
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	addWalkFlags(cmd.Flags(), &walk)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
