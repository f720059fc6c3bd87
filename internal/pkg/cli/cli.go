// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the cfn-update subcommands.
package cli

import (
	"os"
	"path/filepath"

	"github.com/cfn-update/cfn-update/internal/pkg/term/log"
	"github.com/cfn-update/cfn-update/internal/pkg/updater"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}

func run(cmd actionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Ask(); err != nil {
		return err
	}
	return cmd.Execute()
}

// walkVars holds the flag values shared by every command that walks templates.
type walkVars struct {
	settings
	configPath string
	paths      []string
}

// walkOpts holds the dependencies shared by every command that walks templates.
type walkOpts struct {
	walkVars

	fs         afero.Fs
	newUpdater func(hook updater.TemplateUpdater, opts ...updater.Option) templateUpdater
}

func newWalkOpts(vars walkVars) walkOpts {
	return walkOpts{
		walkVars: vars,
		fs:       afero.NewOsFs(),
		newUpdater: func(hook updater.TemplateUpdater, opts ...updater.Option) templateUpdater {
			return updater.New(hook, opts...)
		},
	}
}

// validate loads the configuration file and checks the exclude patterns.
func (o *walkOpts) validate() error {
	if err := o.settings.load(o.fs, o.configPath); err != nil {
		return err
	}
	for _, pattern := range o.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return &errInvalidExclude{pattern: pattern, parent: err}
		}
	}
	return nil
}

// update walks the paths with the hook and returns a summary of the run.
func (o *walkOpts) update(hook updater.TemplateUpdater) (updater.Summary, error) {
	u := o.newUpdater(hook,
		updater.WithFS(o.fs),
		updater.WithDryRun(o.DryRun),
		updater.WithVerbose(o.Verbose),
		updater.WithExcludes(o.Exclude...))
	if err := u.Update(o.paths...); err != nil {
		return updater.Summary{}, err
	}
	return u.Summary(), nil
}

// logSummary reports how many templates were, or would be, updated.
func (o *walkOpts) logSummary(summary updater.Summary) {
	updated := english.Plural(len(summary.Updated), "template", "")
	scanned := english.Plural(summary.Templates, "template", "")
	switch {
	case len(summary.Updated) == 0:
		log.Infof("No changes to %s.\n", scanned)
	case o.DryRun:
		log.Infof("%s of %s would be updated.\n", updated, scanned)
	default:
		log.Successf("Updated %s of %s.\n", updated, scanned)
	}
}
