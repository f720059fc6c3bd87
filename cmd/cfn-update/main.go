// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/cfn-update/cfn-update/cmd/cfn-update/template"
	"github.com/cfn-update/cfn-update/internal/pkg/cli"
	"github.com/cfn-update/cfn-update/internal/pkg/term/color"
	"github.com/cfn-update/cfn-update/internal/pkg/term/log"
	"github.com/cfn-update/cfn-update/internal/pkg/version"
	"github.com/spf13/cobra"
)

const shortDescription = "Find and rewrite AWS CloudFormation templates in bulk."

type actionRecommender interface {
	RecommendActions() string
}

type exitCodeError interface {
	ExitCode() int
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		var ac actionRecommender
		var exitCodeErr exitCodeError

		log.Errorln(err.Error())
		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		if errors.As(err, &exitCodeErr) {
			os.Exit(exitCodeErr.ExitCode())
		}
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cfn-update",
		Short: shortDescription,
		Example: `
  Displays the help menu for the "patch" command.
  /code $ cfn-update patch --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	// Sets version for --version flag. Version command gives more detailed
	// version information.
	cmd.Version = version.Version
	cmd.SetVersionTemplate("cfn-update version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Update Templates" command group.
	cmd.AddCommand(cli.BuildPatchCmd())
	cmd.AddCommand(cli.BuildReplaceCmd())

	// "Inspect" command group.
	cmd.AddCommand(cli.BuildListCmd())
	cmd.AddCommand(cli.BuildValidateCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())
	cmd.AddCommand(cli.BuildCompletionCmd(cmd))

	cmd.SetUsageTemplate(template.RootUsage)
	return cmd
}
