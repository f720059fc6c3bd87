// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/cfn-update/cfn-update/cmd/cfn-update/template"
	"github.com/cfn-update/cfn-update/internal/pkg/cli/group"
	"github.com/spf13/cobra"
)

type shellCompleter interface {
	GenBashCompletion(w io.Writer) error
	GenZshCompletion(w io.Writer) error
	GenFishCompletion(w io.Writer, includeDesc bool) error
}

type completionOpts struct {
	Shell string // must be "bash", "zsh" or "fish"

	w         io.Writer
	completer shellCompleter
}

// Validate returns an error if the shell is not supported.
func (opts *completionOpts) Validate() error {
	switch opts.Shell {
	case "bash", "zsh", "fish":
		return nil
	}
	return errors.New("shell must be bash, zsh or fish")
}

// Execute writes the completion code to the writer.
// This method assumes that Validate() was called prior to invocation.
func (opts *completionOpts) Execute() error {
	switch opts.Shell {
	case "bash":
		return opts.completer.GenBashCompletion(opts.w)
	case "zsh":
		return opts.completer.GenZshCompletion(opts.w)
	default:
		return opts.completer.GenFishCompletion(opts.w, true)
	}
}

// BuildCompletionCmd returns the command to output shell completion code for the specified shell.
func BuildCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	opts := &completionOpts{}
	cmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Output shell completion code.",
		Long: `Output shell completion code for bash, zsh or fish.
The code must be evaluated to provide interactive completion of commands.`,
		Example: `
  Install zsh completion
  /code $ source <(cfn-update completion zsh)
  /code $ cfn-update completion zsh > "${fpath[1]}/_cfn-update" # to autoload on startup

  Install bash completion on linux
  /code $ source <(cfn-update completion bash)
  /code $ cfn-update completion bash > cfn-update.sh
  /code $ sudo mv cfn-update.sh /etc/bash_completion.d/cfn-update

  Install fish completion
  /code $ cfn-update completion fish > ~/.config/fish/completions/cfn-update.fish`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Shell = args[0]
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.w = os.Stdout
			opts.completer = rootCmd
			return opts.Execute()
		},
		Annotations: map[string]string{
			"group": group.Settings,
		},
	}
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
