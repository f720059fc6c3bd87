// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/cfn-update/cfn-update/internal/pkg/aws/cloudformation"
	"github.com/cfn-update/cfn-update/internal/pkg/term/prompt"
	"github.com/cfn-update/cfn-update/internal/pkg/updater"
)

// actionCommand is the interface that every command that walks templates implements.
type actionCommand interface {
	// Validate returns an error if a flag's value is invalid.
	Validate() error

	// Ask prompts for flag values that are required but not passed in.
	Ask() error

	// Execute runs the command after collecting all required options.
	Execute() error
}

type prompter interface {
	Confirm(message, help string, promptCfgs ...prompt.PromptConfig) (bool, error)
}

// progress is the interface to inform the user that a long operation is taking place.
type progress interface {
	// Start starts displaying progress with a label.
	Start(label string)
	// Stop ends displaying progress with a label.
	Stop(label string)
}

type templateUpdater interface {
	Update(paths ...string) error
	Summary() updater.Summary
}

type templateValidator interface {
	ValidateTemplate(body string) (*cloudformation.TemplateSummary, error)
}

type profileChecker interface {
	Has(name string) bool
	Names() []string
}
