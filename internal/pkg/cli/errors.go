// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cfn-update/cfn-update/internal/pkg/term/color"
	"github.com/dustin/go-humanize/english"
)

var errPatchCancelled = errors.New("patch cancelled - no changes made")

type errInvalidExclude struct {
	pattern string
	parent  error
}

func (e *errInvalidExclude) Error() string {
	return fmt.Sprintf("exclude pattern %s is invalid: %v", color.HighlightUserInput(e.pattern), e.parent)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errInvalidExclude) RecommendActions() string {
	return fmt.Sprintf("Patterns follow the syntax of %s, for example %s.",
		color.HighlightCode("filepath.Match"), color.HighlightCode(`--exclude "*.json"`))
}

type errProfileNotFound struct {
	name     string
	profiles []string
}

func (e *errProfileNotFound) Error() string {
	return fmt.Sprintf("profile %s is not defined in the AWS config file", color.HighlightUserInput(e.name))
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errProfileNotFound) RecommendActions() string {
	if len(e.profiles) == 0 {
		return fmt.Sprintf("Run %s to create a named profile.", color.HighlightCode("aws configure --profile "+e.name))
	}
	quoted := make([]string, len(e.profiles))
	for i, name := range e.profiles {
		quoted[i] = color.HighlightUserInput(name)
	}
	return fmt.Sprintf("Use one of the available profiles: %s.", english.WordSeries(quoted, "or"))
}

// errValidationFailed is returned once every template was sent to CloudFormation and some were rejected.
type errValidationFailed struct {
	failed []string
	total  int
}

func (e *errValidationFailed) Error() string {
	return fmt.Sprintf("%s of %s failed validation: %s",
		english.Plural(len(e.failed), "template", ""),
		english.Plural(e.total, "template", ""),
		strings.Join(e.failed, ", "))
}

// ExitCode returns 1 so that the process fails.
func (e *errValidationFailed) ExitCode() int {
	return 1
}
