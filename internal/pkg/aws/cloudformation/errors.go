// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrTemplateInvalid occurs when CloudFormation rejects a template.
type ErrTemplateInvalid struct {
	Reason string
}

func (e *ErrTemplateInvalid) Error() string {
	return fmt.Sprintf("template is invalid: %s", e.Reason)
}

// ErrTemplateBodyTooLarge occurs when a template is too large to be validated inline.
type ErrTemplateBodyTooLarge struct {
	Size int
}

func (e *ErrTemplateBodyTooLarge) Error() string {
	return fmt.Sprintf("template body of %s exceeds the limit of %s for inline templates",
		humanize.Bytes(uint64(e.Size)), humanize.Bytes(MaxTemplateBodySize))
}
