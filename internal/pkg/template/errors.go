// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"errors"
	"fmt"
)

var (
	errEmptyDocument     = errors.New("document is empty")
	errMultipleDocuments = errors.New("contains more than one YAML document")
)

// ErrUnsupportedExtension occurs when a file is neither a JSON nor a YAML file.
type ErrUnsupportedExtension struct {
	Filename string
}

func (e *ErrUnsupportedExtension) Error() string {
	return fmt.Sprintf("%s has no %s, %s or %s extension", e.Filename, FormatJSON, FormatYAML, FormatYML)
}
