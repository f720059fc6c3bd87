// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package updater

import "github.com/cfn-update/cfn-update/internal/pkg/template"

// Noop represents a hook that leaves templates unchanged.
type Noop struct{}

// UpdateTemplate does nothing.
func (Noop) UpdateTemplate(_ *template.Document) error {
	return nil
}
