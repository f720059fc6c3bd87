// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package updater

import "fmt"

// ErrNotFileOrDir occurs when a path given to an Updater is neither a file nor a directory.
type ErrNotFileOrDir struct {
	Path string
}

func (e *ErrNotFileOrDir) Error() string {
	return fmt.Sprintf("%s is not a file or directory", e.Path)
}

// ExitCode returns 1 so that the process fails.
func (e *ErrNotFileOrDir) ExitCode() int {
	return 1
}
