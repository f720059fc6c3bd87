//go:build !windows

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import "github.com/fatih/color"

// Markers printed in front of a template when an operation on it ends.
var (
	SuccessMarker = color.HiGreenString("✔")
	ErrorMarker   = color.HiRedString("✘")
	SkipMarker    = color.YellowString("-")
)
