// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information
package version

// Version is this binary's version. Set with linker flags when building cfn-update.
var Version string = "dev"

// Platform is this binary's platform. Set with linker flags when building cfn-update.
var Platform string
