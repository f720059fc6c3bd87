// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Long flag names.
const (
	// Common flags.
	dryRunFlag  = "dry-run"
	verboseFlag = "verbose"
	excludeFlag = "exclude"
	configFlag  = "config"
	yesFlag     = "yes"

	// Command specific flags.
	patchFileFlag = "file"
	oldValueFlag  = "old"
	newValueFlag  = "new"
	keyFlag       = "key"
	profileFlag   = "profile"
	regionFlag    = "region"
)

// Short flag names.
// A short flag only exists if the flag is mandatory by the command.
const (
	verboseFlagShort   = "v"
	patchFileFlagShort = "f"
)

// Descriptions for flags.
const (
	yesFlagDescription     = "Skips confirmation prompt."
	verboseFlagDescription = "Log every file that is skipped or written."
	configFlagDescription  = "Path to a YAML configuration file.\nDefaults to .cfn-update.yml in the working directory."

	patchFileFlagDescription = "Path to a YAML file with a list of add, remove or replace operations."
	oldValueFlagDescription  = "String value to look for."
	newValueFlagDescription  = "String value to write instead."
	keyFlagDescription       = `Only replace values under this mapping key, for example "Runtime".`
	profileFlagDescription   = "Name of the AWS profile used to call CloudFormation."
	regionFlagDescription    = "AWS region used to call CloudFormation."
)

var (
	dryRunFlagDescription = fmt.Sprintf(`Print the changes as a diff instead of writing them.
Can also be set with "dryRun: true" in %s.`, defaultConfigFile)
	excludeFlagDescription = `Optional. Skip files and directories whose name matches the pattern.
Can be repeated, for example --exclude "*.json" --exclude node_modules.`
)

// addWalkFlags registers the flags shared by every command that walks templates.
func addWalkFlags(flags *pflag.FlagSet, vars *walkVars) {
	flags.BoolVar(&vars.DryRun, dryRunFlag, false, dryRunFlagDescription)
	flags.BoolVarP(&vars.Verbose, verboseFlag, verboseFlagShort, false, verboseFlagDescription)
	flags.StringArrayVar(&vars.Exclude, excludeFlag, nil, excludeFlagDescription)
	flags.StringVar(&vars.configPath, configFlag, "", configFlagDescription)
}
