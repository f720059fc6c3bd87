// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package color decides whether cfn-update writes colored output and holds the colors it uses.
package color

import (
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
)

// colorEnvVar overrides terminal detection when set to a boolean, for example COLOR=false in CI logs.
const colorEnvVar = "COLOR"

var lookupEnv = os.LookupEnv

// Faint renders secondary details such as template descriptions and capabilities.
var Faint = color.New(color.Faint)

var (
	userInput = color.New(color.FgHiCyan)
	code      = color.New(color.FgHiMagenta)
	help      = color.New(color.FgHiBlack)
)

// DisableColorBasedOnEnvVar turns colors on or off for both the logs and the prompts.
// Without a boolean COLOR variable, prompts follow the terminal detection of fatih/color.
func DisableColorBasedOnEnvVar() {
	value, ok := lookupEnv(colorEnvVar)
	if !ok {
		core.DisableColor = color.NoColor
		return
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return
	}
	color.NoColor = !enabled
	core.DisableColor = !enabled
}

// HighlightUserInput colors a value that came from a flag or the configuration file.
func HighlightUserInput(s string) string {
	return userInput.Sprint(s)
}

// HighlightCode wraps s in backticks and colors it as a command to run.
func HighlightCode(s string) string {
	return code.Sprintf("`%s`", s)
}

// Help colors auxiliary text under a prompt.
func Help(s string) string {
	return help.Sprint(s)
}
