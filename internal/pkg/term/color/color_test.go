// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"testing"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestDisableColorBasedOnEnvVar(t *testing.T) {
	testCases := map[string]struct {
		inEnv     map[string]string
		inNoColor bool

		wantedNoColor bool
	}{
		"disabled": {
			inEnv:         map[string]string{colorEnvVar: "false"},
			wantedNoColor: true,
		},
		"enabled in upper case": {
			inEnv:         map[string]string{colorEnvVar: "TRUE"},
			inNoColor:     true,
			wantedNoColor: false,
		},
		"not set follows terminal detection": {
			inNoColor:     true,
			wantedNoColor: true,
		},
		"not a boolean is ignored": {
			inEnv:         map[string]string{colorEnvVar: "auto"},
			inNoColor:     true,
			wantedNoColor: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ogLookup, ogNoColor, ogDisable := lookupEnv, color.NoColor, core.DisableColor
			defer func() {
				lookupEnv, color.NoColor, core.DisableColor = ogLookup, ogNoColor, ogDisable
			}()
			lookupEnv = func(key string) (string, bool) {
				v, ok := tc.inEnv[key]
				return v, ok
			}
			color.NoColor = tc.inNoColor
			core.DisableColor = tc.inNoColor

			// WHEN
			DisableColorBasedOnEnvVar()

			// THEN
			require.Equal(t, tc.wantedNoColor, color.NoColor)
			require.Equal(t, tc.wantedNoColor, core.DisableColor)
		})
	}
}

func TestHighlightCode(t *testing.T) {
	color.NoColor = true

	require.Equal(t, "`cfn-update list .`", HighlightCode("cfn-update list ."))
}
