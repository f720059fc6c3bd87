// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_Successln(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Successln("hello", " world")

	// THEN
	require.Equal(t, fmt.Sprintf("%s hello world\n", successPrefix), b.String())
}

func TestLogger_Successf(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Successf("%s %s\n", "hello", "world")

	// THEN
	require.Equal(t, fmt.Sprintf("%s hello world\n", successPrefix), b.String())
}

func TestLogger_Errorln(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Errorln("hello", " world")

	// THEN
	require.Contains(t, b.String(), fmt.Sprintf("%s hello world\n", errorPrefix))
}

func TestLogger_Errorf(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Errorf("%s %s\n", "hello", "world")

	// THEN
	require.Contains(t, b.String(), fmt.Sprintf("%s hello world\n", errorPrefix))
}

func TestLogger_Warningln(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Warningln("hello", " world")

	// THEN
	require.Contains(t, b.String(), "Note: hello world\n")
}

func TestLogger_Warningf(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Warningf("%s %s\n", "hello", "world")

	// THEN
	require.Contains(t, b.String(), "Note: hello world\n")
}

func TestLogger_Infoln(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Infoln("hello", "world")

	// THEN
	require.Equal(t, "hello world\n", b.String())
}

func TestLogger_Infof(t *testing.T) {
	// GIVEN
	b := &strings.Builder{}
	logger := New(b)

	// WHEN
	logger.Infof("%s %s\n", "hello", "world")

	// THEN
	require.Equal(t, "hello world\n", b.String())
}

func TestLogger_Debug(t *testing.T) {
	testCases := map[string]struct {
		inVerbose bool

		wanted string
	}{
		"quiet logger drops debug messages": {
			inVerbose: false,
			wanted:    "",
		},
		"verbose logger writes debug messages": {
			inVerbose: true,
			wanted:    "skipping a.yaml\nno changes in b.json\n",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			b := &strings.Builder{}
			logger := NewVerbose(b, tc.inVerbose)

			// WHEN
			logger.Debugln("skipping a.yaml")
			logger.Debugf("no changes in %s\n", "b.json")

			// THEN
			require.Equal(t, tc.inVerbose, logger.Verbose())
			require.Contains(t, b.String(), tc.wanted)
			if !tc.inVerbose {
				require.Empty(t, b.String())
			}
		})
	}
}
