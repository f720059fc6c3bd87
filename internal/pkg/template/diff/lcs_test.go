// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongestCommonSubsequence(t *testing.T) {
	testCases := map[string]struct {
		inA []string
		inB []string

		wanted []lcsIndex
	}{
		"empty input": {
			inA: []string{"a"},
		},
		"no common items": {
			inA: []string{"a", "b"},
			inB: []string{"c", "d"},
		},
		"identical lists": {
			inA:    []string{"a", "b"},
			inB:    []string{"a", "b"},
			wanted: []lcsIndex{{inA: 0, inB: 0}, {inA: 1, inB: 1}},
		},
		"picks one answer deterministically": {
			inA:    []string{"a", "c", "b", "b", "d"},
			inB:    []string{"a", "B", "b", "c", "c", "d"},
			wanted: []lcsIndex{{inA: 0, inB: 0}, {inA: 3, inB: 2}, {inA: 4, inB: 5}},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := longestCommonSubsequence(tc.inA, tc.inB, func(inA, inB int) bool {
				return tc.inA[inA] == tc.inB[inB]
			})

			require.Equal(t, tc.wanted, got)
		})
	}
}
