// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestIsCredRetrievalErr(t *testing.T) {
	testCases := map[string]struct {
		inErr  error
		wanted bool
	}{
		"deadline exceeded": {
			inErr:  fmt.Errorf("get credentials: %w", context.DeadlineExceeded),
			wanted: true,
		},
		"no credential providers": {
			inErr:  awserr.New("NoCredentialProviders", "no valid providers in chain", nil),
			wanted: true,
		},
		"other aws error": {
			inErr: awserr.New("AccessDenied", "denied", nil),
		},
		"other error": {
			inErr: errors.New("some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, isCredRetrievalErr(tc.inErr))
		})
	}
}

func TestErrCredRetrieval(t *testing.T) {
	color.NoColor = true

	t.Run("default chain", func(t *testing.T) {
		err := &errCredRetrieval{err: errors.New("NoCredentialProviders")}

		require.EqualError(t, err, "retrieve default credentials: NoCredentialProviders")
		require.Contains(t, err.RecommendActions(), "Run `aws configure`, or pass a named profile with `--profile`.")
	})
	t.Run("named profile", func(t *testing.T) {
		err := &errCredRetrieval{profile: "prod", err: context.DeadlineExceeded}

		require.EqualError(t, err, "retrieve credentials of profile prod: context deadline exceeded")
		require.True(t, errors.Is(err, context.DeadlineExceeded))
		require.Contains(t, err.RecommendActions(), "`aws configure --profile prod`")
	})
}
