// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/cfn-update/cfn-update/internal/pkg/cli/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCompletionOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inputShell  string
		wantedError error
	}{
		"zsh": {
			inputShell: "zsh",
		},
		"bash": {
			inputShell: "bash",
		},
		"fish": {
			inputShell: "fish",
		},
		"invalid shell": {
			inputShell:  "chicken",
			wantedError: errors.New("shell must be bash, zsh or fish"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			opts := completionOpts{Shell: tc.inputShell}

			// WHEN
			err := opts.Validate()

			// THEN
			if tc.wantedError == nil {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.wantedError.Error())
			}
		})
	}
}

func TestCompletionOpts_Execute(t *testing.T) {
	testCases := map[string]struct {
		inputShell string
		mocking    func(mock *mocks.MockshellCompleter)
	}{
		"bash": {
			inputShell: "bash",
			mocking: func(mock *mocks.MockshellCompleter) {
				mock.EXPECT().GenBashCompletion(gomock.Any()).Times(1)
			},
		},
		"zsh": {
			inputShell: "zsh",
			mocking: func(mock *mocks.MockshellCompleter) {
				mock.EXPECT().GenZshCompletion(gomock.Any()).Times(1)
			},
		},
		"fish": {
			inputShell: "fish",
			mocking: func(mock *mocks.MockshellCompleter) {
				mock.EXPECT().GenFishCompletion(gomock.Any(), true).Times(1)
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mock := mocks.NewMockshellCompleter(ctrl)
			tc.mocking(mock)
			opts := completionOpts{Shell: tc.inputShell, completer: mock}

			// WHEN
			err := opts.Execute()

			// THEN
			require.NoError(t, err)
		})
	}
}
