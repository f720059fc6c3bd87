// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/cfn-update/cfn-update/internal/pkg/cli/mocks"
	"github.com/cfn-update/cfn-update/internal/pkg/override"
	"github.com/cfn-update/cfn-update/internal/pkg/updater"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const bucketNamePatch = `- op: add
  path: /Resources/Bucket/Properties
  value:
    BucketName: !Sub "${AWS::StackName}-bucket"
- op: replace
  path: /Description
  value: Patched bucket stack
`

func TestPatchOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inFile    string
		inExclude []string
		inPatches string

		wantedOps int
		wantedErr string
	}{
		"valid patch document": {
			inFile:    "patches.yml",
			inPatches: bucketNamePatch,
			wantedOps: 2,
		},
		"missing patch document": {
			inFile:    "missing.yml",
			wantedErr: `read file at "missing.yml"`,
		},
		"unsupported operation": {
			inFile:    "patches.yml",
			inPatches: "- op: copy\n  from: /Resources\n  path: /Outputs\n",
			wantedErr: `unsupported operation "copy" at index 0`,
		},
		"invalid exclude pattern is reported before the patch is read": {
			inFile:    "missing.yml",
			inExclude: []string{"[z-"},
			wantedErr: "exclude pattern [z- is invalid",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			if tc.inPatches != "" {
				require.NoError(t, afero.WriteFile(fs, tc.inFile, []byte(tc.inPatches), 0644))
			}
			opts := newPatchOpts(walkVars{settings: settings{Exclude: tc.inExclude}}, patchVars{file: tc.inFile})
			opts.fs = fs

			// WHEN
			err := opts.Validate()

			// THEN
			if tc.wantedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedOps, opts.patch.Operations())
		})
	}
}

func TestPatchOpts_Ask(t *testing.T) {
	testCases := map[string]struct {
		inSkipConfirmation bool
		inDryRun           bool
		mockPrompt         func(m *mocks.Mockprompter)

		wantedErr error
	}{
		"skips the prompt with --yes": {
			inSkipConfirmation: true,
			mockPrompt: func(m *mocks.Mockprompter) {
				m.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		"skips the prompt on a dry run": {
			inDryRun: true,
			mockPrompt: func(m *mocks.Mockprompter) {
				m.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		"continues once confirmed": {
			mockPrompt: func(m *mocks.Mockprompter) {
				m.EXPECT().Confirm(gomock.Any(), patchConfirmHelp, gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		"cancels when declined": {
			mockPrompt: func(m *mocks.Mockprompter) {
				m.EXPECT().Confirm(gomock.Any(), patchConfirmHelp, gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantedErr: errPatchCancelled,
		},
		"wraps prompt errors": {
			mockPrompt: func(m *mocks.Mockprompter) {
				m.EXPECT().Confirm(gomock.Any(), patchConfirmHelp, gomock.Any(), gomock.Any()).Return(false, errors.New("some error"))
			},
			wantedErr: errors.New("confirm patch: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockPrompt := mocks.NewMockprompter(ctrl)
			tc.mockPrompt(mockPrompt)

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "patches.yml", []byte(bucketNamePatch), 0644))
			patch, err := override.NewPatch("patches.yml", fs)
			require.NoError(t, err)

			opts := &patchOpts{
				patchVars: patchVars{
					file:             "patches.yml",
					skipConfirmation: tc.inSkipConfirmation,
				},
				walkOpts: walkOpts{
					walkVars: walkVars{
						settings: settings{DryRun: tc.inDryRun},
						paths:    []string{"stacks"},
					},
				},
				prompt: mockPrompt,
				patch:  patch,
			}

			// WHEN
			err = opts.Ask()

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPatchOpts_Execute(t *testing.T) {
	t.Run("writes the patched templates", func(t *testing.T) {
		// GIVEN
		buf := captureDiagnostics(t)
		fs := newStacksFs(t)
		require.NoError(t, afero.WriteFile(fs, "patches.yml", []byte(`- op: add
  path: /Metadata
  value:
    Owner: platform
`), 0644))
		opts := newPatchOpts(walkVars{paths: []string{"stacks"}}, patchVars{file: "patches.yml", skipConfirmation: true})
		opts.fs = fs

		// WHEN
		err := run(opts)

		// THEN
		require.NoError(t, err)
		bucket, err := afero.ReadFile(fs, "stacks/bucket.yaml")
		require.NoError(t, err)
		require.Equal(t, bucketTemplate+`Metadata:
  Owner: platform
`, string(bucket))
		queue, err := afero.ReadFile(fs, "stacks/queue/queue.json")
		require.NoError(t, err)
		require.Contains(t, string(queue), `"Metadata": {
    "Owner": "platform"
  }`)
		compose, err := afero.ReadFile(fs, "stacks/compose.yml")
		require.NoError(t, err)
		require.Equal(t, composeFile, string(compose))
		require.Contains(t, buf.String(), "Updated 2 templates of 2 templates.")
	})
	t.Run("does not write on a dry run", func(t *testing.T) {
		// GIVEN
		buf := captureDiagnostics(t)
		fs := newStacksFs(t)
		require.NoError(t, afero.WriteFile(fs, "patches.yml", []byte(bucketNamePatch), 0644))
		opts := newPatchOpts(walkVars{
			settings: settings{DryRun: true, Exclude: []string{"queue"}},
			paths:    []string{"stacks"},
		}, patchVars{file: "patches.yml"})
		opts.fs = fs

		// WHEN
		err := run(opts)

		// THEN
		require.NoError(t, err)
		bucket, err := afero.ReadFile(fs, "stacks/bucket.yaml")
		require.NoError(t, err)
		require.Equal(t, bucketTemplate, string(bucket))
		require.Contains(t, buf.String(), "1 template of 1 template would be updated.")
	})
	t.Run("returns the error of the updater", func(t *testing.T) {
		// GIVEN
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockUpdater := mocks.NewMocktemplateUpdater(ctrl)
		mockUpdater.EXPECT().Update("stacks").Return(&updater.ErrNotFileOrDir{Path: "stacks"})

		opts := &patchOpts{
			walkOpts: walkOpts{
				walkVars: walkVars{paths: []string{"stacks"}},
				newUpdater: func(hook updater.TemplateUpdater, opts ...updater.Option) templateUpdater {
					return mockUpdater
				},
			},
		}

		// WHEN
		err := opts.Execute()

		// THEN
		require.EqualError(t, err, "stacks is not a file or directory")
	})
}
