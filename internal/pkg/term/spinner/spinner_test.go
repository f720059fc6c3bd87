// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package spinner

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/cfn-update/cfn-update/internal/pkg/term/spinner/mocks"
	spin "github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("it should initialize the internal spinner", func(t *testing.T) {
		got := New()

		v, ok := got.internal.(*spin.Spinner)
		require.True(t, ok)

		require.Equal(t, os.Stderr, v.Writer)
		require.Equal(t, 125*time.Millisecond, v.Delay)
	})
}

func TestSpinner_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSpinner := mocks.NewMockspinner(ctrl)

	s := &Spinner{
		internal: mockSpinner,
	}

	mockSpinner.EXPECT().Start()

	s.Start("Validating stack.yaml")
}

func TestSpinner_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSpinner := mocks.NewMockspinner(ctrl)

	s := &Spinner{
		internal: mockSpinner,
	}

	mockSpinner.EXPECT().Stop()

	s.Stop("stack.yaml")
}

func TestSpinner_Labels(t *testing.T) {
	buf := new(bytes.Buffer)
	s := NewWithWriter(buf)
	v := s.internal.(*spin.Spinner)

	s.suffix(" Validating")
	s.finalMSG("done\n")

	require.Equal(t, " Validating", v.Suffix)
	require.Equal(t, "done\n", v.FinalMSG)
}
