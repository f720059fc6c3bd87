// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocument_Lookup(t *testing.T) {
	const in = `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Topic:
    Type: AWS::SNS::Topic
    Properties:
      Subscription:
        - Protocol: sqs
`
	testCases := map[string]struct {
		inKeys []string

		wantedValue string
		wantedOK    bool
	}{
		"top level key": {
			inKeys:      []string{"AWSTemplateFormatVersion"},
			wantedValue: "2010-09-09",
			wantedOK:    true,
		},
		"nested key": {
			inKeys:      []string{"Resources", "Topic", "Type"},
			wantedValue: "AWS::SNS::Topic",
			wantedOK:    true,
		},
		"missing key": {
			inKeys: []string{"Resources", "Queue"},
		},
		"sequences are not followed": {
			inKeys: []string{"Resources", "Topic", "Properties", "Subscription", "Protocol"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			var root yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(in), &root))
			doc := &Document{Root: root.Content[0]}

			// WHEN
			node, ok := doc.Lookup(tc.inKeys...)

			// THEN
			require.Equal(t, tc.wantedOK, ok)
			if !tc.wantedOK {
				require.Nil(t, node)
				return
			}
			require.Equal(t, tc.wantedValue, node.Value)
		})
	}
}

func TestDocument_Resources_Sections(t *testing.T) {
	t.Run("no resources section", func(t *testing.T) {
		var root yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("AWSTemplateFormatVersion: \"2010-09-09\"\n"), &root))
		doc := &Document{Root: root.Content[0]}

		require.Empty(t, doc.Resources())
		require.Empty(t, doc.Description())
	})
	t.Run("resource without a type", func(t *testing.T) {
		var root yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("Resources:\n  Custom: {}\n  Queue:\n    Type: AWS::SQS::Queue\n"), &root))
		doc := &Document{Root: root.Content[0]}

		resources := doc.Resources()

		require.Len(t, resources, 2)
		require.Equal(t, "Custom", resources[0].LogicalID)
		require.Empty(t, resources[0].Type)
		require.Equal(t, "AWS::SQS::Queue", resources[1].Type)
	})
}

func TestClone(t *testing.T) {
	const in = `Defaults: &defaults
  Runtime: python3.12
Function:
  Properties: *defaults
`
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(in), &root))

	c := Clone(&root)

	// Changing the copy leaves the original alone.
	c.Content[0].Content[1].Content[1].Value = "nodejs20.x"
	require.Equal(t, "python3.12", root.Content[0].Content[1].Content[1].Value)

	// Aliases of the copy point to the copy of their anchor.
	alias := c.Content[0].Content[3].Content[1]
	require.Equal(t, yaml.AliasNode, alias.Kind)
	require.Same(t, c.Content[0].Content[1], alias.Alias)
	require.Equal(t, "nodejs20.x", alias.Alias.Content[1].Value)
}
