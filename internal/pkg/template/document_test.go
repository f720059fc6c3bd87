// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const bucketYAML = `AWSTemplateFormatVersion: "2010-09-09"
Description: Bucket stack
Resources:
  Bucket:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: !Sub "${AWS::StackName}-bucket"
Outputs:
  Arn:
    Value: !GetAtt Bucket.Arn
`

const queueJSONC = `{
  // Comments and trailing commas are tolerated.
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "Queue": {"Type": "AWS::SQS::Queue", "Properties": {"DelaySeconds": 5, "FifoQueue": true, "Tags": []}},
  },
}`

const queueJSON = `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "Queue": {
      "Type": "AWS::SQS::Queue",
      "Properties": {
        "DelaySeconds": 5,
        "FifoQueue": true,
        "Tags": []
      }
    }
  }
}
`

func TestNew(t *testing.T) {
	testCases := map[string]struct {
		inFilename string

		wantedBasename string
		wantedFormat   string
		wantedErr      error
	}{
		"json file": {
			inFilename:     "templates/queue.json",
			wantedBasename: "queue",
			wantedFormat:   FormatJSON,
		},
		"yml file": {
			inFilename:     "stack.template.yml",
			wantedBasename: "stack.template",
			wantedFormat:   FormatYML,
		},
		"yaml file": {
			inFilename:     "/tmp/bucket.yaml",
			wantedBasename: "bucket",
			wantedFormat:   FormatYAML,
		},
		"fails fast on any other extension": {
			inFilename: "README.md",
			wantedErr:  &ErrUnsupportedExtension{Filename: "README.md"},
		},
		"extensions are case sensitive": {
			inFilename: "bucket.YAML",
			wantedErr:  &ErrUnsupportedExtension{Filename: "bucket.YAML"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			doc, err := New(tc.inFilename)

			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.inFilename, doc.Filename)
			require.Equal(t, tc.wantedBasename, doc.Basename)
			require.Equal(t, tc.wantedFormat, doc.Format)
			require.False(t, doc.Dirty())
		})
	}
}

func TestErrUnsupportedExtension_Error(t *testing.T) {
	err := &ErrUnsupportedExtension{Filename: "notes.txt"}

	require.EqualError(t, err, "notes.txt has no .json, .yaml or .yml extension")
}

func TestDocument_Load(t *testing.T) {
	testCases := map[string]struct {
		inFilename string
		inContent  string

		wantedTemplate bool
		wantedErr      string
	}{
		"yaml template": {
			inFilename:     "bucket.yaml",
			inContent:      bucketYAML,
			wantedTemplate: true,
		},
		"json template with comments": {
			inFilename:     "queue.json",
			inContent:      queueJSONC,
			wantedTemplate: true,
		},
		"yaml document without the marker key": {
			inFilename: "docker-compose.yml",
			inContent:  "services:\n  web:\n    image: nginx\n",
		},
		"yaml document that is a list": {
			inFilename: "patches.yml",
			inContent:  "- op: add\n  path: /Resources\n",
		},
		"json document without the marker key": {
			inFilename: "package.json",
			inContent:  `{"name": "app", "version": "1.0.0"}`,
		},
		"empty file": {
			inFilename: "empty.yaml",
			inContent:  "\n",
		},
		"malformed yaml": {
			inFilename: "broken.yaml",
			inContent:  "Resources: [\n",
			wantedErr:  "parse broken.yaml: ",
		},
		"yaml with more than one document": {
			inFilename: "stacks.yaml",
			inContent:  "AWSTemplateFormatVersion: \"2010-09-09\"\nResources: {}\n---\nSecond: doc\n",
			wantedErr:  "parse stacks.yaml: contains more than one YAML document",
		},
		"yaml with a leading document marker": {
			inFilename:     "stack.yaml",
			inContent:      "---\nAWSTemplateFormatVersion: \"2010-09-09\"\n",
			wantedTemplate: true,
		},
		"malformed json": {
			inFilename: "broken.json",
			inContent:  `{"AWSTemplateFormatVersion": }`,
			wantedErr:  "parse broken.json: ",
		},
		"json with trailing data": {
			inFilename: "twice.json",
			inContent:  `{} {}`,
			wantedErr:  "parse twice.json: invalid character after top-level value",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tc.inFilename, []byte(tc.inContent), 0644))
			doc, err := New(tc.inFilename)
			require.NoError(t, err)

			err = doc.Load(fs)

			if tc.wantedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedTemplate, doc.IsCloudFormationTemplate())
			require.False(t, doc.Dirty())
			require.Equal(t, int64(len(tc.inContent)), doc.Size())
		})
	}
}

func TestDocument_Load_MissingFile(t *testing.T) {
	doc, err := New("missing.yaml")
	require.NoError(t, err)

	err = doc.Load(afero.NewMemMapFs())

	require.Error(t, err)
	require.Contains(t, err.Error(), "stat missing.yaml")
}

func TestDocument_Load_ResetsState(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bucket.yaml", []byte(bucketYAML), 0644))
	doc, err := New("bucket.yaml")
	require.NoError(t, err)
	require.NoError(t, doc.Load(fs))
	desc, _ := doc.Lookup("Description")
	desc.Value = "changed"
	doc.MarkDirty()

	require.NoError(t, doc.Load(fs))

	require.False(t, doc.Dirty())
	require.Equal(t, "Bucket stack", doc.Description())
}

func TestDocument_Marshal(t *testing.T) {
	testCases := map[string]struct {
		inFilename string
		inContent  string

		wantedBody string
	}{
		"unmodified yaml template round trips": {
			inFilename: "bucket.yaml",
			inContent:  bucketYAML,
			wantedBody: bucketYAML,
		},
		"yml templates are written as yaml": {
			inFilename: "bucket.yml",
			inContent:  bucketYAML,
			wantedBody: bucketYAML,
		},
		"json template is indented and keeps key order": {
			inFilename: "queue.json",
			inContent:  queueJSONC,
			wantedBody: queueJSON,
		},
		"json does not escape html characters": {
			inFilename: "sub.json",
			inContent:  `{"AWSTemplateFormatVersion":"2010-09-09","Description":"a < b & c"}`,
			wantedBody: "{\n  \"AWSTemplateFormatVersion\": \"2010-09-09\",\n  \"Description\": \"a < b & c\"\n}\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tc.inFilename, []byte(tc.inContent), 0644))
			doc, err := New(tc.inFilename)
			require.NoError(t, err)
			require.NoError(t, doc.Load(fs))

			body, err := doc.Marshal()

			require.NoError(t, err)
			require.Equal(t, tc.wantedBody, string(body))
		})
	}
}

func TestDocument_Marshal_EmptyDocument(t *testing.T) {
	doc, err := New("empty.json")
	require.NoError(t, err)

	_, err = doc.Marshal()

	require.EqualError(t, err, "document is empty")
}

func TestDocument_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "stacks/queue.json", []byte(queueJSONC), 0600))
	doc, err := New("stacks/queue.json")
	require.NoError(t, err)
	require.NoError(t, doc.Load(fs))
	delay, ok := doc.Lookup("Resources", "Queue", "Properties", "DelaySeconds")
	require.True(t, ok)
	delay.Value = "10"
	doc.MarkDirty()

	err = doc.Write(fs)

	require.NoError(t, err)
	content, err := afero.ReadFile(fs, "stacks/queue.json")
	require.NoError(t, err)
	require.Contains(t, string(content), `"DelaySeconds": 10,`)
	info, err := fs.Stat("stacks/queue.json")
	require.NoError(t, err)
	require.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestDocument_Loaded(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bucket.yaml", []byte(bucketYAML), 0644))
	doc, err := New("bucket.yaml")
	require.NoError(t, err)
	require.NoError(t, doc.Load(fs))

	desc, _ := doc.Lookup("Description")
	desc.Value = "changed"

	loaded := doc.Loaded()
	original, ok := mappingValue(loaded, "Description")
	require.True(t, ok)
	require.Equal(t, "Bucket stack", original.Value)
}

func TestDocument_Resources(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Topic:
    Type: AWS::SNS::Topic
  Queue:
    Type: AWS::SQS::Queue
  Custom:
    Properties: {}
`
	require.NoError(t, afero.WriteFile(fs, "messaging.yaml", []byte(content), 0644))
	doc, err := New("messaging.yaml")
	require.NoError(t, err)
	require.NoError(t, doc.Load(fs))

	resources := doc.Resources()

	require.Len(t, resources, 3)
	require.Equal(t, "Topic", resources[0].LogicalID)
	require.Equal(t, "AWS::SNS::Topic", resources[0].Type)
	require.Equal(t, "Queue", resources[1].LogicalID)
	require.Equal(t, "AWS::SQS::Queue", resources[1].Type)
	require.Equal(t, "Custom", resources[2].LogicalID)
	require.Empty(t, resources[2].Type)
	require.Equal(t, yaml.MappingNode, resources[2].Node.Kind)
}
