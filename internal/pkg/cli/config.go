// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/imdario/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is read from the working directory when --config is not set.
const defaultConfigFile = ".cfn-update.yml"

// settings are the options that can be set either with flags or in a configuration file.
type settings struct {
	DryRun  bool     `yaml:"dryRun"`
	Verbose bool     `yaml:"verbose"`
	Exclude []string `yaml:"exclude"`
}

// load merges the settings of the configuration file into s.
// Flags take precedence over the file, exclude patterns from both sources are kept.
// A missing default configuration file is not an error, a missing explicit one is.
func (s *settings) load(fs afero.Fs, path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read configuration file %s: %w", path, err)
	}
	var fromFile settings
	if err := yaml.Unmarshal(content, &fromFile); err != nil {
		return fmt.Errorf("unmarshal configuration file %s: %w", path, err)
	}
	if err := mergo.Merge(s, fromFile, mergo.WithAppendSlice); err != nil {
		return fmt.Errorf("merge configuration file %s: %w", path, err)
	}
	return nil
}
