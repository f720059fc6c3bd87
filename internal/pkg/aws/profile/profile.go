// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profile provides functionality to parse AWS named profiles.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cfn-update/cfn-update/internal/pkg/ini"
)

const (
	awsConfigFileEnvVar  = "AWS_CONFIG_FILE"
	profileSectionPrefix = "profile "
)

type sectionsLister interface {
	Sections() []string
}

// Config represents the local AWS config file.
type Config struct {
	f sectionsLister
}

// NewConfig returns a new parsed Config object from $AWS_CONFIG_FILE or $HOME/.aws/config.
func NewConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}
	f, err := ini.New(path)
	if err != nil {
		return nil, fmt.Errorf("read AWS config file: %w", err)
	}
	return &Config{
		f: f,
	}, nil
}

// Names returns a list of profile names available in the user's config file.
func (c *Config) Names() []string {
	var profiles []string
	for _, section := range c.f.Sections() {
		profiles = append(profiles, strings.TrimPrefix(section, profileSectionPrefix))
	}
	return profiles
}

// Has returns true if name is one of the profiles of the config file.
func (c *Config) Has(name string) bool {
	for _, profile := range c.Names() {
		if profile == name {
			return true
		}
	}
	return false
}

func configFilePath() (string, error) {
	if path := os.Getenv(awsConfigFileEnvVar); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".aws", "config"), nil
}
