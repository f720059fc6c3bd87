// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package client wraps the cfn-update binary for end-to-end tests.
package client

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega/gexec"
)

// CLI is a wrapper around os.execs.
type CLI struct {
	path string
	dir  string
}

// Output holds what the binary printed and its exit code.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// PatchRequest contains the parameters for calling cfn-update patch.
type PatchRequest struct {
	File   string
	DryRun bool
	Paths  []string
}

// ReplaceRequest contains the parameters for calling cfn-update replace.
type ReplaceRequest struct {
	Old    string
	New    string
	Key    string
	DryRun bool
	Paths  []string
}

// NewCLI returns a wrapper around the binary at path that runs commands from dir.
func NewCLI(path, dir string) (*CLI, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &CLI{
		path: path,
		dir:  dir,
	}, nil
}

// Help runs:
// cfn-update --help
func (cli *CLI) Help() (*Output, error) {
	return cli.exec("--help")
}

// Version runs:
// cfn-update version
func (cli *CLI) Version() (*Output, error) {
	return cli.exec("version")
}

// Patch runs:
// cfn-update patch --file $file --yes [--dry-run] $paths...
func (cli *CLI) Patch(opts *PatchRequest) (*Output, error) {
	args := []string{"patch", "--file", opts.File, "--yes"}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	return cli.exec(append(args, opts.Paths...)...)
}

// Replace runs:
// cfn-update replace --old $old --new $new [--key $key] [--dry-run] $paths...
func (cli *CLI) Replace(opts *ReplaceRequest) (*Output, error) {
	args := []string{"replace", "--old", opts.Old, "--new", opts.New}
	if opts.Key != "" {
		args = append(args, "--key", opts.Key)
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	return cli.exec(append(args, opts.Paths...)...)
}

// List runs:
// cfn-update list $paths...
func (cli *CLI) List(paths ...string) (*Output, error) {
	return cli.exec(append([]string{"list"}, paths...)...)
}

func (cli *CLI) exec(args ...string) (*Output, error) {
	command := exec.Command(cli.path, args...)
	command.Dir = cli.dir
	// Turn off colors
	command.Env = append(os.Environ(), "COLOR=false")
	sess, err := gexec.Start(command, ginkgo.GinkgoWriter, ginkgo.GinkgoWriter)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cli.path, err)
	}
	sess.Wait(30)
	return &Output{
		Stdout:   string(sess.Out.Contents()),
		Stderr:   string(sess.Err.Contents()),
		ExitCode: sess.ExitCode(),
	}, nil
}
