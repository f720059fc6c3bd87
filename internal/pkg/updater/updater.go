// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package updater walks files and directories to find CloudFormation templates,
// hands each template to a hook, and writes back the templates that the hook changed.
package updater

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cfn-update/cfn-update/internal/pkg/template"
	"github.com/cfn-update/cfn-update/internal/pkg/template/diff"
	"github.com/cfn-update/cfn-update/internal/pkg/term/log"
	"github.com/spf13/afero"
)

// TemplateUpdater is the hook applied to every CloudFormation template found by an Updater.
// Implementations that modify the document must call doc.MarkDirty.
type TemplateUpdater interface {
	UpdateTemplate(doc *template.Document) error
}

// Summary holds the counters of the templates processed by an Updater.
type Summary struct {
	Files     int      // Files with a .json, .yml or .yaml extension.
	Templates int      // Files that are CloudFormation templates.
	Updated   []string // Templates written, or that would have been written in a dry run.
}

// Updater applies a TemplateUpdater to the CloudFormation templates under a set of paths.
type Updater struct {
	hook TemplateUpdater

	fs         afero.Fs
	dryRun     bool
	verbose    bool
	excludes   []string
	logger     *log.Logger
	diffWriter io.Writer

	summary Summary
}

// Option configures an Updater.
type Option func(u *Updater)

// WithFS sets the filesystem that templates are read from and written to.
func WithFS(fs afero.Fs) Option {
	return func(u *Updater) {
		u.fs = fs
	}
}

// WithDryRun reports the changes a hook makes without writing them.
func WithDryRun(dryRun bool) Option {
	return func(u *Updater) {
		u.dryRun = dryRun
	}
}

// WithVerbose reports skipped files and unchanged templates.
func WithVerbose(verbose bool) Option {
	return func(u *Updater) {
		u.verbose = verbose
	}
}

// WithExcludes skips files and directories whose base name matches one of the glob patterns.
// Files are skipped even when passed to Update directly, directories passed to Update are still walked.
func WithExcludes(patterns ...string) Option {
	return func(u *Updater) {
		u.excludes = append(u.excludes, patterns...)
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *log.Logger) Option {
	return func(u *Updater) {
		u.logger = logger
	}
}

// WithDiffWriter sets where the changes are written during a dry run.
func WithDiffWriter(w io.Writer) Option {
	return func(u *Updater) {
		u.diffWriter = w
	}
}

// New returns an Updater that applies hook to templates.
// A nil hook leaves every template unchanged.
func New(hook TemplateUpdater, opts ...Option) *Updater {
	if hook == nil {
		hook = Noop{}
	}
	u := &Updater{
		hook:       hook,
		fs:         afero.NewOsFs(),
		diffWriter: log.OutputWriter,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.logger == nil {
		u.logger = log.NewVerbose(log.DiagnosticWriter, u.verbose)
	}
	return u
}

// Update processes each path in order. A file is processed directly and a directory is walked
// recursively in lexical order. Files without a .json, .yml or .yaml extension are ignored.
//
// It returns an ErrNotFileOrDir if a path is neither a file nor a directory.
func (u *Updater) Update(paths ...string) error {
	for _, path := range paths {
		if err := u.update(path); err != nil {
			return err
		}
	}
	return nil
}

// Summary returns the counters accumulated by all the calls to Update.
func (u *Updater) Summary() Summary {
	updated := make([]string, len(u.summary.Updated))
	copy(updated, u.summary.Updated)
	return Summary{
		Files:     u.summary.Files,
		Templates: u.summary.Templates,
		Updated:   updated,
	}
}

func (u *Updater) update(path string) error {
	info, err := u.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ErrNotFileOrDir{Path: path}
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	switch {
	case info.Mode().IsRegular():
		excluded, err := u.isExcluded(path)
		if err != nil {
			return err
		}
		if excluded {
			u.logger.Debugf("skipping excluded file %s\n", path)
			return nil
		}
		return u.updateFile(path)
	case info.IsDir():
		return u.walk(path)
	default:
		return &ErrNotFileOrDir{Path: path}
	}
}

func (u *Updater) walk(root string) error {
	return afero.Walk(u.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		excluded, err := u.isExcluded(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if excluded && path != root {
				u.logger.Debugf("skipping directory %s\n", path)
				return filepath.SkipDir
			}
			return nil
		}
		if excluded {
			u.logger.Debugf("skipping excluded file %s\n", path)
			return nil
		}
		return u.updateFile(path)
	})
}

func (u *Updater) isExcluded(path string) (bool, error) {
	base := filepath.Base(path)
	for _, pattern := range u.excludes {
		matched, err := filepath.Match(pattern, base)
		if err != nil {
			return false, fmt.Errorf("match exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func (u *Updater) updateFile(path string) error {
	if !template.HasSupportedExtension(path) {
		return nil
	}
	doc, err := template.New(path)
	if err != nil {
		return err
	}
	u.summary.Files++
	if err := doc.Load(u.fs); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if !doc.IsCloudFormationTemplate() {
		u.logger.Debugf("skipping %s as it is not a CloudFormation template\n", path)
		return nil
	}
	u.summary.Templates++
	if err := u.hook.UpdateTemplate(doc); err != nil {
		return fmt.Errorf("update template %s: %w", path, err)
	}
	return u.write(doc)
}

func (u *Updater) write(doc *template.Document) error {
	if !doc.Dirty() {
		u.logger.Debugf("no changes in %s\n", doc.Filename)
		return nil
	}
	u.summary.Updated = append(u.summary.Updated, doc.Filename)
	if u.dryRun {
		u.logger.Infof("would update %s\n", doc.Filename)
		return u.writeDiff(doc)
	}
	if err := doc.Write(u.fs); err != nil {
		return fmt.Errorf("write %s: %w", doc.Filename, err)
	}
	u.logger.Debugf("updated %s\n", doc.Filename)
	return nil
}

func (u *Updater) writeDiff(doc *template.Document) error {
	tree, err := diff.Nodes(doc.Loaded(), doc.Root)
	if err != nil {
		return fmt.Errorf("compare changes in %s: %w", doc.Filename, err)
	}
	if err := diff.NewWriter(tree, u.diffWriter).Write(); err != nil {
		return fmt.Errorf("write changes in %s: %w", doc.Filename, err)
	}
	return nil
}
