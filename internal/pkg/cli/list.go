// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cfn-update/cfn-update/cmd/cfn-update/template"
	"github.com/cfn-update/cfn-update/internal/pkg/cli/group"
	"github.com/cfn-update/cfn-update/internal/pkg/term/color"
	"github.com/cfn-update/cfn-update/internal/pkg/term/log"
	cfntemplate "github.com/cfn-update/cfn-update/internal/pkg/template"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

// listedTemplate is a template found while walking the paths.
type listedTemplate struct {
	path        string
	size        int64
	description string
	resources   int
}

// templateCollector is a read-only hook that records every template it is given.
type templateCollector struct {
	templates []listedTemplate
}

// UpdateTemplate records the template without modifying it.
func (c *templateCollector) UpdateTemplate(doc *cfntemplate.Document) error {
	c.templates = append(c.templates, listedTemplate{
		path:        doc.Filename,
		size:        doc.Size(),
		description: doc.Description(),
		resources:   len(doc.Resources()),
	})
	return nil
}

type listOpts struct {
	walkOpts

	w io.Writer
}

func newListOpts(walk walkVars) *listOpts {
	return &listOpts{
		walkOpts: newWalkOpts(walk),
		w:        log.OutputWriter,
	}
}

// Validate returns an error if the configuration file or the exclude patterns are invalid.
func (o *listOpts) Validate() error {
	return o.walkOpts.validate()
}

// Ask is a no-op for this command.
func (o *listOpts) Ask() error {
	return nil
}

// Execute prints the templates under the paths as a tree grouped by directory.
func (o *listOpts) Execute() error {
	collector := &templateCollector{}
	summary, err := o.update(collector)
	if err != nil {
		return err
	}
	if len(collector.templates) == 0 {
		log.Infof("No CloudFormation templates found in %s.\n", english.Plural(summary.Files, "file", ""))
		return nil
	}
	fmt.Fprint(o.w, renderTemplates(collector.templates))
	log.Infof("Found %s in %s.\n",
		english.Plural(summary.Templates, "template", ""), english.Plural(summary.Files, "file", ""))
	return nil
}

// renderTemplates returns the templates as a tree where every directory is a branch.
func renderTemplates(templates []listedTemplate) string {
	tree := treeprint.New()
	branches := make(map[string]treeprint.Tree)
	branchFor := func(dir string) treeprint.Tree {
		dir = filepath.ToSlash(filepath.Clean(dir))
		if dir == "." {
			return tree
		}
		parent, current := tree, ""
		for i, part := range strings.Split(dir, "/") {
			if i > 0 {
				current += "/"
			}
			current += part
			branch, ok := branches[current]
			if !ok {
				branch = parent.AddBranch(part + "/")
				branches[current] = branch
			}
			parent = branch
		}
		return parent
	}
	for _, tpl := range templates {
		branch := branchFor(filepath.Dir(tpl.path))
		branch.AddMetaNode(humanize.Bytes(uint64(tpl.size)), templateLabel(tpl))
	}
	return tree.String()
}

func templateLabel(tpl listedTemplate) string {
	label := fmt.Sprintf("%s (%s)", filepath.Base(tpl.path), english.Plural(tpl.resources, "resource", ""))
	if tpl.description == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, color.Faint.Sprint(firstLine(tpl.description)))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// BuildListCmd builds the command to list the templates under paths.
func BuildListCmd() *cobra.Command {
	walk := walkVars{}
	cmd := &cobra.Command{
		Use:   "list PATH...",
		Short: "List the CloudFormation templates under the paths.",
		Long:  "List the CloudFormation templates under the paths with their size and number of resources.",
		Example: `
  List the templates in the current directory, skipping node_modules.
  /code $ cfn-update list --exclude node_modules .`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			walk.paths = args
			return run(newListOpts(walk))
		}),
		Annotations: map[string]string{
			"group": group.Inspect,
		},
	}
	addWalkFlags(cmd.Flags(), &walk)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}
