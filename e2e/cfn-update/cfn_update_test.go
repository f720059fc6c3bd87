// +build e2e

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cfn_update_test

import (
	"os"
	"path/filepath"

	"github.com/cfn-update/cfn-update/e2e/internal/client"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const functionTemplate = `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Function:
    Type: AWS::Lambda::Function
    Properties:
      Runtime: python3.8
      Role: !GetAtt Role.Arn
`

const topicTemplate = `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "Topic": {
      "Type": "AWS::SNS::Topic"
    }
  }
}
`

const tagsPatch = `- op: add
  path: /Metadata
  value:
    Team: platform
`

var _ = Describe("cfn-update", func() {
	var (
		cli *client.CLI
		dir string
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "cfn-update-e2e")
		Expect(err).NotTo(HaveOccurred())
		for path, content := range map[string]string{
			"stacks/function.yaml":      functionTemplate,
			"stacks/events/topic.json":  topicTemplate,
			"stacks/docker-compose.yml": "services: {}\n",
			"patches.yml":               tagsPatch,
		} {
			Expect(os.MkdirAll(filepath.Join(dir, filepath.Dir(path)), 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, path), []byte(content), 0644)).To(Succeed())
		}
		cli, err = client.NewCLI(cliPath, dir)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	readFile := func(path string) string {
		content, err := os.ReadFile(filepath.Join(dir, path))
		Expect(err).NotTo(HaveOccurred())
		return string(content)
	}

	Context("help and version", func() {
		It("lists the command groups", func() {
			out, err := cli.Help()
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(0))
			Expect(out.Stdout).To(ContainSubstring("Update Templates"))
			Expect(out.Stdout).To(ContainSubstring("patch"))
			Expect(out.Stdout).To(ContainSubstring("validate"))
		})

		It("prints the version", func() {
			out, err := cli.Version()
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(0))
			Expect(out.Stdout).To(ContainSubstring("version: "))
		})
	})

	Context("patch", func() {
		It("adds metadata to every template", func() {
			out, err := cli.Patch(&client.PatchRequest{File: "patches.yml", Paths: []string{"stacks"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(0))
			Expect(out.Stderr).To(ContainSubstring("Updated 2 templates of 2 templates."))

			Expect(readFile("stacks/function.yaml")).To(Equal(functionTemplate + "Metadata:\n  Team: platform\n"))
			Expect(readFile("stacks/events/topic.json")).To(ContainSubstring(`"Team": "platform"`))
			Expect(readFile("stacks/docker-compose.yml")).To(Equal("services: {}\n"))
		})

		It("prints a diff without writing on a dry run", func() {
			out, err := cli.Patch(&client.PatchRequest{File: "patches.yml", DryRun: true, Paths: []string{"stacks/function.yaml"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(0))
			Expect(out.Stdout).To(ContainSubstring("+ Metadata:"))
			Expect(readFile("stacks/function.yaml")).To(Equal(functionTemplate))
		})
	})

	Context("replace", func() {
		It("replaces values under a key", func() {
			out, err := cli.Replace(&client.ReplaceRequest{Old: "python3.8", New: "python3.12", Key: "Runtime", Paths: []string{"stacks"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(0))
			Expect(readFile("stacks/function.yaml")).To(ContainSubstring("Runtime: python3.12"))
			Expect(readFile("stacks/function.yaml")).To(ContainSubstring("Role: !GetAtt Role.Arn"))
			Expect(readFile("stacks/events/topic.json")).To(Equal(topicTemplate))
		})
	})

	Context("list", func() {
		It("prints the templates as a tree", func() {
			out, err := cli.List(".")
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(0))
			Expect(out.Stdout).To(ContainSubstring("function.yaml (1 resource)"))
			Expect(out.Stdout).To(ContainSubstring("events/"))
			Expect(out.Stdout).NotTo(ContainSubstring("docker-compose.yml"))
		})
	})

	Context("unsupported paths", func() {
		It("fails with exit status 1", func() {
			out, err := cli.List("missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(out.ExitCode).To(Equal(1))
			Expect(out.Stderr).To(ContainSubstring("✘ Error! missing is not a file or directory"))
		})
	})
})
