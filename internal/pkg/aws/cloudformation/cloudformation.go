// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides a client to make API requests to AWS CloudFormation.
package cloudformation

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
)

// MaxTemplateBodySize is the largest template body in bytes that can be passed inline to CloudFormation.
const MaxTemplateBodySize = 51200

const errCodeValidation = "ValidationError"

// CloudFormation represents a client to make requests to AWS CloudFormation.
type CloudFormation struct {
	client
}

// TemplateSummary holds what CloudFormation reports about a valid template.
type TemplateSummary struct {
	Description  string
	Parameters   []string // Parameter keys in the order of the template.
	Capabilities []string // Capabilities required to create a stack from the template.
}

// New creates a new CloudFormation client.
func New(s *session.Session) *CloudFormation {
	return &CloudFormation{
		cloudformation.New(s),
	}
}

// ValidateTemplate asks CloudFormation to validate the template body.
// It returns an ErrTemplateBodyTooLarge if the body cannot be passed inline,
// and an ErrTemplateInvalid if CloudFormation rejects the template.
func (c *CloudFormation) ValidateTemplate(body string) (*TemplateSummary, error) {
	if len(body) > MaxTemplateBodySize {
		return nil, &ErrTemplateBodyTooLarge{Size: len(body)}
	}
	out, err := c.client.ValidateTemplate(&cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(body),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == errCodeValidation {
			return nil, &ErrTemplateInvalid{Reason: aerr.Message()}
		}
		return nil, fmt.Errorf("validate template: %w", err)
	}
	summary := &TemplateSummary{
		Description:  aws.StringValue(out.Description),
		Capabilities: aws.StringValueSlice(out.Capabilities),
	}
	for _, param := range out.Parameters {
		summary.Parameters = append(summary.Parameters, aws.StringValue(param.ParameterKey))
	}
	return summary, nil
}
