// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/cfn-update/cfn-update/internal/pkg/term/color"
)

const noCredentialProvidersCode = "NoCredentialProviders"

// errMissingRegion occurs when neither the profile, the environment nor the caller sets a region.
type errMissingRegion struct{}

func (e *errMissingRegion) Error() string {
	return "missing region configuration"
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errMissingRegion) RecommendActions() string {
	return fmt.Sprintf(`Templates are validated against the CloudFormation endpoint of a region.
Pass %s, add a "region" entry to the profile in %s, or export %s.`,
		color.HighlightCode("--region <region>"), color.HighlightCode("~/.aws/config"), color.HighlightCode("AWS_REGION"))
}

// errCredRetrieval occurs when the credential chain of a session yields no credentials.
type errCredRetrieval struct {
	profile string
	err     error
}

func (e *errCredRetrieval) Error() string {
	if e.profile == "" {
		return fmt.Sprintf("retrieve default credentials: %v", e.err)
	}
	return fmt.Sprintf("retrieve credentials of profile %s: %v", e.profile, e.err)
}

func (e *errCredRetrieval) Unwrap() error {
	return e.err
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errCredRetrieval) RecommendActions() string {
	if e.profile == "" {
		return fmt.Sprintf(`No credentials were found in the default provider chain:
https://docs.aws.amazon.com/sdk-for-go/v1/developer-guide/configuring-sdk.html#specifying-credentials
Run %s, or pass a named profile with %s.`, color.HighlightCode("aws configure"), color.HighlightCode("--profile"))
	}
	return fmt.Sprintf(`Profile %s has no usable credentials.
Run %s to set them, or pass another profile with %s.`,
		color.HighlightUserInput(e.profile), color.HighlightCode("aws configure --profile "+e.profile), color.HighlightCode("--profile"))
}

func isCredRetrievalErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return aerr.Code() == noCredentialProvidersCode
	}
	return strings.HasPrefix(err.Error(), noCredentialProvidersCode)
}
