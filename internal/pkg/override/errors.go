// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package override

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type errInvalidNodeKind struct {
	pointer pointer
	kind    yaml.Kind
}

func (e *errInvalidNodeKind) Error() string {
	return fmt.Sprintf("key %q: invalid node type %s", strings.Join(e.pointer, jsonPointerSeparator), nodeKindStringer(e.kind))
}

type nodeKindStringer yaml.Kind

func (k nodeKindStringer) String() string {
	switch yaml.Kind(k) {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("%#v", k)
	}
}

// ErrEmptyReplacement occurs when a Replace hook has nothing to look for.
type ErrEmptyReplacement struct{}

func (e *ErrEmptyReplacement) Error() string {
	return "the value to replace must not be empty"
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrEmptyReplacement) RecommendActions() string {
	return "Pass the value to look for with the --old flag."
}
