// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diff

import "gopkg.in/yaml.v3"

type action int

const (
	actionMatch action = iota
	actionMod
	actionDel
	actionInsert
	actionDone
)

type tracker[T any] struct {
	index int
	data  []T
}

// lcsStateMachine walks two sequences along their longest common subsequence,
// and tells whether the current items are matched, modified, deleted or inserted.
type lcsStateMachine struct {
	from       tracker[*yaml.Node]
	to         tracker[*yaml.Node]
	lcsIndices tracker[lcsIndex]
	currAction action
}

func newLCSStateMachine(fromSeq, toSeq []*yaml.Node, lcsIndices []lcsIndex) lcsStateMachine {
	return lcsStateMachine{
		from:       tracker[*yaml.Node]{data: fromSeq},
		to:         tracker[*yaml.Node]{data: toSeq},
		lcsIndices: tracker[lcsIndex]{data: lcsIndices},
	}
}

func (sm *lcsStateMachine) action() action {
	var (
		commonDone = sm.lcsIndices.index >= len(sm.lcsIndices.data)
		fromDone   = sm.from.index >= len(sm.from.data)
		toDone     = sm.to.index >= len(sm.to.data)
	)
	if commonDone {
		switch {
		case fromDone && toDone:
			sm.currAction = actionDone
		case toDone:
			sm.currAction = actionDel
		case fromDone:
			sm.currAction = actionInsert
		default:
			sm.currAction = actionMod
		}
		return sm.currAction
	}
	commonIdx := sm.lcsIndices.data[sm.lcsIndices.index]
	switch {
	case sm.from.index == commonIdx.inA && sm.to.index == commonIdx.inB:
		sm.currAction = actionMatch
	case sm.from.index != commonIdx.inA && sm.to.index != commonIdx.inB:
		sm.currAction = actionMod
	case sm.from.index != commonIdx.inA:
		sm.currAction = actionDel
	default:
		sm.currAction = actionInsert
	}
	return sm.currAction
}

func (sm *lcsStateMachine) next() {
	switch sm.currAction {
	case actionMatch:
		sm.lcsIndices.index++
		fallthrough
	case actionMod:
		sm.from.index++
		sm.to.index++
	case actionDel:
		sm.from.index++
	case actionInsert:
		sm.to.index++
	}
}

func (sm *lcsStateMachine) fromItem() *yaml.Node {
	return sm.from.data[sm.from.index]
}

func (sm *lcsStateMachine) toItem() *yaml.Node {
	return sm.to.data[sm.to.index]
}

func (sm *lcsStateMachine) fromIndex() int {
	return sm.from.index
}

func (sm *lcsStateMachine) toIndex() int {
	return sm.to.index
}
