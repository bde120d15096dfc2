// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/setop"
	"github.com/bitmark-inc/logger"
)

const (
	checkLoggerPrefix = "check"
)

// the value of every entry is the name of the set it was built for
type intMap = avl.Map[int, string]

// how each operation name is run
type operationKind int

const (
	traversalOperation operationKind = iota
	boundOperation
	countOperation
	setOperation
	checkOperation
)

type operationInfo struct {
	kind  operationKind
	order avl.Order
	setop setop.Kind
}

var operations = map[string]operationInfo{
	"inorder":              {kind: traversalOperation, order: avl.Inorder},
	"inorder_backward":     {kind: traversalOperation, order: avl.InorderBackward},
	"preorder":             {kind: traversalOperation, order: avl.Preorder},
	"postorder":            {kind: traversalOperation, order: avl.Postorder},
	"levelorder":           {kind: traversalOperation, order: avl.Levelorder},
	"lower_bound":          {kind: boundOperation, order: avl.LowerBound},
	"upper_bound":          {kind: boundOperation, order: avl.UpperBound},
	"count":                {kind: countOperation},
	"union":                {kind: setOperation, setop: setop.UnionKind},
	"intersection":         {kind: setOperation, setop: setop.IntersectionKind},
	"symmetric_difference": {kind: setOperation, setop: setop.SymmetricDifferenceKind},
	"subtraction":          {kind: setOperation, setop: setop.SubtractionKind},
	"check":                {kind: checkOperation},
}

// build every set, then run every operation writing one line each
func run(config *Configuration, w io.Writer, log *logger.L) error {

	sets, err := buildSets(config.Sets, log)
	if nil != err {
		return err
	}

	// reject a bad configuration before producing any output
	for i, op := range config.Operations {
		if err := validateOperation(op, sets); nil != err {
			return fmt.Errorf("operation: %d %q: %w", i, op.Op, err)
		}
	}

	for i, op := range config.Operations {
		line, err := runOperation(op, sets)
		if nil != err {
			log.Errorf("operation: %d %q failed: %s", i, op.Op, err)
			return fmt.Errorf("operation: %d %q: %w", i, op.Op, err)
		}
		log.Infof("%s", line)
		fmt.Fprintln(w, line)
	}
	return nil
}

// create the maps named in the configuration
func buildSets(list []SetType, log *logger.L) (map[string]*intMap, error) {
	sets := make(map[string]*intMap, len(list))

	for _, set := range list {
		m := avl.NewOrdered[int, string](set.Multiple)

		insert := func(k int) error {
			if err := m.Insert(avl.NewEntry(k, set.Name)); nil != err {
				return fmt.Errorf("set: %q key: %d: %w", set.Name, k, err)
			}
			return nil
		}

		for _, k := range set.Keys {
			if err := insert(k); nil != err {
				return nil, err
			}
		}

		copies := set.Range.Copies
		if 0 == copies {
			copies = 1
		}
		for k := set.Range.From; k < set.Range.To; k += 1 {
			for c := 0; c < copies; c += 1 {
				if err := insert(k); nil != err {
					return nil, err
				}
			}
		}

		log.Debugf("set: %q multiple: %t entries: %d", set.Name, set.Multiple, m.Len())
		sets[set.Name] = m
	}
	return sets, nil
}

func validateOperation(op OperationType, sets map[string]*intMap) error {
	info, ok := operations[op.Op]
	if !ok {
		return fault.ErrUnknownOperation
	}
	if _, ok := sets[op.A]; !ok {
		return fault.ErrMissingSet
	}
	if setOperation == info.kind {
		if _, ok := sets[op.B]; !ok {
			return fault.ErrMissingSet
		}
	}
	return nil
}

// run a single validated operation and format its result
func runOperation(op OperationType, sets map[string]*intMap) (string, error) {
	info := operations[op.Op]
	a := sets[op.A]

	switch info.kind {
	case traversalOperation:
		it, err := a.Iterate(info.order)
		if nil != err {
			return "", err
		}
		return formatKeys(fmt.Sprintf("%s(%s)", op.Op, op.A), it)

	case boundOperation:
		var it *avl.Iterator[int, string]
		if avl.LowerBound == info.order {
			it = a.LowerBound(op.Key)
		} else {
			it = a.UpperBound(op.Key)
		}
		return formatKeys(fmt.Sprintf("%s(%s, %d)", op.Op, op.A, op.Key), it)

	case countOperation:
		return fmt.Sprintf("%s(%s, %d): %d", op.Op, op.A, op.Key, a.Count(op.Key)), nil

	case setOperation:
		c, err := setop.New[int, string](info.setop, a.Inorder(), sets[op.B].Inorder())
		if nil != err {
			return "", err
		}
		return formatKeys(fmt.Sprintf("%s(%s, %s)", op.Op, op.A, op.B), c)

	case checkOperation:
		result := "ok"
		if err := a.Check(); nil != err {
			result = err.Error()
		}
		return fmt.Sprintf("%s(%s): %s", op.Op, op.A, result), nil
	}
	return "", fault.ErrUnknownOperation
}

// "label: k1 k2 ..." from the remainder of a cursor
func formatKeys(label string, c avl.Cursor[int, string]) (string, error) {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":")
	for ; c.More(); c.Next() {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(c.Key()))
	}
	if err := c.Err(); nil != err {
		return "", err
	}
	return b.String(), nil
}
