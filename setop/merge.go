// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package setop

// internal: find the next result entry from the current input
// positions
func (c *Cursor[K, V]) settle() {
	c.current = nil
	c.matched = nil
	c.pendingA = false
	c.pendingB = false

	switch c.kind {
	case UnionKind:
		c.union()
	case IntersectionKind:
		c.intersection()
	case SymmetricDifferenceKind:
		c.symmetricDifference()
	case SubtractionKind:
		c.subtraction()
	}

	// an input that stopped early invalidates the whole result
	err := c.a.Err()
	if nil == err {
		err = c.b.Err()
	}
	if nil != err {
		c.current = nil
		c.matched = nil
		c.err = err
	}
}

func (c *Cursor[K, V]) takeA() {
	c.current = c.a.Entry()
	c.pendingA = true
}

func (c *Cursor[K, V]) takeB() {
	c.current = c.b.Entry()
	c.pendingB = true
}

// lesser or equal key wins, ties go to a
func (c *Cursor[K, V]) union() {
	aMore := c.a.More()
	bMore := c.b.More()
	switch {
	case aMore && bMore:
		if c.compare(c.a.Key(), c.b.Key()) <= 0 {
			c.takeA()
		} else {
			c.takeB()
		}
	case aMore:
		c.takeA()
	case bMore:
		c.takeB()
	}
}

// step the lesser side until the keys agree
func (c *Cursor[K, V]) intersection() {
	for c.a.More() && c.b.More() {
		n := c.compare(c.a.Key(), c.b.Key())
		switch {
		case n < 0:
			c.a.Next()
		case n > 0:
			c.b.Next()
		default:
			c.takeA()
			c.matched = c.b.Entry()
			c.pendingB = true
			return
		}
	}
}

// as union, but a key present on both sides is dropped along with all
// of its duplicates
func (c *Cursor[K, V]) symmetricDifference() {
	for c.a.More() && c.b.More() {
		n := c.compare(c.a.Key(), c.b.Key())
		switch {
		case n < 0:
			c.takeA()
			return
		case n > 0:
			c.takeB()
			return
		}
		key := c.a.Key()
		for c.a.More() && 0 == c.compare(key, c.a.Key()) {
			c.a.Next()
		}
		for c.b.More() && 0 == c.compare(key, c.b.Key()) {
			c.b.Next()
		}
	}
	if c.a.More() {
		c.takeA()
	} else if c.b.More() {
		c.takeB()
	}
}

// b only ever moves past keys lower than a's
func (c *Cursor[K, V]) subtraction() {
	for c.a.More() {
		if !c.b.More() {
			c.takeA()
			return
		}
		n := c.compare(c.a.Key(), c.b.Key())
		switch {
		case n < 0:
			c.takeA()
			return
		case n > 0:
			c.b.Next()
		default:
			c.a.Next()
		}
	}
}
