// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"code.hybscloud.com/fwlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// parseList builds a list from sep-joined integers, in order.
func parseList(s, sep string) (*fwlist.List[int], error) {
	l := &fwlist.List[int]{}
	if s == "" {
		return l, nil
	}
	pos := l.BeforeBegin()
	for i, tok := range strings.Split(s, sep) {
		next, err := l.InsertAfterFunc(pos, atoi(tok))
		if err != nil {
			return nil, errors.WithMessagef(err, "element %d", i)
		}
		pos = next
	}
	return l, nil
}

// applyOp applies one edit op to l. On error l is unchanged.
func applyOp(log logrus.FieldLogger, l *fwlist.List[int], op string) error {
	name, arg, _ := strings.Cut(op, ":")
	log = log.WithFields(logrus.Fields{"op": name, "arg": arg})

	var err error
	switch name {
	case "push":
		_, err = l.PushFrontFunc(atoi(arg))
	case "pop":
		if _, ok := l.TryPopFront(); !ok {
			err = errors.New("pop on empty list")
		}
	case "insert":
		err = insertOp(l, arg)
	case "erase":
		err = eraseOp(l, arg)
	case "set":
		err = setOp(l, arg)
	case "reverse":
		var r fwlist.List[int]
		for v := range l.All() {
			r.PushFront(v)
		}
		l.Swap(&r)
	case "clear":
		l.Clear()
	default:
		err = errors.Errorf("unknown op %q", name)
	}
	if err != nil {
		return errors.WithMessagef(err, "op %q", op)
	}
	log.WithField("size", l.GetSize()).Debug("applied")
	return nil
}

func insertOp(l *fwlist.List[int], arg string) error {
	idx, val, ok := strings.Cut(arg, "=")
	if !ok {
		return errors.New("want I=V")
	}
	pos, err := positionAt(l, idx, 0)
	if err != nil {
		return err
	}
	_, err = l.InsertAfterFunc(pos, atoi(val))
	return err
}

func eraseOp(l *fwlist.List[int], arg string) error {
	pos, err := positionAt(l, arg, 0)
	if err != nil {
		return err
	}
	if _, ok := l.TryEraseAfter(pos); !ok {
		return errors.Errorf("position %s has no successor", arg)
	}
	return nil
}

func setOp(l *fwlist.List[int], arg string) error {
	idx, val, ok := strings.Cut(arg, "=")
	if !ok {
		return errors.New("want I=V")
	}
	pos, err := positionAt(l, idx, 1)
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return errors.Wrap(err, "value")
	}
	pos.Set(v)
	return nil
}

// positionAt resolves a position index, where 0 is before-begin and k is the
// k-th element. Indices below lo or past the last element are rejected.
func positionAt(l *fwlist.List[int], s string, lo int) (fwlist.Iterator[int], error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fwlist.Iterator[int]{}, errors.Wrap(err, "position")
	}
	if i < lo || i > l.GetSize() {
		return fwlist.Iterator[int]{}, errors.Errorf("position %d out of range [%d, %d]", i, lo, l.GetSize())
	}
	return l.BeforeBegin().Advance(i), nil
}

func atoi(s string) func() (int, error) {
	return func() (int, error) { return strconv.Atoi(strings.TrimSpace(s)) }
}
