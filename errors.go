// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist

import "github.com/pkg/errors"

// Failures that are reported as values.
//
// Precondition violations (popping an empty list, dereferencing the end
// position, erasing after the last element) are programmer errors and panic
// with a "fwlist: ..." message instead. The Try* variants report them as a
// boolean.

// ErrNilConstructor is returned by the *Func operations when given a nil
// constructor or copier.
var ErrNilConstructor = errors.New("fwlist: nil constructor")

// wrapConstruct annotates a value construction failure.
// errors.Cause and errors.Is both reach the original error.
func wrapConstruct(err error) error {
	return errors.Wrap(err, "fwlist: construct value")
}

// wrapCopy annotates a failure to copy the element at index i.
func wrapCopy(err error, i int) error {
	return errors.Wrapf(err, "fwlist: copy element %d", i)
}
