// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fwlist_test

import (
	"fmt"
	"strconv"

	"code.hybscloud.com/fwlist"
)

func ExampleNew() {
	l := fwlist.New(1, 2, 3)
	for v := range l.All() {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

func ExampleList_InsertAfter() {
	var l fwlist.List[string]
	pos := l.BeforeBegin()
	for _, s := range []string{"a", "b", "c"} {
		pos = l.InsertAfter(pos, s)
	}
	l.InsertAfter(l.Begin(), "ab")
	fmt.Println(l.String(), l.GetSize())
	// Output: [a ab b c] 4
}

func ExampleList_EraseAfter() {
	l := fwlist.New(1, 2, 3, 4, 5, 6)
	// Erase every second element.
	for it := l.Begin(); !it.IsEnd(); {
		it = l.EraseAfter(it)
	}
	fmt.Println(l.String())
	// Output: [1 3 5]
}

func ExampleList_InsertAfterFunc() {
	l := fwlist.New(1, 3)
	_, err := l.InsertAfterFunc(l.Begin(), func() (int, error) { return strconv.Atoi("x") })
	fmt.Println(err != nil, l.String())
	_, err = l.InsertAfterFunc(l.Begin(), func() (int, error) { return strconv.Atoi("2") })
	fmt.Println(err, l.String())
	// Output:
	// true [1 3]
	// <nil> [1 2 3]
}

func ExampleCompare() {
	fmt.Println(fwlist.Compare(fwlist.New(1, 2), fwlist.New(1, 2, 3)))
	fmt.Println(fwlist.Compare(fwlist.New(1, 2, 3), fwlist.New(1, 2, 4)))
	fmt.Println(fwlist.Equal(fwlist.New(1, 2, 3), fwlist.New(1, 2, 3)))
	// Output:
	// -1
	// -1
	// true
}
