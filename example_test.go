// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist_test

import (
	"errors"
	"fmt"
	"strconv"

	"code.hybscloud.com/hlist"
	"code.hybscloud.com/hlist/tuple"
)

func Example() {
	l := hlist.Of3(1, 2.0, true)
	fmt.Println(l, l.Len())

	b, _ := hlist.Get[bool](l)
	fmt.Println(b)

	l4 := hlist.Append3(l, "four")
	fmt.Println(l4.Len(), hlist.At3(l4))

	fmt.Println(hlist.ToTuple3(l) == tuple.New3(1, 2.0, true))
	// Output:
	// [1 2 true] 3
	// true
	// 4 four
	// true
}

func ExampleGet() {
	l := hlist.Of3(1, "a", 2)
	s, _ := hlist.Get[string](l)
	fmt.Println(s)

	_, err := hlist.Get[int](l)
	fmt.Println(errors.Is(err, hlist.ErrAmbiguous))
	fmt.Println(err)
	// Output:
	// a
	// true
	// hlist: Get[int]: element type is ambiguous (2 matches)
}

func ExampleMap2() {
	l := hlist.Map2(hlist.Of2(42, "seven"), strconv.Itoa, func(s string) int { return len(s) })
	fmt.Println(l)
	// Output:
	// [42 5]
}

func ExampleVisit() {
	err := hlist.Visit(hlist.Of2(celsius(21.5), name("bob")), func(i int, s fmt.Stringer) {
		fmt.Println(i, s)
	})
	fmt.Println(err)
	// Output:
	// 0 21.5C
	// 1 bob
	// <nil>
}

func ExampleZip2() {
	z := hlist.Zip2(hlist.Of2(1, "a"), hlist.Of2(true, 2.5))
	fmt.Printf("%+v\n", hlist.At1(z))
	// Output:
	// {Fst:a Snd:2.5}
}
