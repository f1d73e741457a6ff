// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hlist

import (
	"fmt"
	"strings"
)

// String returns "[]".
func (Nil) String() string { return "[]" }

// String formats the elements with their default formats, space separated
// and enclosed in brackets: "[1 2.5 true]".
func (c Cons[H, T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	c.each(0, func(i int, e Erased) bool {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, e)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
