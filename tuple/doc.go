// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tuple provides fixed-arity tuple types T0 through T12.
//
// A tuple T3[A, B, C] has fields V0, V1 and V2. Tuples are the flat
// counterpart of the nested lists of package hlist, which converts between
// the two.
package tuple
