// Package parser is the public facade over internal/recordparse: the
// single variadic/builder Record constructor, plus Record1..Record12
// arity-specific wrappers that type-check the field count against the
// constructor's signature at compile time. Most callers should reach for
// a RecordN wrapper; Record itself remains available for arities above 12
// or for callers that prefer assembling []any by hand.
package parser

import (
	"github.com/rchillyard/tableparser/internal/header"
	"github.com/rchillyard/tableparser/internal/recordparse"
)

// FieldBinder re-exports recordparse.FieldBinder so callers of this
// package never need to import internal/recordparse directly.
type FieldBinder = recordparse.FieldBinder

// Parser re-exports recordparse.Parser.
type Parser[R any] = recordparse.Parser[R]

// Scalar builds a required scalar field binding.
func Scalar[T any](name string, parse func(string) (T, error), candidates ...string) FieldBinder {
	return recordparse.Scalar(name, parse, candidates...)
}

// OptionalScalar builds a field binding that substitutes an empty cell
// when the column is missing entirely from the header.
func OptionalScalar[T any](name string, parse func(string) (T, error), candidates ...string) FieldBinder {
	return recordparse.OptionalScalar(name, parse, candidates...)
}

// Nested builds a field binding for a nested record of type T.
func Nested[T any](name string, sub *Parser[T]) FieldBinder {
	return recordparse.Nested(name, sub)
}

// Record is the variadic core: build receives resolved field values in
// field order and assembles R, or reports a construction-time error.
func Record[R any](build func(vals []any) (R, error), fields ...FieldBinder) *Parser[R] {
	return recordparse.New(build, fields...)
}

// Bind parses one row of cells against h using p.
func Bind[R any](p *Parser[R], h *header.Header, cells []string) (R, error) {
	return p.Parse(h, cells)
}


// Record1 builds a Parser[R] from a 1-ary constructor, matching
// field count at compile time.
func Record1[A any, R any](build func(A) R, f1 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		return build(v1), nil
	}, f1)
}

// Record2 builds a Parser[R] from a 2-ary constructor, matching
// field count at compile time.
func Record2[A any, B any, R any](build func(A, B) R, f1 FieldBinder, f2 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		return build(v1, v2), nil
	}, f1, f2)
}

// Record3 builds a Parser[R] from a 3-ary constructor, matching
// field count at compile time.
func Record3[A any, B any, C any, R any](build func(A, B, C) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		return build(v1, v2, v3), nil
	}, f1, f2, f3)
}

// Record4 builds a Parser[R] from a 4-ary constructor, matching
// field count at compile time.
func Record4[A any, B any, C any, D any, R any](build func(A, B, C, D) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		return build(v1, v2, v3, v4), nil
	}, f1, f2, f3, f4)
}

// Record5 builds a Parser[R] from a 5-ary constructor, matching
// field count at compile time.
func Record5[A any, B any, C any, D any, E any, R any](build func(A, B, C, D, E) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		return build(v1, v2, v3, v4, v5), nil
	}, f1, f2, f3, f4, f5)
}

// Record6 builds a Parser[R] from a 6-ary constructor, matching
// field count at compile time.
func Record6[A any, B any, C any, D any, E any, F any, R any](build func(A, B, C, D, E, F) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		return build(v1, v2, v3, v4, v5, v6), nil
	}, f1, f2, f3, f4, f5, f6)
}

// Record7 builds a Parser[R] from a 7-ary constructor, matching
// field count at compile time.
func Record7[A any, B any, C any, D any, E any, F any, G any, R any](build func(A, B, C, D, E, F, G) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder, f7 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		v7 := vals[6].(G)
		return build(v1, v2, v3, v4, v5, v6, v7), nil
	}, f1, f2, f3, f4, f5, f6, f7)
}

// Record8 builds a Parser[R] from a 8-ary constructor, matching
// field count at compile time.
func Record8[A any, B any, C any, D any, E any, F any, G any, H any, R any](build func(A, B, C, D, E, F, G, H) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder, f7 FieldBinder, f8 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		v7 := vals[6].(G)
		v8 := vals[7].(H)
		return build(v1, v2, v3, v4, v5, v6, v7, v8), nil
	}, f1, f2, f3, f4, f5, f6, f7, f8)
}

// Record9 builds a Parser[R] from a 9-ary constructor, matching
// field count at compile time.
func Record9[A any, B any, C any, D any, E any, F any, G any, H any, I any, R any](build func(A, B, C, D, E, F, G, H, I) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder, f7 FieldBinder, f8 FieldBinder, f9 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		v7 := vals[6].(G)
		v8 := vals[7].(H)
		v9 := vals[8].(I)
		return build(v1, v2, v3, v4, v5, v6, v7, v8, v9), nil
	}, f1, f2, f3, f4, f5, f6, f7, f8, f9)
}

// Record10 builds a Parser[R] from a 10-ary constructor, matching
// field count at compile time.
func Record10[A any, B any, C any, D any, E any, F any, G any, H any, I any, J any, R any](build func(A, B, C, D, E, F, G, H, I, J) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder, f7 FieldBinder, f8 FieldBinder, f9 FieldBinder, f10 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		v7 := vals[6].(G)
		v8 := vals[7].(H)
		v9 := vals[8].(I)
		v10 := vals[9].(J)
		return build(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10), nil
	}, f1, f2, f3, f4, f5, f6, f7, f8, f9, f10)
}

// Record11 builds a Parser[R] from a 11-ary constructor, matching
// field count at compile time.
func Record11[A any, B any, C any, D any, E any, F any, G any, H any, I any, J any, K any, R any](build func(A, B, C, D, E, F, G, H, I, J, K) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder, f7 FieldBinder, f8 FieldBinder, f9 FieldBinder, f10 FieldBinder, f11 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		v7 := vals[6].(G)
		v8 := vals[7].(H)
		v9 := vals[8].(I)
		v10 := vals[9].(J)
		v11 := vals[10].(K)
		return build(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11), nil
	}, f1, f2, f3, f4, f5, f6, f7, f8, f9, f10, f11)
}

// Record12 builds a Parser[R] from a 12-ary constructor, matching
// field count at compile time.
func Record12[A any, B any, C any, D any, E any, F any, G any, H any, I any, J any, K any, L any, R any](build func(A, B, C, D, E, F, G, H, I, J, K, L) R, f1 FieldBinder, f2 FieldBinder, f3 FieldBinder, f4 FieldBinder, f5 FieldBinder, f6 FieldBinder, f7 FieldBinder, f8 FieldBinder, f9 FieldBinder, f10 FieldBinder, f11 FieldBinder, f12 FieldBinder) *Parser[R] {
	return recordparse.New(func(vals []any) (R, error) {
		v1 := vals[0].(A)
		v2 := vals[1].(B)
		v3 := vals[2].(C)
		v4 := vals[3].(D)
		v5 := vals[4].(E)
		v6 := vals[5].(F)
		v7 := vals[6].(G)
		v8 := vals[7].(H)
		v9 := vals[8].(I)
		v10 := vals[9].(J)
		v11 := vals[10].(K)
		v12 := vals[11].(L)
		return build(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12), nil
	}, f1, f2, f3, f4, f5, f6, f7, f8, f9, f10, f11, f12)
}
