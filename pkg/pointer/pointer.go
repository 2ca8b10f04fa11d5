// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer reads optional request fields.

JSON bodies mark "absent" with a nil pointer; these helpers collapse that
into a value without an if-block at every call site.
*/
package pointer

// Or dereferences p, or returns fallback when p is nil.
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
