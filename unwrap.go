package staylens

import (
	"strconv"
	"strings"
)

// Unwrap descends into a node along a key path. Path segments index objects
// by key; segments that parse as integers index arrays by position. The path
// to the interesting data differs by upstream deployment (e.g.
// "niobeClientData.0.1.data" vs "props.pageProps"), so callers configure it.
//
// A missing key fails with ESCHEMAMISMATCH listing the keys actually present
// at the point of failure. Against an undocumented upstream that diagnostic
// is the only way to see what the structure changed into.
func Unwrap(n Node, path ...string) (Node, error) {
	cur := n
	for i, seg := range path {
		switch t := cur.(type) {
		case *Object:
			next, ok := t.Get(seg)
			if !ok {
				return nil, Errorf(ESCHEMAMISMATCH,
					"key %q not found at %q, available keys: [%s]",
					seg, pathString(path[:i]), strings.Join(t.Keys(), ", "))
			}
			cur = next
		case Array:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, Errorf(ESCHEMAMISMATCH,
					"expected object at %q, found array", pathString(path[:i]))
			}
			if idx < 0 || idx >= len(t) {
				return nil, Errorf(ESCHEMAMISMATCH,
					"index %d out of range at %q (length %d)",
					idx, pathString(path[:i]), len(t))
			}
			cur = t[idx]
		default:
			return nil, Errorf(ESCHEMAMISMATCH,
				"cannot descend into scalar at %q", pathString(path[:i]))
		}
	}
	return cur, nil
}

func pathString(segs []string) string {
	if len(segs) == 0 {
		return "$"
	}
	return "$." + strings.Join(segs, ".")
}
