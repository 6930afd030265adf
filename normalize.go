package staylens

// typeDiscriminatorKey is the field the upstream's GraphQL layer attaches to
// every object. It carries no business data and only bloats speech output.
const typeDiscriminatorKey = "__typename"

// Normalize rebuilds a tree without null-valued object entries and without
// type-discriminator fields. Scalars pass through unchanged. Normalize is
// idempotent: normalizing an already-normalized tree returns an equal tree.
//
// Nulls inside arrays are kept; only object entries are stripped. Array
// elements still get normalized recursively.
func Normalize(n Node) Node {
	switch t := n.(type) {
	case *Object:
		out := NewObject()
		for _, k := range t.Keys() {
			if k == typeDiscriminatorKey {
				continue
			}
			v, _ := t.Get(k)
			if _, isNull := v.(Null); isNull {
				continue
			}
			out.Set(k, Normalize(v))
		}
		return out
	case Array:
		out := make(Array, len(t))
		for i, v := range t {
			out[i] = Normalize(v)
		}
		return out
	default:
		return n
	}
}
