package staylens

// Project filters a tree down to the fields named in a schema. It is a strict
// whitelist: any field absent from the schema is dropped silently, which is
// the mechanism by which output stays stable while the upstream structure
// churns. Schema keys absent from the node are skipped; schema entries are
// optional hints, not required fields.
//
// An array input is projected element-wise with the same schema. A scalar
// input passes through unchanged.
func Project(n Node, schema Schema) Node {
	switch t := n.(type) {
	case *Object:
		out := NewObject()
		for _, f := range schema {
			v, ok := t.Get(f.Key)
			if !ok {
				continue
			}
			if f.Rule.IncludeAll {
				out.Set(f.Key, v)
				continue
			}
			out.Set(f.Key, Project(v, f.Rule.Nested))
		}
		return out
	case Array:
		out := make(Array, len(t))
		for i, v := range t {
			out[i] = Project(v, schema)
		}
		return out
	default:
		return n
	}
}
