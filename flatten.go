package staylens

import "strings"

// Flatten collapses nested structure into single human-readable strings for
// speech-oriented consumers that cannot render tables. Arrays become one
// string joining their flattened elements with ", ". Objects encountered
// inside an array collapse to their flattened values joined with ": " (lossy
// on purpose — once inside a list, structure degrades to one descriptive
// line). Objects outside any array keep their shape with each value
// flattened independently. Scalars pass through.
//
// The asymmetry means the final JSON keeps its named top-level fields while
// any list-of-structured-things reads as a sentence.
func Flatten(n Node) Node {
	return flattenValue(n, false)
}

func flattenValue(n Node, insideArray bool) Node {
	switch t := n.(type) {
	case Array:
		parts := make([]string, len(t))
		for i, v := range t {
			parts[i] = scalarText(flattenValue(v, true))
		}
		return String(strings.Join(parts, ", "))
	case *Object:
		if insideArray {
			parts := make([]string, 0, t.Len())
			for _, k := range t.Keys() {
				v, _ := t.Get(k)
				parts = append(parts, scalarText(flattenValue(v, true)))
			}
			return String(strings.Join(parts, ": "))
		}
		out := NewObject()
		for _, k := range t.Keys() {
			v, _ := t.Get(k)
			out.Set(k, flattenValue(v, false))
		}
		return out
	default:
		return n
	}
}

// scalarText renders a flattened node as text for joining.
func scalarText(n Node) string {
	switch t := n.(type) {
	case String:
		return string(t)
	case Number:
		return string(t)
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	default:
		// Arrays and objects are already collapsed by flattenValue before
		// scalarText is called.
		return ""
	}
}
