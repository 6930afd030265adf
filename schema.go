package staylens

// Schema is a declarative whitelist describing which fields of an upstream
// object survive projection. It is ordered: output key order follows schema
// declaration order, not input order. A schema describes the shape of one
// object; when applied to an array it is mapped over the elements.
//
// The original used nested dict literals with boolean leaves as a pseudo-DSL.
// Here each entry is an explicit tagged variant: either "include the raw
// subtree as-is" or "recurse with this nested schema".
type Schema []Field

// Field is one schema entry.
type Field struct {
	Key  string
	Rule Rule
}

// Rule is the tagged variant attached to a schema key. Exactly one of the
// two forms is set: IncludeAll copies the node's value verbatim, otherwise
// Nested projects the value recursively.
type Rule struct {
	IncludeAll bool
	Nested     Schema
}

// Include returns a field whose value is copied verbatim.
func Include(key string) Field {
	return Field{Key: key, Rule: Rule{IncludeAll: true}}
}

// Nested returns a field whose value is projected with a nested schema.
func Nested(key string, fields ...Field) Field {
	return Field{Key: key, Rule: Rule{Nested: Schema(fields)}}
}
