package staylens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Node is the generic JSON tree the extraction pipeline operates on. It is a
// closed sum over the six JSON value kinds: *Object, Array, String, Number,
// Bool and Null. Exhaustive switches over Node eliminate the "missing case"
// bugs a dynamically-typed tree walk can silently ignore.
type Node interface {
	node()
}

// Object is a JSON object that preserves key insertion order. Plain Go maps
// (and encoding/json) sort keys on output, but downstream consumers expect
// fields in schema declaration order, so ordering is part of the contract.
type Object struct {
	keys   []string
	values map[string]Node
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Node)}
}

// Set stores a value under key. A new key is appended to the key order; an
// existing key keeps its original position.
func (o *Object) Set(key string, v Node) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Node, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// GetObject returns the value under key if it is an object.
func (o *Object) GetObject(key string) (*Object, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Object)
	return obj, ok
}

// GetArray returns the value under key if it is an array.
func (o *Object) GetArray(key string) (Array, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.(Array)
	return arr, ok
}

// GetString returns the value under key if it is a string.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// Array is a JSON array.
type Array []Node

// String is a JSON string.
type String string

// Number is a JSON number held as its source literal, so values round-trip
// without floating point reformatting (e.g. "4.92" stays "4.92").
type Number string

// Float64 returns the numeric value, or 0 if the literal cannot be parsed.
func (n Number) Float64() float64 {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0
	}
	return f
}

// NumberFromFloat returns a Number with the shortest literal that represents f.
func NumberFromFloat(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// NumberFromInt returns a Number for i.
func NumberFromInt(i int) Number {
	return Number(strconv.Itoa(i))
}

// Bool is a JSON boolean.
type Bool bool

// Null is a JSON null.
type Null struct{}

func (o *Object) node() {}
func (a Array) node()   {}
func (s String) node()  {}
func (n Number) node()  {}
func (b Bool) node()    {}
func (n Null) node()    {}

// MarshalJSON implements json.Marshaler preserving key insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON writes the number literal verbatim.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// MarshalJSON implements json.Marshaler.
func (n Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// ParseNode decodes JSON text into a Node tree, preserving object key order
// and number literals.
func ParseNode(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := parseValue(dec)
	if err != nil {
		return nil, Errorf(EPAYLOADMALFORMED, "invalid JSON payload: %v", err)
	}
	return n, nil
}

func parseValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
