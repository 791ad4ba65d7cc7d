// Package pjson renders a small JSON value tree in a human-reviewable
// layout: each array or object tries to fit on one line within a column
// budget, and only falls back to one element per line, indented two
// spaces deeper, where it doesn't fit. The line-folding rule is bespoke
// to the trained-artifact format this project saves, so it is implemented
// directly rather than routed through a generic indenting encoder.
package pjson

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Node is a JSON value in the ordered tree pjson renders. Unlike a
// map[string]any, Object preserves field order, since an artifact's key
// order is part of its human-reviewable contract.
type Node interface {
	compact() string
}

// String, Number, Int, and Bool are the JSON scalar node kinds.
type (
	String string
	Number float64
	Int    int64
	Bool   bool
)

// Array is an ordered JSON array node.
type Array []Node

// Field is one key/value pair of an Object, in declaration order.
type Field struct {
	Key   string
	Value Node
}

// Object is an ordered JSON object node.
type Object []Field

func (s String) compact() string { return quote(string(s)) }
func (n Number) compact() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (n Int) compact() string    { return strconv.FormatInt(int64(n), 10) }
func (b Bool) compact() string   { return strconv.FormatBool(bool(b)) }

func (a Array) compact() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.compact()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (o Object) compact() string {
	parts := make([]string, len(o))
	for i, f := range o {
		parts[i] = quote(f.Key) + ":" + f.Value.compact()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// Render returns n serialized in the project's layout: a value that fits
// within maxlen stays on one line; an Array or Object that doesn't is
// expanded one element per line, each nested two spaces further,
// recursively.
func Render(n Node, maxlen int) string {
	return strings.Join(serialize(n, maxlen), "\n")
}

func serialize(n Node, maxlen int) []string {
	short := n.compact()
	arr, isArray := n.(Array)
	obj, isObject := n.(Object)
	if len(short) <= maxlen || (!isArray && !isObject) {
		return []string{short}
	}
	if isArray {
		return serializeArray(arr, maxlen)
	}
	return serializeObject(obj, maxlen)
}

func serializeArray(arr Array, maxlen int) []string {
	lines := []string{"["}
	var last string
	haveLast := false
	for _, item := range arr {
		if haveLast {
			lines = append(lines, last+",")
			haveLast = false
		}
		for _, subline := range serialize(item, maxlen-2) {
			if haveLast {
				lines = append(lines, last)
			}
			last = "  " + subline
			haveLast = true
		}
	}
	if haveLast {
		lines = append(lines, last)
	}
	return append(lines, "]")
}

func serializeObject(obj Object, maxlen int) []string {
	lines := []string{"{"}
	var last string
	haveLast := false
	for _, f := range obj {
		if haveLast {
			lines = append(lines, last+",")
			haveLast = false
		}

		keyRepr := quote(f.Key)
		shortLine := "  " + keyRepr + ": " + f.Value.compact()
		if len(shortLine) <= maxlen+1 {
			last, haveLast = shortLine, true
			continue
		}

		for _, subline := range serialize(f.Value, maxlen-2) {
			if !haveLast {
				last, haveLast = "  "+keyRepr+": "+subline, true
			} else {
				lines = append(lines, last)
				last = "  " + subline
			}
		}
	}
	if haveLast {
		lines = append(lines, last)
	}
	return append(lines, "}")
}
