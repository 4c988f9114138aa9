// Package store opens the host's persisted JSON stores and answers lookups
// against them.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ErrNotFound is returned when a pointer does not resolve to a value.
var ErrNotFound = errors.New("no data at path")

// Document is one parsed store. It is read-only.
type Document struct {
	path string
	raw  []byte
	root any
}

// Entry is one member of a JSON object, in document order.
type Entry struct {
	Key   string
	Value any
}

// Parse parses data as the store found at path.
func Parse(path string, data []byte) (*Document, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return &Document{path: path, raw: data, root: root}, nil
}

// Path returns the store path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Get returns the value at a JSON pointer. Both "" and "/" address the whole
// document; "/customCommands" addresses a top-level member.
func (d *Document) Get(pointer string) (any, error) {
	segments := splitPointer(pointer)
	if len(segments) == 0 {
		return d.root, nil
	}

	x := jp.R()
	for _, s := range segments {
		x = x.C(s)
	}
	results := x.Get(d.root)
	if len(results) == 0 {
		return nil, fmt.Errorf("%s%s: %w", d.path, pointer, ErrNotFound)
	}
	return results[0], nil
}

// Query runs a JSONPath selector against the document.
func (d *Document) Query(selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return x.Get(d.root), nil
}

// Entries returns the members of the object at pointer in the order they
// appear in the file. Plain Go maps lose that order, so the object is walked
// over the raw bytes.
func (d *Document) Entries(pointer string) ([]Entry, error) {
	segments := splitPointer(pointer)
	value, dataType, _, err := jsonparser.Get(d.raw, segments...)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, fmt.Errorf("%s%s: %w", d.path, pointer, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s%s: %w", d.path, pointer, err)
	}
	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("%s%s: expected an object, found %s", d.path, pointer, dataType)
	}

	var entries []Entry
	err = jsonparser.ObjectEach(value, func(key, member []byte, memberType jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		v, err := decodeMember(member, memberType)
		if err != nil {
			return fmt.Errorf("member %q: %w", k, err)
		}
		entries = append(entries, Entry{Key: k, Value: v})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s%s: %w", d.path, pointer, err)
	}
	return entries, nil
}

func decodeMember(member []byte, memberType jsonparser.ValueType) (any, error) {
	switch memberType {
	case jsonparser.String:
		return jsonparser.ParseString(member)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(member)
	case jsonparser.Null:
		return nil, nil
	default:
		return oj.Parse(member)
	}
}

// splitPointer turns a JSON pointer into unescaped member names. Empty
// segments are dropped so that "/" means the root, as the host's store
// library treats it.
func splitPointer(pointer string) []string {
	var segments []string
	for _, s := range strings.Split(pointer, "/") {
		if s == "" {
			continue
		}
		s = strings.ReplaceAll(s, "~1", "/")
		s = strings.ReplaceAll(s, "~0", "~")
		segments = append(segments, s)
	}
	return segments
}
