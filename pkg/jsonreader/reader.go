// Package jsonreader turns JSON documents into loosely typed lists and maps.
//
// Readers never fail: a missing source, a read error or a malformed document
// all give an empty result, and the problem is logged. Entries whose dynamic
// type does not match the requested element type are skipped.
package jsonreader

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
)

/////////////////////////////////////////////////////////////////////
// Lists
/////////////////////////////////////////////////////////////////////

// ToList reads a JSON array. Values are string, float64, bool, nil,
// []any or map[string]any. Nulls are only kept for interface element types.
func ToList[E any](logger *log.Logger, r io.Reader) []E {
	doc, ok := load(logger, r)
	if !ok {
		return []E{}
	}
	return ListFromResult[E](logger, doc)
}

func ListFromBytes[E any](logger *log.Logger, data []byte) []E {
	doc, ok := parse(logger, data)
	if !ok {
		return []E{}
	}
	return ListFromResult[E](logger, doc)
}

func ListFromFile[E any](logger *log.Logger, path string) []E {
	f, ok := open(logger, path)
	if !ok {
		return []E{}
	}
	defer f.Close()
	return ToList[E](logger, f)
}

func ListFromResult[E any](logger *log.Logger, doc gjson.Result) []E {
	list := []E{}
	if !doc.IsArray() {
		loggerOrDefault(logger).Printf("[jsonreader] expected a JSON array, got %s", doc.Type)
		return list
	}

	doc.ForEach(func(_, value gjson.Result) bool {
		if e, ok := convert[E](value); ok {
			list = append(list, e)
		}
		return true
	})
	return list
}

/////////////////////////////////////////////////////////////////////
// Maps
/////////////////////////////////////////////////////////////////////

// ToMap reads a JSON object.
func ToMap[V any](logger *log.Logger, r io.Reader) map[string]V {
	doc, ok := load(logger, r)
	if !ok {
		return map[string]V{}
	}
	return MapFromResult[V](logger, doc)
}

func MapFromBytes[V any](logger *log.Logger, data []byte) map[string]V {
	doc, ok := parse(logger, data)
	if !ok {
		return map[string]V{}
	}
	return MapFromResult[V](logger, doc)
}

func MapFromFile[V any](logger *log.Logger, path string) map[string]V {
	f, ok := open(logger, path)
	if !ok {
		return map[string]V{}
	}
	defer f.Close()
	return ToMap[V](logger, f)
}

func MapFromResult[V any](logger *log.Logger, doc gjson.Result) map[string]V {
	m := map[string]V{}
	if !doc.IsObject() {
		loggerOrDefault(logger).Printf("[jsonreader] expected a JSON object, got %s", doc.Type)
		return m
	}

	doc.ForEach(func(key, value gjson.Result) bool {
		if v, ok := convert[V](value); ok {
			m[key.String()] = v
		}
		return true
	})
	return m
}

// convert asserts a JSON value to T. A null is kept as the zero value
// when T is an interface type (any, error...), and dropped otherwise.
func convert[T any](value gjson.Result) (T, bool) {
	if value.Type == gjson.Null {
		var zero T
		return zero, reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface
	}
	t, ok := value.Value().(T)
	return t, ok
}

/////////////////////////////////////////////////////////////////////
// Loading
/////////////////////////////////////////////////////////////////////

func open(logger *log.Logger, path string) (*os.File, bool) {
	f, err := os.Open(path)
	if err != nil {
		// A missing file is just an empty document
		if !errors.Is(err, fs.ErrNotExist) {
			loggerOrDefault(logger).Printf("[jsonreader] failed to open %s: %v", path, err)
		}
		return nil, false
	}
	return f, true
}

func load(logger *log.Logger, r io.Reader) (gjson.Result, bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		loggerOrDefault(logger).Printf("[jsonreader] failed to read document: %v", err)
		return gjson.Result{}, false
	}
	return parse(logger, data)
}

func parse(logger *log.Logger, data []byte) (gjson.Result, bool) {
	if strings.TrimSpace(string(data)) == "" {
		return gjson.Result{}, false
	}
	if !gjson.ValidBytes(data) {
		loggerOrDefault(logger).Printf("[jsonreader] invalid JSON document (%d bytes)", len(data))
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(data), true
}

func loggerOrDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
