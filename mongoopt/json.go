// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongoopt

import (
	"fmt"
	"hash"
	"io"
	"reflect"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// documentValue returns the embedded document stored under key, or nil if the
// key is missing or holds something other than a document.
func documentValue(doc bson.M, key string) bson.M {
	switch v := doc[key].(type) {
	case bson.M:
		return v
	case map[string]interface{}:
		return bson.M(v)
	}
	return nil
}

// boolValue returns the boolean stored under key, or def if the key is
// missing or holds a non-boolean.
func boolValue(doc bson.M, key string, def bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return def
}

// optionalBoolValue returns a pointer to the boolean stored under key, or nil
// if the key is missing, null, or holds a non-boolean.
func optionalBoolValue(doc bson.M, key string) *bool {
	if v, ok := doc[key].(bool); ok {
		return &v
	}
	return nil
}

// stringValue returns the string stored under key, or def if the key is
// missing or holds a non-string.
func stringValue(doc bson.M, key string, def string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return def
}

// int64Value returns the integer stored under key widened to int64, or def if
// the key is missing or holds a non-numeric value. Floating point values are
// truncated; JSON decoding produces float64 for every number.
func int64Value(doc bson.M, key string, def int64) int64 {
	switch v := doc[key].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return def
}

// documentEqual reports whether two embedded documents hold equal values,
// with nil (absent) equal only to nil. An empty document is present, not
// absent.
func documentEqual(a, b bson.M) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

func optionalBoolEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Hashing below feeds field contents into an FNV-1a hash so that equal
// options values produce equal hashes. Each field is prefixed with a presence
// byte to keep absent distinct from zero-valued.

func hashDocument(h hash.Hash64, doc bson.M) {
	if doc == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		io.WriteString(h, k)
		// fmt prints nested maps in sorted key order, keeping this
		// deterministic for arbitrarily nested documents.
		fmt.Fprintf(h, "=%v;", doc[k])
	}
}

func hashBool(h hash.Hash64, b bool) {
	if b {
		h.Write([]byte{1})
		return
	}
	h.Write([]byte{0})
}

func hashOptionalBool(h hash.Hash64, b *bool) {
	if b == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	hashBool(h, *b)
}

func hashInt64(h hash.Hash64, i int64) {
	var buf [8]byte
	for idx := 0; idx < 8; idx++ {
		buf[idx] = byte(i >> (8 * uint(idx)))
	}
	h.Write(buf[:])
}
