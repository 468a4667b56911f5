// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongoopt

import (
	"encoding/json"
	"hash/fnv"

	"go.mongodb.org/mongo-driver/bson"
)

// FindOneAndDeleteOptions represents all possible options for a
// findOneAndDelete operation. A delete has no document to validate and no
// post-image to return, so it carries only projection, sort, and maxTimeMS.
type FindOneAndDeleteOptions struct {
	projection bson.M
	sort       bson.M
	maxTimeMS  int64
}

// NewFindOneAndDeleteOptions creates a FindOneAndDeleteOptions with every
// field at its default: no projection, no sort, no time limit.
func NewFindOneAndDeleteOptions() *FindOneAndDeleteOptions {
	return &FindOneAndDeleteOptions{}
}

// FindOneAndDeleteOptionsFromJSON creates a FindOneAndDeleteOptions from its
// generic JSON document form, substituting defaults for missing keys.
func FindOneAndDeleteOptionsFromJSON(doc bson.M) *FindOneAndDeleteOptions {
	return &FindOneAndDeleteOptions{
		projection: documentValue(doc, "projection"),
		sort:       documentValue(doc, "sort"),
		maxTimeMS:  int64Value(doc, "maxTimeMS", 0),
	}
}

// Copy returns a field-for-field copy of o, sharing the nested projection and
// sort documents.
func (o *FindOneAndDeleteOptions) Copy() *FindOneAndDeleteOptions {
	c := *o
	return &c
}

// Projection returns the projection document, or nil if none is set.
func (o *FindOneAndDeleteOptions) Projection() bson.M {
	return o.projection
}

// SetProjection sets the fields to return for the matching document.
func (o *FindOneAndDeleteOptions) SetProjection(projection bson.M) *FindOneAndDeleteOptions {
	o.projection = projection
	return o
}

// Sort returns the sort document, or nil if none is set.
func (o *FindOneAndDeleteOptions) Sort() bson.M {
	return o.sort
}

// SetSort sets the sort order applied before selecting the matching document.
func (o *FindOneAndDeleteOptions) SetSort(sort bson.M) *FindOneAndDeleteOptions {
	o.sort = sort
	return o
}

// MaxTimeMS returns the operation time limit in milliseconds; 0 means unset.
func (o *FindOneAndDeleteOptions) MaxTimeMS() int64 {
	return o.maxTimeMS
}

// SetMaxTimeMS sets the maximum execution time for the operation in
// milliseconds.
func (o *FindOneAndDeleteOptions) SetMaxTimeMS(maxTimeMS int64) *FindOneAndDeleteOptions {
	o.maxTimeMS = maxTimeMS
	return o
}

// ToJSON converts o to its generic JSON document form. Unset projection and
// sort are omitted; maxTimeMS is always written.
func (o *FindOneAndDeleteOptions) ToJSON() bson.M {
	doc := bson.M{"maxTimeMS": o.maxTimeMS}
	if o.projection != nil {
		doc["projection"] = o.projection
	}
	if o.sort != nil {
		doc["sort"] = o.sort
	}
	return doc
}

// MarshalJSON implements json.Marshaler with the same contents as ToJSON and
// a fixed key order.
func (o *FindOneAndDeleteOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Projection bson.M `json:"projection,omitempty"`
		Sort       bson.M `json:"sort,omitempty"`
		MaxTimeMS  int64  `json:"maxTimeMS"`
	}{
		Projection: o.projection,
		Sort:       o.sort,
		MaxTimeMS:  o.maxTimeMS,
	})
}

// UnmarshalJSON implements json.Unmarshaler with the defaulting rules of
// FindOneAndDeleteOptionsFromJSON.
func (o *FindOneAndDeleteOptions) UnmarshalJSON(data []byte) error {
	var doc bson.M
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*o = *FindOneAndDeleteOptionsFromJSON(doc)
	return nil
}

// Equal reports whether o and other hold equal values for all three fields.
func (o *FindOneAndDeleteOptions) Equal(other *FindOneAndDeleteOptions) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	return o.maxTimeMS == other.maxTimeMS &&
		documentEqual(o.projection, other.projection) &&
		documentEqual(o.sort, other.sort)
}

// Hash returns a hash over the same three fields Equal compares.
func (o *FindOneAndDeleteOptions) Hash() uint64 {
	h := fnv.New64a()
	hashDocument(h, o.projection)
	hashDocument(h, o.sort)
	hashInt64(h, o.maxTimeMS)
	return h.Sum64()
}
