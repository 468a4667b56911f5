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

// DefaultReturnDocument is the ReturnDocument used by findOneAndUpdate and
// findOneAndReplace operations when none is configured: the document is
// returned as it was before the modification.
const DefaultReturnDocument = Before

// FindOneAndUpdateOptions represents all possible options for a
// findOneAndUpdate operation.
type FindOneAndUpdateOptions struct {
	projection               bson.M
	sort                     bson.M
	upsert                   bool
	returnDocument           ReturnDocument
	maxTimeMS                int64
	bypassDocumentValidation *bool
}

// NewFindOneAndUpdateOptions creates a FindOneAndUpdateOptions with every
// field at its default: no projection, no sort, upsert off, returnDocument
// BEFORE, no time limit, and document validation left to the server.
func NewFindOneAndUpdateOptions() *FindOneAndUpdateOptions {
	return &FindOneAndUpdateOptions{returnDocument: DefaultReturnDocument}
}

// FindOneAndUpdateOptionsFromJSON creates a FindOneAndUpdateOptions from its
// generic JSON document form. Missing keys take their default values;
// "returnDocument" must name a known ReturnDocument or decoding fails with
// ErrInvalidReturnDocument.
func FindOneAndUpdateOptionsFromJSON(doc bson.M) (*FindOneAndUpdateOptions, error) {
	rd, err := ReturnDocumentFromString(stringValue(doc, "returnDocument", DefaultReturnDocument.String()))
	if err != nil {
		return nil, err
	}

	return &FindOneAndUpdateOptions{
		projection:               documentValue(doc, "projection"),
		sort:                     documentValue(doc, "sort"),
		upsert:                   boolValue(doc, "upsert", false),
		returnDocument:           rd,
		maxTimeMS:                int64Value(doc, "maxTimeMS", 0),
		bypassDocumentValidation: optionalBoolValue(doc, "bypassDocumentValidation"),
	}, nil
}

// Copy returns a field-for-field copy of o. The projection and sort documents
// are shared with o, not cloned; mutating them afterwards is visible through
// both instances.
func (o *FindOneAndUpdateOptions) Copy() *FindOneAndUpdateOptions {
	c := *o
	return &c
}

// Projection returns the projection document, or nil if none is set.
func (o *FindOneAndUpdateOptions) Projection() bson.M {
	return o.projection
}

// SetProjection sets the fields to return for the matching document.
func (o *FindOneAndUpdateOptions) SetProjection(projection bson.M) *FindOneAndUpdateOptions {
	o.projection = projection
	return o
}

// Sort returns the sort document, or nil if none is set.
func (o *FindOneAndUpdateOptions) Sort() bson.M {
	return o.sort
}

// SetSort sets the sort order applied before selecting the matching document.
func (o *FindOneAndUpdateOptions) SetSort(sort bson.M) *FindOneAndUpdateOptions {
	o.sort = sort
	return o
}

// Upsert returns whether a new document is inserted when nothing matches.
func (o *FindOneAndUpdateOptions) Upsert() bool {
	return o.upsert
}

// SetUpsert sets whether a new document should be inserted when no document
// matches the query filter.
func (o *FindOneAndUpdateOptions) SetUpsert(upsert bool) *FindOneAndUpdateOptions {
	o.upsert = upsert
	return o
}

// ReturnDocument returns which version of the affected document the
// operation yields.
func (o *FindOneAndUpdateOptions) ReturnDocument() ReturnDocument {
	return o.returnDocument
}

// SetReturnDocument sets whether the operation returns the document as it was
// before the update or as it is after.
func (o *FindOneAndUpdateOptions) SetReturnDocument(rd ReturnDocument) *FindOneAndUpdateOptions {
	o.returnDocument = rd
	return o
}

// MaxTimeMS returns the operation time limit in milliseconds; 0 means unset.
func (o *FindOneAndUpdateOptions) MaxTimeMS() int64 {
	return o.maxTimeMS
}

// SetMaxTimeMS sets the maximum execution time for the operation in
// milliseconds.
func (o *FindOneAndUpdateOptions) SetMaxTimeMS(maxTimeMS int64) *FindOneAndUpdateOptions {
	o.maxTimeMS = maxTimeMS
	return o
}

// BypassDocumentValidation returns whether the write opts out of document
// level validation, or nil when the option is unset.
func (o *FindOneAndUpdateOptions) BypassDocumentValidation() *bool {
	return o.bypassDocumentValidation
}

// SetBypassDocumentValidation sets whether the write opts out of document
// level validation.
func (o *FindOneAndUpdateOptions) SetBypassDocumentValidation(bypass bool) *FindOneAndUpdateOptions {
	o.bypassDocumentValidation = &bypass
	return o
}

// ToJSON converts o to its generic JSON document form. Unset projection,
// sort, and bypassDocumentValidation are omitted; upsert, returnDocument,
// and maxTimeMS are always written.
func (o *FindOneAndUpdateOptions) ToJSON() bson.M {
	doc := bson.M{
		"upsert":         o.upsert,
		"returnDocument": o.returnDocument.String(),
		"maxTimeMS":      o.maxTimeMS,
	}
	if o.projection != nil {
		doc["projection"] = o.projection
	}
	if o.sort != nil {
		doc["sort"] = o.sort
	}
	if o.bypassDocumentValidation != nil {
		doc["bypassDocumentValidation"] = *o.bypassDocumentValidation
	}
	return doc
}

// MarshalJSON implements json.Marshaler with the same contents as ToJSON and
// a fixed key order.
func (o *FindOneAndUpdateOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Projection               bson.M `json:"projection,omitempty"`
		Sort                     bson.M `json:"sort,omitempty"`
		Upsert                   bool   `json:"upsert"`
		ReturnDocument           string `json:"returnDocument"`
		MaxTimeMS                int64  `json:"maxTimeMS"`
		BypassDocumentValidation *bool  `json:"bypassDocumentValidation,omitempty"`
	}{
		Projection:               o.projection,
		Sort:                     o.sort,
		Upsert:                   o.upsert,
		ReturnDocument:           o.returnDocument.String(),
		MaxTimeMS:                o.maxTimeMS,
		BypassDocumentValidation: o.bypassDocumentValidation,
	})
}

// UnmarshalJSON implements json.Unmarshaler with the defaulting rules of
// FindOneAndUpdateOptionsFromJSON.
func (o *FindOneAndUpdateOptions) UnmarshalJSON(data []byte) error {
	var doc bson.M
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := FindOneAndUpdateOptionsFromJSON(doc)
	if err != nil {
		return err
	}
	*o = *decoded
	return nil
}

// Equal reports whether o and other hold equal values for all six fields,
// with a both-absent projection, sort, or bypassDocumentValidation counting
// as equal.
func (o *FindOneAndUpdateOptions) Equal(other *FindOneAndUpdateOptions) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	if o.upsert != other.upsert ||
		o.returnDocument != other.returnDocument ||
		o.maxTimeMS != other.maxTimeMS {
		return false
	}
	return documentEqual(o.projection, other.projection) &&
		documentEqual(o.sort, other.sort) &&
		optionalBoolEqual(o.bypassDocumentValidation, other.bypassDocumentValidation)
}

// Hash returns a hash over the same six fields Equal compares; equal values
// hash equally.
func (o *FindOneAndUpdateOptions) Hash() uint64 {
	h := fnv.New64a()
	hashDocument(h, o.projection)
	hashDocument(h, o.sort)
	hashBool(h, o.upsert)
	hashInt64(h, int64(o.returnDocument))
	hashInt64(h, o.maxTimeMS)
	hashOptionalBool(h, o.bypassDocumentValidation)
	return h.Sum64()
}
