// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongoopt

import (
	"github.com/pkg/errors"
)

// ReturnDocument specifies whether a findOneAndUpdate or findOneAndReplace
// operation should return the document as it was before the modification or
// as it is after.
type ReturnDocument uint8

const (
	// Before specifies that the operation should return the document as it
	// was before the update, replacement, or insert occurred. This is the
	// default.
	Before ReturnDocument = iota
	// After specifies that the operation should return the document as it is
	// after the update, replacement, or insert occurred.
	After
)

// ErrInvalidReturnDocument is returned when decoding a returnDocument value
// whose string does not name a known ReturnDocument.
var ErrInvalidReturnDocument = errors.New("invalid returnDocument value")

// String returns the canonical name of the ReturnDocument, which is also its
// serialized form.
func (rd ReturnDocument) String() string {
	switch rd {
	case Before:
		return "BEFORE"
	case After:
		return "AFTER"
	default:
		return "unknown"
	}
}

// ReturnDocumentFromString returns the ReturnDocument named by s. The match
// is exact and case-sensitive; anything other than "BEFORE" or "AFTER" fails
// with ErrInvalidReturnDocument.
func ReturnDocumentFromString(s string) (ReturnDocument, error) {
	switch s {
	case "BEFORE":
		return Before, nil
	case "AFTER":
		return After, nil
	}
	return Before, errors.Wrapf(ErrInvalidReturnDocument, "%q", s)
}
