// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongoopt provides configuration data objects for find-and-modify
// operations against a MongoDB-style document store.
//
// Each options type holds the parameters of one operation, starts out with
// documented defaults, and is populated through fluent setters:
//
//    opts := mongoopt.NewFindOneAndUpdateOptions().
//        SetProjection(bson.M{"name": 1}).
//        SetReturnDocument(mongoopt.After).
//        SetUpsert(true)
//
// Options convert to and from generic JSON documents (bson.M) via ToJSON and
// the corresponding FromJSON constructor, and implement json.Marshaler and
// json.Unmarshaler for the textual form of the same contract. Keys whose
// values are unset are omitted from output, not written as null, and decoding
// substitutes the documented default for every missing key.
//
// Options values are plain in-memory data with no external resources. They
// are not safe for concurrent mutation; copy an instance before sharing it
// across goroutines, or treat it as read-only once built.
package mongoopt
