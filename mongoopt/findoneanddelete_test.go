// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongoopt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/pretty"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFindOneAndDeleteOptions_Defaults(t *testing.T) {
	t.Parallel()

	opts := NewFindOneAndDeleteOptions()

	require.Nil(t, opts.Projection())
	require.Nil(t, opts.Sort())
	require.Equal(t, int64(0), opts.MaxTimeMS())
}

func TestFindOneAndDeleteOptions_SetterChaining(t *testing.T) {
	t.Parallel()

	opts := NewFindOneAndDeleteOptions()
	projection := bson.M{"name": 1}
	sort := bson.M{"age": -1}

	require.Same(t, opts, opts.SetProjection(projection))
	require.Equal(t, projection, opts.Projection())

	require.Same(t, opts, opts.SetSort(sort))
	require.Equal(t, sort, opts.Sort())

	require.Same(t, opts, opts.SetMaxTimeMS(750))
	require.Equal(t, int64(750), opts.MaxTimeMS())
}

func TestFindOneAndDeleteOptions_RoundTrip(t *testing.T) {
	t.Parallel()

	opts := NewFindOneAndDeleteOptions().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.M{"age": -1}).
		SetMaxTimeMS(750)

	decoded := FindOneAndDeleteOptionsFromJSON(opts.ToJSON())
	require.True(t, opts.Equal(decoded))
	require.Equal(t, opts.Hash(), decoded.Hash())
}

func TestFindOneAndDeleteOptions_FromJSON(t *testing.T) {
	t.Parallel()

	opts := FindOneAndDeleteOptionsFromJSON(bson.M{})
	require.True(t, NewFindOneAndDeleteOptions().Equal(opts))
}

func TestFindOneAndDeleteOptions_Copy(t *testing.T) {
	t.Parallel()

	projection := bson.M{"name": 1}
	opts := NewFindOneAndDeleteOptions().SetProjection(projection).SetMaxTimeMS(10)
	copied := opts.Copy()

	require.True(t, opts.Equal(copied))

	projection["age"] = 1
	require.Equal(t, bson.M{"name": 1, "age": 1}, copied.Projection())
}

func TestFindOneAndDeleteOptions_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("all fields set", func(t *testing.T) {
		t.Parallel()

		opts := NewFindOneAndDeleteOptions().
			SetProjection(bson.M{"name": 1}).
			SetSort(bson.M{"age": -1}).
			SetMaxTimeMS(750)

		got, err := json.Marshal(opts)
		require.NoError(t, err)

		want := pretty.Ugly([]byte(`{
			"projection": {"name": 1},
			"sort": {"age": -1},
			"maxTimeMS": 750
		}`))
		require.Equal(t, string(want), string(got))
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		got, err := json.Marshal(NewFindOneAndDeleteOptions())
		require.NoError(t, err)
		require.Equal(t, `{"maxTimeMS":0}`, string(got))
	})
}

func TestFindOneAndDeleteOptions_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var opts FindOneAndDeleteOptions
	require.NoError(t, json.Unmarshal([]byte(`{"sort": {"age": -1}, "maxTimeMS": 750}`), &opts))
	require.Nil(t, opts.Projection())
	require.Equal(t, bson.M{"age": float64(-1)}, opts.Sort())
	require.Equal(t, int64(750), opts.MaxTimeMS())
}
