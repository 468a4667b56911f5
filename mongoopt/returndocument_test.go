// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongoopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReturnDocument_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		rd   ReturnDocument
	}{
		{"BEFORE", Before},
		{"AFTER", After},
		{"unknown", ReturnDocument(42)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.rd.String())
		})
	}
}

func TestReturnDocumentFromString(t *testing.T) {
	t.Parallel()

	t.Run("known names", func(t *testing.T) {
		t.Parallel()

		rd, err := ReturnDocumentFromString("BEFORE")
		require.NoError(t, err)
		require.Equal(t, Before, rd)

		rd, err = ReturnDocumentFromString("AFTER")
		require.NoError(t, err)
		require.Equal(t, After, rd)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"before", "After", "SIDEWAYS", ""} {
			_, err := ReturnDocumentFromString(value)
			require.Error(t, err, "expected %q to be rejected", value)
			require.True(t, errors.Is(err, ErrInvalidReturnDocument))
		}
	})
}
