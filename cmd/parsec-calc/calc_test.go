// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalArithmetic(t *testing.T) {
	cases := map[string]float64{
		"2+3*4":      14,
		"(2+3)*4":    20,
		"10 - 4 / 2": 8,
		"-3+5":       2,
		"3.5*2":      7,
	}
	for src, want := range cases {
		v, err := Eval(src)
		require.NoError(t, err, "Eval(%q)", src)
		assert.Equal(t, want, v, "Eval(%q)", src)
	}
}

func TestEvalRejectsTrailingGarbage(t *testing.T) {
	_, err := Eval("2+3 extra")
	assert.Error(t, err)
}

func TestEvalRejectsEmptyInput(t *testing.T) {
	_, err := Eval("")
	assert.Error(t, err)
}
