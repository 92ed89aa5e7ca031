package main

import (
	"testing"

	"go.viam.com/utils/testutils"
)

func TestMainMain(t *testing.T) {
	testutils.TestMain(t, mainWithArgs, []testutils.MainTestCase{
		{
			Name: "unknown named arg",
			Args: []string{"--unknown"},
			Err:  "not defined",
		},
		{
			Name: "bad port",
			Args: []string{"--port=abc"},
			Err:  "invalid syntax",
		},
	})
}
