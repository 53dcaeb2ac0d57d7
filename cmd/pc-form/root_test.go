package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "pc-form")
	assert.Contains(t, out.String(), "--"+apiURLFlag)
	assert.Contains(t, out.String(), "--"+timeoutFlag)
}
