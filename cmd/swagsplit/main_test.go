package main

import (
	"bytes"
	"testing"

	"github.com/erraggy/swagsplit"
	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "swagsplit "+swagsplit.Version())
	assert.Empty(t, stderr.String())
}

func TestRun_ErrorExitsNonZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"split"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: ")
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bogus"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `unknown command "bogus"`)
}
