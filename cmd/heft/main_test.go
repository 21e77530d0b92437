package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"heft", "version"}

	exitCode := run()
	assert.Equal(t, 0, exitCode)
}

func TestRun_UnknownCommand(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"heft", "bogus-command"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
