package formats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mwirth/statement-csv/cmd/formats"
)

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "formats", formats.Cmd.Use)
	assert.Contains(t, formats.Cmd.Short, "List available statement formats")
	assert.NotNil(t, formats.Cmd.Run)
}

func TestCommandRunsWithoutConfig(t *testing.T) {
	assert.NotPanics(t, func() {
		formats.Cmd.Run(formats.Cmd, nil)
	})
}
