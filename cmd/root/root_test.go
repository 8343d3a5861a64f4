package root_test

import (
	"testing"

	"github.com/fayland/go-authorizenet-cim/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "cim-cli", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Authorize.Net CIM")
	assert.Contains(t, root.Cmd.Long, "customer profiles")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("payload"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("output"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("ref-id"))
}
