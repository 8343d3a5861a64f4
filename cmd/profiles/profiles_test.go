package profiles_test

import (
	"testing"

	"github.com/fayland/go-authorizenet-cim/cmd/profiles"

	"github.com/stretchr/testify/assert"
)

func TestProfilesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "profiles", profiles.Cmd.Use)
	assert.Contains(t, profiles.Cmd.Short, "profile IDs")
	assert.Contains(t, profiles.Cmd.Long, "CSV")
	assert.NotNil(t, profiles.Cmd.Run)
}
