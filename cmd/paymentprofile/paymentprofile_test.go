package paymentprofile_test

import (
	"testing"

	"github.com/fayland/go-authorizenet-cim/cmd/paymentprofile"

	"github.com/stretchr/testify/assert"
)

func TestPaymentProfileCommand_Metadata(t *testing.T) {
	assert.Equal(t, "payment-profile", paymentprofile.Cmd.Use)
	assert.Contains(t, paymentprofile.Cmd.Short, "payment profiles")
	assert.NotNil(t, paymentprofile.Cmd.PersistentFlags().Lookup("id"))
	assert.NotNil(t, paymentprofile.Cmd.PersistentFlags().Lookup("payment-id"))
}

func TestPaymentProfileCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range paymentprofile.Cmd.Commands() {
		names[sub.Use] = true
	}

	for _, want := range []string{"create", "get", "update", "delete", "validate"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
