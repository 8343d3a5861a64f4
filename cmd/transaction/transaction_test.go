package transaction_test

import (
	"testing"

	"github.com/fayland/go-authorizenet-cim/cmd/transaction"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "transaction", transaction.Cmd.Use)
	assert.Contains(t, transaction.Cmd.Short, "transactions")
	assert.Contains(t, transaction.Cmd.Long, "split tender")
}

func TestTransactionCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range transaction.Cmd.Commands() {
		names[sub.Use] = true
	}

	assert.True(t, names["create"], "missing subcommand create")
	assert.True(t, names["split-tender"], "missing subcommand split-tender")
}
