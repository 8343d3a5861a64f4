// Package common provides shared helpers for the CLI commands.
package common

import (
	"context"
	"fmt"
	"time"

	"github.com/fayland/go-authorizenet-cim/cmd/root"
	"github.com/fayland/go-authorizenet-cim/pkg/cim"
)

// callTimeout bounds a single gateway call from the CLI.
const callTimeout = 2 * time.Minute

// Call builds a client, runs one gateway operation against it and prints the
// outcome. A transport or validation failure is fatal; a remote rejection is
// reported through the result code and messages.
func Call(operation string, fn func(ctx context.Context, client *cim.Client) (*cim.Response, error)) {
	client, err := root.NewClient()
	if err != nil {
		root.Log.Fatalf("Failed to create gateway client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		root.Log.Fatalf("%s failed: %v", operation, err)
	}

	PrintResponse(resp)
	if !resp.Ok() {
		root.Log.Warnf("%s was rejected by the gateway", operation)
	}
}

// PrintResponse writes the decoded response envelope to stdout.
func PrintResponse(resp *cim.Response) {
	fmt.Printf("Result: %s\n", resp.ResultCode)
	for _, msg := range resp.Messages {
		fmt.Printf("  [%s] %s\n", msg.Code, msg.Text)
	}
	if resp.CustomerProfileID != "" {
		fmt.Printf("Customer profile ID: %s\n", resp.CustomerProfileID)
	}
	if resp.CustomerPaymentProfileID != "" {
		fmt.Printf("Payment profile ID: %s\n", resp.CustomerPaymentProfileID)
	}
	if resp.CustomerAddressID != "" {
		fmt.Printf("Shipping address ID: %s\n", resp.CustomerAddressID)
	}
	if resp.DirectResponse != "" {
		fmt.Printf("Direct response: %s\n", resp.DirectResponse)
	}
	for _, id := range resp.IDs {
		fmt.Printf("  %s\n", id)
	}
}
