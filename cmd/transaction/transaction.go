// Package transaction handles profile transaction commands
package transaction

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/cmd/common"
	"github.com/fayland/go-authorizenet-cim/cmd/root"
	"github.com/fayland/go-authorizenet-cim/internal/payloads"
	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/spf13/cobra"
)

var (
	// SplitTenderID identifies the split tender group for the split-tender command
	SplitTenderID string

	// SplitTenderStatus is "voided" or "completed"
	SplitTenderStatus string

	// Cmd represents the transaction command
	Cmd = &cobra.Command{
		Use:   "transaction",
		Short: "Submit transactions against stored profiles",
		Long: `Submit auth, capture, refund and void transactions against stored
customer profiles, and manage split tender groups.`,
	}

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Submit a profile transaction from a payload file",
		Run:   createFunc,
	}

	splitTenderCmd = &cobra.Command{
		Use:   "split-tender",
		Short: "Void or complete a split tender group",
		Run:   splitTenderFunc,
	}
)

func init() {
	splitTenderCmd.Flags().StringVar(&SplitTenderID, "split-tender-id", "", "Split tender group ID")
	splitTenderCmd.Flags().StringVar(&SplitTenderStatus, "status", "", "New status: voided or completed")

	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(splitTenderCmd)
}

func createFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for transaction create")
	}
	req, err := payloads.LoadTransaction(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}
	if root.SharedFlags.RefID != "" {
		req.RefID = root.SharedFlags.RefID
	}

	common.Call("createCustomerProfileTransaction", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.CreateCustomerProfileTransaction(ctx, req)
	})
}

func splitTenderFunc(cmd *cobra.Command, args []string) {
	common.Call("updateSplitTenderGroup", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.UpdateSplitTenderGroup(ctx, SplitTenderID, cim.SplitTenderStatus(SplitTenderStatus))
	})
}
