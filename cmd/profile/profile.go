// Package profile handles customer profile commands
package profile

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/cmd/common"
	"github.com/fayland/go-authorizenet-cim/cmd/root"
	"github.com/fayland/go-authorizenet-cim/internal/payloads"
	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/spf13/cobra"
)

var (
	// ProfileID is the customer profile targeted by get/update/delete
	ProfileID string

	// Cmd represents the profile command
	Cmd = &cobra.Command{
		Use:   "profile",
		Short: "Manage customer profiles",
		Long:  `Create, fetch, update and delete customer profiles on the gateway.`,
	}

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a customer profile from a payload file",
		Run:   createFunc,
	}

	getCmd = &cobra.Command{
		Use:   "get",
		Short: "Fetch a customer profile",
		Run:   getFunc,
	}

	updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update a customer profile from a payload file",
		Run:   updateFunc,
	}

	deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete a customer profile",
		Run:   deleteFunc,
	}
)

func init() {
	Cmd.PersistentFlags().StringVar(&ProfileID, "id", "", "Customer profile ID")
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}

func createFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for profile create")
	}
	req, err := payloads.LoadCreateProfile(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}
	if root.SharedFlags.RefID != "" {
		req.RefID = root.SharedFlags.RefID
	}

	common.Call("createCustomerProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.CreateCustomerProfile(ctx, req)
	})
}

func getFunc(cmd *cobra.Command, args []string) {
	common.Call("getCustomerProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.GetCustomerProfile(ctx, ProfileID)
	})
}

func updateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for profile update")
	}
	req, err := payloads.LoadUpdateProfile(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}
	if ProfileID != "" {
		req.CustomerProfileID = ProfileID
	}
	if root.SharedFlags.RefID != "" {
		req.RefID = root.SharedFlags.RefID
	}

	common.Call("updateCustomerProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.UpdateCustomerProfile(ctx, req)
	})
}

func deleteFunc(cmd *cobra.Command, args []string) {
	common.Call("deleteCustomerProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.DeleteCustomerProfile(ctx, ProfileID)
	})
}
