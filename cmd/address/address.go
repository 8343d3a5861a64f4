// Package address handles shipping address commands
package address

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/cmd/common"
	"github.com/fayland/go-authorizenet-cim/cmd/root"
	"github.com/fayland/go-authorizenet-cim/internal/payloads"
	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/spf13/cobra"
)

var (
	// ProfileID is the owning customer profile
	ProfileID string

	// AddressID is the shipping address targeted by get/update/delete
	AddressID string

	// Cmd represents the address command
	Cmd = &cobra.Command{
		Use:   "address",
		Short: "Manage stored shipping addresses",
		Long:  `Create, fetch, update and delete shipping addresses under a customer profile.`,
	}

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a shipping address from a payload file",
		Run:   createFunc,
	}

	getCmd = &cobra.Command{
		Use:   "get",
		Short: "Fetch a shipping address",
		Run:   getFunc,
	}

	updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update a shipping address from a payload file",
		Run:   updateFunc,
	}

	deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete a shipping address",
		Run:   deleteFunc,
	}
)

func init() {
	Cmd.PersistentFlags().StringVar(&ProfileID, "id", "", "Customer profile ID")
	Cmd.PersistentFlags().StringVar(&AddressID, "address-id", "", "Customer shipping address ID")

	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}

func createFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for address create")
	}
	addr, err := payloads.LoadAddress(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}

	req := &cim.CreateCustomerShippingAddressRequest{
		RefID:             root.SharedFlags.RefID,
		CustomerProfileID: ProfileID,
		Address:           addr,
	}

	common.Call("createCustomerShippingAddress", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.CreateCustomerShippingAddress(ctx, req)
	})
}

func getFunc(cmd *cobra.Command, args []string) {
	common.Call("getCustomerShippingAddress", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.GetCustomerShippingAddress(ctx, ProfileID, AddressID)
	})
}

func updateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for address update")
	}
	addr, err := payloads.LoadAddress(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}

	req := &cim.UpdateCustomerShippingAddressRequest{
		RefID:             root.SharedFlags.RefID,
		CustomerProfileID: ProfileID,
		CustomerAddressID: AddressID,
		Address:           addr,
	}

	common.Call("updateCustomerShippingAddress", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.UpdateCustomerShippingAddress(ctx, req)
	})
}

func deleteFunc(cmd *cobra.Command, args []string) {
	common.Call("deleteCustomerShippingAddress", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.DeleteCustomerShippingAddress(ctx, ProfileID, AddressID)
	})
}
