// Package paymentprofile handles payment profile commands
package paymentprofile

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

	// PaymentProfileID is the payment profile targeted by get/update/delete/validate
	PaymentProfileID string

	// ShippingAddressID optionally scopes a validation transaction
	ShippingAddressID string

	// CardCode is the optional card verification code for validate
	CardCode string

	// Cmd represents the payment-profile command
	Cmd = &cobra.Command{
		Use:   "payment-profile",
		Short: "Manage stored payment profiles",
		Long:  `Create, fetch, update, delete and validate payment profiles under a customer profile.`,
	}

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a payment profile from a payload file",
		Run:   createFunc,
	}

	getCmd = &cobra.Command{
		Use:   "get",
		Short: "Fetch a payment profile",
		Run:   getFunc,
	}

	updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update a payment profile from a payload file",
		Run:   updateFunc,
	}

	deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete a payment profile",
		Run:   deleteFunc,
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Run a validation transaction against a payment profile",
		Run:   validateFunc,
	}
)

func init() {
	Cmd.PersistentFlags().StringVar(&ProfileID, "id", "", "Customer profile ID")
	Cmd.PersistentFlags().StringVar(&PaymentProfileID, "payment-id", "", "Customer payment profile ID")
	validateCmd.Flags().StringVar(&ShippingAddressID, "address-id", "", "Customer shipping address ID")
	validateCmd.Flags().StringVar(&CardCode, "card-code", "", "Card verification code")

	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(validateCmd)
}

func createFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for payment-profile create")
	}
	req, err := payloads.LoadCreatePaymentProfile(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}
	if ProfileID != "" {
		req.CustomerProfileID = ProfileID
	}
	if root.SharedFlags.RefID != "" {
		req.RefID = root.SharedFlags.RefID
	}

	common.Call("createCustomerPaymentProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.CreateCustomerPaymentProfile(ctx, req)
	})
}

func getFunc(cmd *cobra.Command, args []string) {
	common.Call("getCustomerPaymentProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.GetCustomerPaymentProfile(ctx, ProfileID, PaymentProfileID)
	})
}

func updateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Payload == "" {
		root.Log.Fatal("--payload is required for payment-profile update")
	}
	req, err := payloads.LoadUpdatePaymentProfile(root.SharedFlags.Payload)
	if err != nil {
		root.Log.Fatalf("Failed to load payload: %v", err)
	}
	if ProfileID != "" {
		req.CustomerProfileID = ProfileID
	}
	if PaymentProfileID != "" {
		req.CustomerPaymentProfileID = PaymentProfileID
	}
	if root.SharedFlags.RefID != "" {
		req.RefID = root.SharedFlags.RefID
	}

	common.Call("updateCustomerPaymentProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.UpdateCustomerPaymentProfile(ctx, req)
	})
}

func deleteFunc(cmd *cobra.Command, args []string) {
	common.Call("deleteCustomerPaymentProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.DeleteCustomerPaymentProfile(ctx, ProfileID, PaymentProfileID)
	})
}

func validateFunc(cmd *cobra.Command, args []string) {
	req := &cim.ValidateCustomerPaymentProfileRequest{
		CustomerProfileID:         ProfileID,
		CustomerPaymentProfileID:  PaymentProfileID,
		CustomerShippingAddressID: ShippingAddressID,
		CardCode:                  CardCode,
	}

	common.Call("validateCustomerPaymentProfile", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		return client.ValidateCustomerPaymentProfile(ctx, req)
	})
}
