package cim

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

// CreateCustomerPaymentProfileRequest adds a payment profile to an existing
// customer profile.
type CreateCustomerPaymentProfileRequest struct {
	RefID             string `yaml:"refId"`
	CustomerProfileID string `yaml:"customerProfileId"`

	// CustomerType is "individual" or "business"; optional.
	CustomerType string   `yaml:"customerType"`
	BillTo       *Address `yaml:"billTo"`
	Payment      *Payment `yaml:"payment"`
}

// CreateCustomerPaymentProfile stores a payment instrument under a profile.
// The response carries the new CustomerPaymentProfileID on success.
func (c *Client) CreateCustomerPaymentProfile(ctx context.Context, req *CreateCustomerPaymentProfileRequest) (*Response, error) {
	const operation = "createCustomerPaymentProfile"
	if req == nil || req.CustomerProfileID == "" {
		return nil, &ValidationError{Operation: operation, Reason: "customerProfileId is required"}
	}

	doc, root := c.newRequest("createCustomerPaymentProfileRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)
	xmlutils.AddChild(root, "customerProfileId", req.CustomerProfileID)

	paymentProfile := root.CreateElement("paymentProfile")
	xmlutils.AddChildIfSet(paymentProfile, "customerType", req.CustomerType)
	appendAddress(paymentProfile, "billTo", req.BillTo)
	appendPayment(paymentProfile, req.Payment)

	c.appendValidationMode(root)
	return c.send(ctx, operation, doc)
}

// GetCustomerPaymentProfile fetches one stored payment profile.
func (c *Client) GetCustomerPaymentProfile(ctx context.Context, customerProfileID, customerPaymentProfileID string) (*Response, error) {
	const operation = "getCustomerPaymentProfile"
	if customerProfileID == "" || customerPaymentProfileID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerPaymentProfileId are required",
		}
	}

	doc, root := c.newRequest("getCustomerPaymentProfileRequest")
	xmlutils.AddChild(root, "customerProfileId", customerProfileID)
	xmlutils.AddChild(root, "customerPaymentProfileId", customerPaymentProfileID)
	return c.send(ctx, operation, doc)
}

// UpdateCustomerPaymentProfileRequest replaces the contents of a stored
// payment profile. The gateway treats this as a full replacement, so absent
// fields clear their stored values.
type UpdateCustomerPaymentProfileRequest struct {
	RefID                    string   `yaml:"refId"`
	CustomerProfileID        string   `yaml:"customerProfileId"`
	CustomerPaymentProfileID string   `yaml:"customerPaymentProfileId"`
	CustomerType             string   `yaml:"customerType"`
	BillTo                   *Address `yaml:"billTo"`
	Payment                  *Payment `yaml:"payment"`
}

// UpdateCustomerPaymentProfile updates a stored payment profile.
func (c *Client) UpdateCustomerPaymentProfile(ctx context.Context, req *UpdateCustomerPaymentProfileRequest) (*Response, error) {
	const operation = "updateCustomerPaymentProfile"
	if req == nil || req.CustomerProfileID == "" || req.CustomerPaymentProfileID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerPaymentProfileId are required",
		}
	}

	doc, root := c.newRequest("updateCustomerPaymentProfileRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)
	xmlutils.AddChild(root, "customerProfileId", req.CustomerProfileID)

	paymentProfile := root.CreateElement("paymentProfile")
	xmlutils.AddChildIfSet(paymentProfile, "customerType", req.CustomerType)
	appendAddress(paymentProfile, "billTo", req.BillTo)
	appendPayment(paymentProfile, req.Payment)
	xmlutils.AddChild(paymentProfile, "customerPaymentProfileId", req.CustomerPaymentProfileID)

	c.appendValidationMode(root)
	return c.send(ctx, operation, doc)
}

// DeleteCustomerPaymentProfile removes one stored payment profile.
func (c *Client) DeleteCustomerPaymentProfile(ctx context.Context, customerProfileID, customerPaymentProfileID string) (*Response, error) {
	const operation = "deleteCustomerPaymentProfile"
	if customerProfileID == "" || customerPaymentProfileID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerPaymentProfileId are required",
		}
	}

	doc, root := c.newRequest("deleteCustomerPaymentProfileRequest")
	xmlutils.AddChild(root, "customerProfileId", customerProfileID)
	xmlutils.AddChild(root, "customerPaymentProfileId", customerPaymentProfileID)
	return c.send(ctx, operation, doc)
}

// ValidateCustomerPaymentProfileRequest runs a validation transaction against
// a stored payment profile.
type ValidateCustomerPaymentProfileRequest struct {
	CustomerProfileID         string `yaml:"customerProfileId"`
	CustomerPaymentProfileID  string `yaml:"customerPaymentProfileId"`
	CustomerShippingAddressID string `yaml:"customerShippingAddressId"`
	CardCode                  string `yaml:"cardCode"`
}

// ValidateCustomerPaymentProfile submits a validation test transaction.
// Unlike the mutating operations, validationMode is always emitted here:
// testMode when the client is in test mode, liveMode otherwise.
func (c *Client) ValidateCustomerPaymentProfile(ctx context.Context, req *ValidateCustomerPaymentProfileRequest) (*Response, error) {
	const operation = "validateCustomerPaymentProfile"
	if req == nil || req.CustomerProfileID == "" || req.CustomerPaymentProfileID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerPaymentProfileId are required",
		}
	}

	doc, root := c.newRequest("validateCustomerPaymentProfileRequest")
	xmlutils.AddChild(root, "customerProfileId", req.CustomerProfileID)
	xmlutils.AddChild(root, "customerPaymentProfileId", req.CustomerPaymentProfileID)
	xmlutils.AddChildIfSet(root, "customerShippingAddressId", req.CustomerShippingAddressID)
	xmlutils.AddChildIfSet(root, "cardCode", req.CardCode)

	mode := "liveMode"
	if c.testMode {
		mode = "testMode"
	}
	xmlutils.AddChild(root, "validationMode", mode)

	return c.send(ctx, operation, doc)
}
