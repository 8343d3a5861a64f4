package cim

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

// CreateCustomerShippingAddressRequest adds a shipping address to a profile.
type CreateCustomerShippingAddressRequest struct {
	RefID             string   `yaml:"refId"`
	CustomerProfileID string   `yaml:"customerProfileId"`
	Address           *Address `yaml:"address"`
}

// CreateCustomerShippingAddress stores a shipping address under a profile.
// The response carries the new CustomerAddressID on success.
func (c *Client) CreateCustomerShippingAddress(ctx context.Context, req *CreateCustomerShippingAddressRequest) (*Response, error) {
	const operation = "createCustomerShippingAddress"
	if req == nil || req.CustomerProfileID == "" {
		return nil, &ValidationError{Operation: operation, Reason: "customerProfileId is required"}
	}

	doc, root := c.newRequest("createCustomerShippingAddressRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)
	xmlutils.AddChild(root, "customerProfileId", req.CustomerProfileID)
	appendAddress(root, "address", req.Address)

	return c.send(ctx, operation, doc)
}

// GetCustomerShippingAddress fetches one stored shipping address.
func (c *Client) GetCustomerShippingAddress(ctx context.Context, customerProfileID, customerAddressID string) (*Response, error) {
	const operation = "getCustomerShippingAddress"
	if customerProfileID == "" || customerAddressID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerAddressId are required",
		}
	}

	doc, root := c.newRequest("getCustomerShippingAddressRequest")
	xmlutils.AddChild(root, "customerProfileId", customerProfileID)
	xmlutils.AddChild(root, "customerAddressId", customerAddressID)
	return c.send(ctx, operation, doc)
}

// UpdateCustomerShippingAddressRequest replaces a stored shipping address.
type UpdateCustomerShippingAddressRequest struct {
	RefID             string   `yaml:"refId"`
	CustomerProfileID string   `yaml:"customerProfileId"`
	CustomerAddressID string   `yaml:"customerAddressId"`
	Address           *Address `yaml:"address"`
}

// UpdateCustomerShippingAddress updates a stored shipping address.
// The customerAddressId is emitted inside the address block, after the
// address fields, as the schema requires.
func (c *Client) UpdateCustomerShippingAddress(ctx context.Context, req *UpdateCustomerShippingAddressRequest) (*Response, error) {
	const operation = "updateCustomerShippingAddress"
	if req == nil || req.CustomerProfileID == "" || req.CustomerAddressID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerAddressId are required",
		}
	}

	doc, root := c.newRequest("updateCustomerShippingAddressRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)
	xmlutils.AddChild(root, "customerProfileId", req.CustomerProfileID)

	address := root.CreateElement("address")
	if a := req.Address; a != nil {
		xmlutils.AddChildIfSet(address, "firstName", a.FirstName)
		xmlutils.AddChildIfSet(address, "lastName", a.LastName)
		xmlutils.AddChildIfSet(address, "company", a.Company)
		xmlutils.AddChildIfSet(address, "address", a.Address)
		xmlutils.AddChildIfSet(address, "city", a.City)
		xmlutils.AddChildIfSet(address, "state", a.State)
		xmlutils.AddChildIfSet(address, "zip", a.Zip)
		xmlutils.AddChildIfSet(address, "country", a.Country)
		xmlutils.AddChildIfSet(address, "phoneNumber", a.PhoneNumber)
		xmlutils.AddChildIfSet(address, "faxNumber", a.FaxNumber)
	}
	xmlutils.AddChild(address, "customerAddressId", req.CustomerAddressID)

	return c.send(ctx, operation, doc)
}

// DeleteCustomerShippingAddress removes one stored shipping address.
func (c *Client) DeleteCustomerShippingAddress(ctx context.Context, customerProfileID, customerAddressID string) (*Response, error) {
	const operation = "deleteCustomerShippingAddress"
	if customerProfileID == "" || customerAddressID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerAddressId are required",
		}
	}

	doc, root := c.newRequest("deleteCustomerShippingAddressRequest")
	xmlutils.AddChild(root, "customerProfileId", customerProfileID)
	xmlutils.AddChild(root, "customerAddressId", customerAddressID)
	return c.send(ctx, operation, doc)
}
