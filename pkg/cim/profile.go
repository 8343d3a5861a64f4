package cim

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

// CustomerProfile holds the identifying fields of a customer profile.
// The gateway requires at least one of them on creation.
type CustomerProfile struct {
	MerchantCustomerID string `yaml:"merchantCustomerId"`
	Description        string `yaml:"description"`
	Email              string `yaml:"email"`
}

func (p CustomerProfile) empty() bool {
	return p.MerchantCustomerID == "" && p.Description == "" && p.Email == ""
}

// CreateCustomerProfileRequest creates a customer profile, optionally with an
// embedded payment profile and shipping address. The substitution flags let
// one address stand in for the other when only one block is supplied.
type CreateCustomerProfileRequest struct {
	RefID   string          `yaml:"refId"`
	Profile CustomerProfile `yaml:"profile"`

	// BillTo is the billing address of the embedded payment profile.
	BillTo *Address `yaml:"billTo"`

	// ShipTo is the shipping address, emitted as the shipToList block.
	ShipTo *Address `yaml:"shipTo"`

	// Payment is the embedded payment instrument, card or bank account.
	Payment *Payment `yaml:"payment"`

	// UseShipToAsBillTo populates billTo from ShipTo when BillTo is absent.
	UseShipToAsBillTo bool `yaml:"useShipToAsBillTo"`

	// UseBillToAsShipTo populates shipToList from BillTo when ShipTo is absent.
	UseBillToAsShipTo bool `yaml:"useBillToAsShipTo"`
}

// CreateCustomerProfile creates a new customer profile.
// The response carries the new CustomerProfileID on success.
func (c *Client) CreateCustomerProfile(ctx context.Context, req *CreateCustomerProfileRequest) (*Response, error) {
	const operation = "createCustomerProfile"
	if req == nil || req.Profile.empty() {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "one of merchantCustomerId, description or email is required",
		}
	}

	doc, root := c.newRequest("createCustomerProfileRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)

	profile := root.CreateElement("profile")
	xmlutils.AddChildIfSet(profile, "merchantCustomerId", req.Profile.MerchantCustomerID)
	xmlutils.AddChildIfSet(profile, "description", req.Profile.Description)
	xmlutils.AddChildIfSet(profile, "email", req.Profile.Email)

	billTo := req.BillTo
	if billTo == nil && req.UseShipToAsBillTo {
		billTo = req.ShipTo
	}
	shipTo := req.ShipTo
	if shipTo == nil && req.UseBillToAsShipTo {
		shipTo = req.BillTo
	}

	if billTo != nil || req.Payment != nil {
		paymentProfiles := profile.CreateElement("paymentProfiles")
		appendAddress(paymentProfiles, "billTo", billTo)
		appendPayment(paymentProfiles, req.Payment)
	}
	appendAddress(profile, "shipToList", shipTo)

	c.appendValidationMode(root)
	return c.send(ctx, operation, doc)
}

// GetCustomerProfile fetches a customer profile. The full profile tree comes
// back on Response.Values.
func (c *Client) GetCustomerProfile(ctx context.Context, customerProfileID string) (*Response, error) {
	const operation = "getCustomerProfile"
	if customerProfileID == "" {
		return nil, &ValidationError{Operation: operation, Reason: "customerProfileId is required"}
	}

	doc, root := c.newRequest("getCustomerProfileRequest")
	xmlutils.AddChild(root, "customerProfileId", customerProfileID)
	return c.send(ctx, operation, doc)
}

// GetCustomerProfileIDs lists every customer profile ID. The result is on
// Response.IDs, normalized to a sequence of length 0, 1 or N; the remote
// decoder's bare-scalar-for-one-element ambiguity never leaks to callers.
func (c *Client) GetCustomerProfileIDs(ctx context.Context) (*Response, error) {
	const operation = "getCustomerProfileIds"
	doc, _ := c.newRequest("getCustomerProfileIdsRequest")
	return c.send(ctx, operation, doc)
}

// UpdateCustomerProfileRequest updates the mutable fields of a profile.
type UpdateCustomerProfileRequest struct {
	RefID             string          `yaml:"refId"`
	CustomerProfileID string          `yaml:"customerProfileId"`
	Profile           CustomerProfile `yaml:"profile"`
}

// UpdateCustomerProfile updates a customer profile's identifying fields.
func (c *Client) UpdateCustomerProfile(ctx context.Context, req *UpdateCustomerProfileRequest) (*Response, error) {
	const operation = "updateCustomerProfile"
	if req == nil || req.CustomerProfileID == "" {
		return nil, &ValidationError{Operation: operation, Reason: "customerProfileId is required"}
	}

	doc, root := c.newRequest("updateCustomerProfileRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)

	profile := root.CreateElement("profile")
	xmlutils.AddChildIfSet(profile, "merchantCustomerId", req.Profile.MerchantCustomerID)
	xmlutils.AddChildIfSet(profile, "description", req.Profile.Description)
	xmlutils.AddChildIfSet(profile, "email", req.Profile.Email)
	xmlutils.AddChild(profile, "customerProfileId", req.CustomerProfileID)

	return c.send(ctx, operation, doc)
}

// DeleteCustomerProfile deletes a customer profile and everything under it.
func (c *Client) DeleteCustomerProfile(ctx context.Context, customerProfileID string) (*Response, error) {
	const operation = "deleteCustomerProfile"
	if customerProfileID == "" {
		return nil, &ValidationError{Operation: operation, Reason: "customerProfileId is required"}
	}

	doc, root := c.newRequest("deleteCustomerProfileRequest")
	xmlutils.AddChild(root, "customerProfileId", customerProfileID)
	return c.send(ctx, operation, doc)
}
