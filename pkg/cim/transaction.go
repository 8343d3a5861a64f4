package cim

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

// TransactionType selects the profileTrans variant of a transaction request.
type TransactionType string

// The six transaction variants the gateway supports.
const (
	TransactionAuthOnly         TransactionType = "profileTransAuthOnly"
	TransactionAuthCapture      TransactionType = "profileTransAuthCapture"
	TransactionCaptureOnly      TransactionType = "profileTransCaptureOnly"
	TransactionPriorAuthCapture TransactionType = "profileTransPriorAuthCapture"
	TransactionRefund           TransactionType = "profileTransRefund"
	TransactionVoid             TransactionType = "profileTransVoid"
)

func (t TransactionType) valid() bool {
	switch t {
	case TransactionAuthOnly, TransactionAuthCapture, TransactionCaptureOnly,
		TransactionPriorAuthCapture, TransactionRefund, TransactionVoid:
		return true
	}
	return false
}

// SplitTenderStatus is the status argument of updateSplitTenderGroup.
type SplitTenderStatus string

// The two accepted split tender group statuses.
const (
	SplitTenderVoided    SplitTenderStatus = "voided"
	SplitTenderCompleted SplitTenderStatus = "completed"
)

// CreateTransactionRequest submits a payment transaction against a stored
// profile. Fields that only apply to certain transaction types are silently
// omitted for the others: TransID is emitted for prior-auth-capture, refund
// and void, the masked card/bank fields for refund only, and ApprovalCode for
// capture-only.
type CreateTransactionRequest struct {
	RefID string `yaml:"refId"`

	// Type is the transaction variant; required.
	Type TransactionType `yaml:"type"`

	// Amount is the total transaction amount; required.
	Amount decimal.Decimal `yaml:"amount"`

	Tax       *ExtendedAmount `yaml:"tax"`
	Shipping  *ExtendedAmount `yaml:"shipping"`
	Duty      *ExtendedAmount `yaml:"duty"`
	LineItems []LineItem      `yaml:"lineItems"`

	CustomerProfileID         string `yaml:"customerProfileId"`
	CustomerPaymentProfileID  string `yaml:"customerPaymentProfileId"`
	CustomerShippingAddressID string `yaml:"customerShippingAddressId"`

	// CreditCardNumberMasked identifies the card on a refund, e.g. XXXX1234.
	CreditCardNumberMasked string `yaml:"creditCardNumberMasked"`

	// BankRoutingNumberMasked and BankAccountNumberMasked identify the bank
	// account on a refund.
	BankRoutingNumberMasked string `yaml:"bankRoutingNumberMasked"`
	BankAccountNumberMasked string `yaml:"bankAccountNumberMasked"`

	Order            *Order `yaml:"order"`
	TaxExempt        *bool  `yaml:"taxExempt"`
	RecurringBilling *bool  `yaml:"recurringBilling"`
	CardCode         string `yaml:"cardCode"`
	SplitTenderID    string `yaml:"splitTenderId"`

	// ApprovalCode is the authorization code of a capture-only transaction.
	ApprovalCode string `yaml:"approvalCode"`

	// TransID references the original transaction for prior-auth-capture,
	// refund and void.
	TransID string `yaml:"transId"`
}

// CreateCustomerProfileTransaction submits a transaction against a stored
// customer profile. The gateway's comma-delimited direct response comes back
// on Response.DirectResponse.
func (c *Client) CreateCustomerProfileTransaction(ctx context.Context, req *CreateTransactionRequest) (*Response, error) {
	const operation = "createCustomerProfileTransaction"
	if req == nil || !req.Type.valid() {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "transaction type must be one of the profileTrans variants",
		}
	}
	if req.Amount.IsZero() {
		return nil, &ValidationError{Operation: operation, Reason: "amount is required"}
	}
	if req.CustomerProfileID == "" || req.CustomerPaymentProfileID == "" {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "customerProfileId and customerPaymentProfileId are required",
		}
	}

	doc, root := c.newRequest("createCustomerProfileTransactionRequest")
	xmlutils.AddChildIfSet(root, "refId", req.RefID)

	transaction := root.CreateElement("transaction")
	trans := transaction.CreateElement(string(req.Type))

	xmlutils.AddChild(trans, "amount", req.Amount.String())
	appendExtendedAmount(trans, "tax", req.Tax)
	appendExtendedAmount(trans, "shipping", req.Shipping)
	appendExtendedAmount(trans, "duty", req.Duty)
	appendLineItems(trans, req.LineItems)

	xmlutils.AddChild(trans, "customerProfileId", req.CustomerProfileID)
	xmlutils.AddChild(trans, "customerPaymentProfileId", req.CustomerPaymentProfileID)
	xmlutils.AddChildIfSet(trans, "customerShippingAddressId", req.CustomerShippingAddressID)

	if req.Type == TransactionRefund {
		xmlutils.AddChildIfSet(trans, "creditCardNumberMasked", req.CreditCardNumberMasked)
		xmlutils.AddChildIfSet(trans, "bankRoutingNumberMasked", req.BankRoutingNumberMasked)
		xmlutils.AddChildIfSet(trans, "bankAccountNumberMasked", req.BankAccountNumberMasked)
	}

	if o := req.Order; o != nil {
		order := trans.CreateElement("order")
		xmlutils.AddChildIfSet(order, "invoiceNumber", o.InvoiceNumber)
		xmlutils.AddChildIfSet(order, "description", o.Description)
		xmlutils.AddChildIfSet(order, "purchaseOrderNumber", o.PurchaseOrderNumber)
	}

	if req.TaxExempt != nil {
		xmlutils.AddChild(trans, "taxExempt", boolText(*req.TaxExempt))
	}
	if req.RecurringBilling != nil {
		xmlutils.AddChild(trans, "recurringBilling", boolText(*req.RecurringBilling))
	}
	xmlutils.AddChildIfSet(trans, "cardCode", req.CardCode)
	xmlutils.AddChildIfSet(trans, "splitTenderId", req.SplitTenderID)

	if req.Type == TransactionCaptureOnly {
		xmlutils.AddChildIfSet(trans, "approvalCode", req.ApprovalCode)
	}
	switch req.Type {
	case TransactionPriorAuthCapture, TransactionRefund, TransactionVoid:
		xmlutils.AddChildIfSet(trans, "transId", req.TransID)
	}

	return c.send(ctx, operation, doc)
}

// UpdateSplitTenderGroup voids or completes a split tender group.
func (c *Client) UpdateSplitTenderGroup(ctx context.Context, splitTenderID string, status SplitTenderStatus) (*Response, error) {
	const operation = "updateSplitTenderGroup"
	if splitTenderID == "" {
		return nil, &ValidationError{Operation: operation, Reason: "splitTenderId is required"}
	}
	if status != SplitTenderVoided && status != SplitTenderCompleted {
		return nil, &ValidationError{
			Operation: operation,
			Reason:    "splitTenderStatus must be 'voided' or 'completed'",
		}
	}

	doc, root := c.newRequest("updateSplitTenderGroupRequest")
	xmlutils.AddChild(root, "splitTenderId", splitTenderID)
	xmlutils.AddChild(root, "splitTenderStatus", string(status))
	return c.send(ctx, operation, doc)
}
