// Package payloads loads gateway request payloads from YAML files, so CLI
// users can keep request bodies in files instead of long flag lists.
package payloads

import (
	"fmt"
	"os"

	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file into the given request type.
func Load[T any](filePath string) (*T, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- user-provided payload path
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}

	var payload T
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return &payload, nil
}

// LoadCreateProfile reads a createCustomerProfile payload.
func LoadCreateProfile(filePath string) (*cim.CreateCustomerProfileRequest, error) {
	return Load[cim.CreateCustomerProfileRequest](filePath)
}

// LoadUpdateProfile reads an updateCustomerProfile payload.
func LoadUpdateProfile(filePath string) (*cim.UpdateCustomerProfileRequest, error) {
	return Load[cim.UpdateCustomerProfileRequest](filePath)
}

// LoadCreatePaymentProfile reads a createCustomerPaymentProfile payload.
func LoadCreatePaymentProfile(filePath string) (*cim.CreateCustomerPaymentProfileRequest, error) {
	return Load[cim.CreateCustomerPaymentProfileRequest](filePath)
}

// LoadUpdatePaymentProfile reads an updateCustomerPaymentProfile payload.
func LoadUpdatePaymentProfile(filePath string) (*cim.UpdateCustomerPaymentProfileRequest, error) {
	return Load[cim.UpdateCustomerPaymentProfileRequest](filePath)
}

// LoadAddress reads a standalone shipping address payload.
func LoadAddress(filePath string) (*cim.Address, error) {
	return Load[cim.Address](filePath)
}

// extendedAmountPayload mirrors cim.ExtendedAmount with a string amount,
// because the YAML decoder cannot populate decimal values directly.
type extendedAmountPayload struct {
	Amount      string `yaml:"amount"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type lineItemPayload struct {
	ItemID      string `yaml:"itemId"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Quantity    string `yaml:"quantity"`
	UnitPrice   string `yaml:"unitPrice"`
	Taxable     *bool  `yaml:"taxable"`
}

type transactionPayload struct {
	RefID                     string                 `yaml:"refId"`
	Type                      string                 `yaml:"type"`
	Amount                    string                 `yaml:"amount"`
	Tax                       *extendedAmountPayload `yaml:"tax"`
	Shipping                  *extendedAmountPayload `yaml:"shipping"`
	Duty                      *extendedAmountPayload `yaml:"duty"`
	LineItems                 []lineItemPayload      `yaml:"lineItems"`
	CustomerProfileID         string                 `yaml:"customerProfileId"`
	CustomerPaymentProfileID  string                 `yaml:"customerPaymentProfileId"`
	CustomerShippingAddressID string                 `yaml:"customerShippingAddressId"`
	Order                     *cim.Order             `yaml:"order"`
	TaxExempt                 *bool                  `yaml:"taxExempt"`
	RecurringBilling          *bool                  `yaml:"recurringBilling"`
	CardCode                  string                 `yaml:"cardCode"`
	SplitTenderID             string                 `yaml:"splitTenderId"`
	ApprovalCode              string                 `yaml:"approvalCode"`
	TransID                   string                 `yaml:"transId"`
	CreditCardNumberMasked    string                 `yaml:"creditCardNumberMasked"`
	BankRoutingNumberMasked   string                 `yaml:"bankRoutingNumberMasked"`
	BankAccountNumberMasked   string                 `yaml:"bankAccountNumberMasked"`
}

// LoadTransaction reads a createCustomerProfileTransaction payload. Amounts
// are YAML strings and are parsed into exact decimals here.
func LoadTransaction(filePath string) (*cim.CreateTransactionRequest, error) {
	payload, err := Load[transactionPayload](filePath)
	if err != nil {
		return nil, err
	}

	req := &cim.CreateTransactionRequest{
		RefID:                     payload.RefID,
		Type:                      cim.TransactionType(payload.Type),
		CustomerProfileID:         payload.CustomerProfileID,
		CustomerPaymentProfileID:  payload.CustomerPaymentProfileID,
		CustomerShippingAddressID: payload.CustomerShippingAddressID,
		Order:                     payload.Order,
		TaxExempt:                 payload.TaxExempt,
		RecurringBilling:          payload.RecurringBilling,
		CardCode:                  payload.CardCode,
		SplitTenderID:             payload.SplitTenderID,
		ApprovalCode:              payload.ApprovalCode,
		TransID:                   payload.TransID,
		CreditCardNumberMasked:    payload.CreditCardNumberMasked,
		BankRoutingNumberMasked:   payload.BankRoutingNumberMasked,
		BankAccountNumberMasked:   payload.BankAccountNumberMasked,
	}

	if payload.Amount != "" {
		if req.Amount, err = decimal.NewFromString(payload.Amount); err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", payload.Amount, err)
		}
	}
	if req.Tax, err = convertExtendedAmount("tax", payload.Tax); err != nil {
		return nil, err
	}
	if req.Shipping, err = convertExtendedAmount("shipping", payload.Shipping); err != nil {
		return nil, err
	}
	if req.Duty, err = convertExtendedAmount("duty", payload.Duty); err != nil {
		return nil, err
	}

	for _, item := range payload.LineItems {
		converted, err := convertLineItem(item)
		if err != nil {
			return nil, err
		}
		req.LineItems = append(req.LineItems, converted)
	}

	return req, nil
}

func convertExtendedAmount(name string, payload *extendedAmountPayload) (*cim.ExtendedAmount, error) {
	if payload == nil {
		return nil, nil
	}
	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid %s amount %q: %w", name, payload.Amount, err)
	}
	return &cim.ExtendedAmount{
		Amount:      amount,
		Name:        payload.Name,
		Description: payload.Description,
	}, nil
}

func convertLineItem(payload lineItemPayload) (cim.LineItem, error) {
	item := cim.LineItem{
		ItemID:      payload.ItemID,
		Name:        payload.Name,
		Description: payload.Description,
		Taxable:     payload.Taxable,
	}

	var err error
	if payload.Quantity != "" {
		if item.Quantity, err = decimal.NewFromString(payload.Quantity); err != nil {
			return item, fmt.Errorf("invalid line item quantity %q: %w", payload.Quantity, err)
		}
	}
	if payload.UnitPrice != "" {
		if item.UnitPrice, err = decimal.NewFromString(payload.UnitPrice); err != nil {
			return item, fmt.Errorf("invalid line item unit price %q: %w", payload.UnitPrice, err)
		}
	}
	return item, nil
}
