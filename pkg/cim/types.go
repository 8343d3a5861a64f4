package cim

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

// Address is a billing or shipping address block. Every field is optional;
// absent fields are elided from the generated document.
type Address struct {
	FirstName   string `yaml:"firstName"`
	LastName    string `yaml:"lastName"`
	Company     string `yaml:"company"`
	Address     string `yaml:"address"`
	City        string `yaml:"city"`
	State       string `yaml:"state"`
	Zip         string `yaml:"zip"`
	Country     string `yaml:"country"`
	PhoneNumber string `yaml:"phoneNumber"`
	FaxNumber   string `yaml:"faxNumber"`
}

// CreditCard is the card variant of a stored payment instrument.
// ExpirationDate uses the gateway's YYYY-MM format.
type CreditCard struct {
	CardNumber     string `yaml:"cardNumber"`
	ExpirationDate string `yaml:"expirationDate"`
	CardCode       string `yaml:"cardCode"`
}

// BankAccount is the echeck variant of a stored payment instrument.
type BankAccount struct {
	AccountType   string `yaml:"accountType"`
	RoutingNumber string `yaml:"routingNumber"`
	AccountNumber string `yaml:"accountNumber"`
	NameOnAccount string `yaml:"nameOnAccount"`
	EcheckType    string `yaml:"echeckType"`
	BankName      string `yaml:"bankName"`
}

// Payment holds exactly one payment instrument variant. When both are set,
// the credit card wins; the schema does not allow both.
type Payment struct {
	CreditCard  *CreditCard  `yaml:"creditCard"`
	BankAccount *BankAccount `yaml:"bankAccount"`
}

// Order carries the optional merchant-side order references on a transaction.
type Order struct {
	InvoiceNumber       string `yaml:"invoiceNumber"`
	Description         string `yaml:"description"`
	PurchaseOrderNumber string `yaml:"purchaseOrderNumber"`
}

// ExtendedAmount is the tax/shipping/duty sub-amount structure.
type ExtendedAmount struct {
	Amount      decimal.Decimal `yaml:"amount"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
}

// LineItem is one entry of a transaction's repeated lineItems sequence.
type LineItem struct {
	ItemID      string          `yaml:"itemId"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Quantity    decimal.Decimal `yaml:"quantity"`
	UnitPrice   decimal.Decimal `yaml:"unitPrice"`
	Taxable     *bool           `yaml:"taxable"`
}

// Bool returns a pointer to b, for the optional boolean request fields.
func Bool(b bool) *bool {
	return &b
}

// appendAddress emits an address block under parent with the given tag.
// Field order follows the gateway schema. A nil or all-empty address emits
// nothing.
func appendAddress(parent *etree.Element, tag string, a *Address) {
	if a == nil || *a == (Address{}) {
		return
	}
	el := parent.CreateElement(tag)
	xmlutils.AddChildIfSet(el, "firstName", a.FirstName)
	xmlutils.AddChildIfSet(el, "lastName", a.LastName)
	xmlutils.AddChildIfSet(el, "company", a.Company)
	xmlutils.AddChildIfSet(el, "address", a.Address)
	xmlutils.AddChildIfSet(el, "city", a.City)
	xmlutils.AddChildIfSet(el, "state", a.State)
	xmlutils.AddChildIfSet(el, "zip", a.Zip)
	xmlutils.AddChildIfSet(el, "country", a.Country)
	xmlutils.AddChildIfSet(el, "phoneNumber", a.PhoneNumber)
	xmlutils.AddChildIfSet(el, "faxNumber", a.FaxNumber)
}

// appendPayment emits the payment block: creditCard or bankAccount.
func appendPayment(parent *etree.Element, p *Payment) {
	if p == nil || (p.CreditCard == nil && p.BankAccount == nil) {
		return
	}
	el := parent.CreateElement("payment")
	if p.CreditCard != nil {
		card := el.CreateElement("creditCard")
		xmlutils.AddChild(card, "cardNumber", p.CreditCard.CardNumber)
		xmlutils.AddChild(card, "expirationDate", p.CreditCard.ExpirationDate)
		xmlutils.AddChildIfSet(card, "cardCode", p.CreditCard.CardCode)
		return
	}
	account := el.CreateElement("bankAccount")
	xmlutils.AddChildIfSet(account, "accountType", p.BankAccount.AccountType)
	xmlutils.AddChild(account, "routingNumber", p.BankAccount.RoutingNumber)
	xmlutils.AddChild(account, "accountNumber", p.BankAccount.AccountNumber)
	xmlutils.AddChild(account, "nameOnAccount", p.BankAccount.NameOnAccount)
	xmlutils.AddChildIfSet(account, "echeckType", p.BankAccount.EcheckType)
	xmlutils.AddChildIfSet(account, "bankName", p.BankAccount.BankName)
}

// appendExtendedAmount emits a tax/shipping/duty block.
func appendExtendedAmount(parent *etree.Element, tag string, ea *ExtendedAmount) {
	if ea == nil {
		return
	}
	el := parent.CreateElement(tag)
	xmlutils.AddChild(el, "amount", ea.Amount.String())
	xmlutils.AddChildIfSet(el, "name", ea.Name)
	xmlutils.AddChildIfSet(el, "description", ea.Description)
}

// appendLineItems emits the repeated lineItems sequence in slice order.
func appendLineItems(parent *etree.Element, items []LineItem) {
	for _, item := range items {
		el := parent.CreateElement("lineItems")
		xmlutils.AddChildIfSet(el, "itemId", item.ItemID)
		xmlutils.AddChildIfSet(el, "name", item.Name)
		xmlutils.AddChildIfSet(el, "description", item.Description)
		if !item.Quantity.IsZero() {
			xmlutils.AddChild(el, "quantity", item.Quantity.String())
		}
		if !item.UnitPrice.IsZero() {
			xmlutils.AddChild(el, "unitPrice", item.UnitPrice.String())
		}
		if item.Taxable != nil {
			xmlutils.AddChild(el, "taxable", boolText(*item.Taxable))
		}
	}
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
