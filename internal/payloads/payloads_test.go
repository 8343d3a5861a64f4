package payloads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCreateProfile(t *testing.T) {
	path := writePayload(t, `
refId: ref-1
profile:
  merchantCustomerId: cust-42
  email: someone@example.com
billTo:
  firstName: John
  lastName: Doe
  zip: "84010"
payment:
  creditCard:
    cardNumber: "4111111111111111"
    expirationDate: "2027-12"
`)

	req, err := LoadCreateProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "ref-1", req.RefID)
	assert.Equal(t, "cust-42", req.Profile.MerchantCustomerID)
	assert.Equal(t, "someone@example.com", req.Profile.Email)
	require.NotNil(t, req.BillTo)
	assert.Equal(t, "John", req.BillTo.FirstName)
	assert.Equal(t, "84010", req.BillTo.Zip)
	require.NotNil(t, req.Payment)
	require.NotNil(t, req.Payment.CreditCard)
	assert.Equal(t, "4111111111111111", req.Payment.CreditCard.CardNumber)
	assert.Equal(t, "2027-12", req.Payment.CreditCard.ExpirationDate)
}

func TestLoadCreatePaymentProfileBankAccount(t *testing.T) {
	path := writePayload(t, `
customerProfileId: "10000"
payment:
  bankAccount:
    accountType: checking
    routingNumber: "124000054"
    accountNumber: "123456789"
    nameOnAccount: John Doe
    echeckType: WEB
`)

	req, err := LoadCreatePaymentProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "10000", req.CustomerProfileID)
	require.NotNil(t, req.Payment)
	require.NotNil(t, req.Payment.BankAccount)
	assert.Equal(t, "checking", req.Payment.BankAccount.AccountType)
	assert.Equal(t, "WEB", req.Payment.BankAccount.EcheckType)
}

func TestLoadAddress(t *testing.T) {
	path := writePayload(t, `
firstName: Jane
city: Bountiful
country: USA
`)

	addr, err := LoadAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", addr.FirstName)
	assert.Equal(t, "Bountiful", addr.City)
	assert.Equal(t, "USA", addr.Country)
}

func TestLoadTransaction(t *testing.T) {
	path := writePayload(t, `
type: profileTransAuthCapture
amount: "49.99"
customerProfileId: "10000"
customerPaymentProfileId: "20000"
tax:
  amount: "4.10"
  name: state tax
lineItems:
  - itemId: item-1
    name: widget
    quantity: "2"
    unitPrice: "9.99"
    taxable: true
order:
  invoiceNumber: INV-1001
taxExempt: false
`)

	req, err := LoadTransaction(path)
	require.NoError(t, err)

	assert.Equal(t, cim.TransactionAuthCapture, req.Type)
	assert.Equal(t, "49.99", req.Amount.String())
	assert.Equal(t, "10000", req.CustomerProfileID)
	require.NotNil(t, req.Tax)
	assert.Equal(t, "4.10", req.Tax.Amount.String())
	assert.Equal(t, "state tax", req.Tax.Name)
	require.Len(t, req.LineItems, 1)
	assert.Equal(t, "item-1", req.LineItems[0].ItemID)
	assert.Equal(t, "9.99", req.LineItems[0].UnitPrice.String())
	require.NotNil(t, req.LineItems[0].Taxable)
	assert.True(t, *req.LineItems[0].Taxable)
	require.NotNil(t, req.Order)
	assert.Equal(t, "INV-1001", req.Order.InvoiceNumber)
	require.NotNil(t, req.TaxExempt)
	assert.False(t, *req.TaxExempt)
}

func TestLoadTransactionBadAmount(t *testing.T) {
	path := writePayload(t, `
type: profileTransAuthCapture
amount: not-a-number
`)

	_, err := LoadTransaction(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadCreateProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read payload file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writePayload(t, "profile: [unterminated")
	_, err := LoadCreateProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal YAML")
}
