package cim

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerProfileRequiresIdentifyingField(t *testing.T) {
	client, _ := newTestClient(t, Config{}, okResponse)

	tests := []struct {
		name    string
		req     *CreateCustomerProfileRequest
		wantErr bool
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: true,
		},
		{
			name:    "no identifying field",
			req:     &CreateCustomerProfileRequest{},
			wantErr: true,
		},
		{
			name:    "merchantCustomerId alone is enough",
			req:     &CreateCustomerProfileRequest{Profile: CustomerProfile{MerchantCustomerID: "cust-1"}},
			wantErr: false,
		},
		{
			name:    "description alone is enough",
			req:     &CreateCustomerProfileRequest{Profile: CustomerProfile{Description: "test customer"}},
			wantErr: false,
		},
		{
			name:    "email alone is enough",
			req:     &CreateCustomerProfileRequest{Profile: CustomerProfile{Email: "bob@example.com"}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateCustomerProfile(context.Background(), tt.req)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomerProfileDocumentShape(t *testing.T) {
	client, rec := newTestClient(t, Config{}, okResponse)

	_, err := client.CreateCustomerProfile(context.Background(), &CreateCustomerProfileRequest{
		RefID: "ref-1",
		Profile: CustomerProfile{
			MerchantCustomerID: "cust-1",
			Description:        "test customer",
			Email:              "bob@example.com",
		},
		BillTo: &Address{FirstName: "Bob", LastName: "Smith", Zip: "44628"},
		Payment: &Payment{
			CreditCard: &CreditCard{CardNumber: "4007000000027", ExpirationDate: "2030-12", CardCode: "123"},
		},
		ShipTo: &Address{FirstName: "Bob", LastName: "Smith", Address: "12 Main Street"},
	})
	require.NoError(t, err)

	body := rec.body
	assert.Contains(t, body, `<createCustomerProfileRequest xmlns="AnetApi/xml/v1/schema/AnetApiSchema.xsd">`)
	assert.Contains(t, body, `<refId>ref-1</refId>`)
	assert.Contains(t, body, `<merchantCustomerId>cust-1</merchantCustomerId>`)
	assert.Contains(t, body, `<paymentProfiles><billTo><firstName>Bob</firstName><lastName>Smith</lastName><zip>44628</zip></billTo>`)
	assert.Contains(t, body, `<creditCard><cardNumber>4007000000027</cardNumber><expirationDate>2030-12</expirationDate><cardCode>123</cardCode></creditCard>`)
	assert.Contains(t, body, `<shipToList><firstName>Bob</firstName><lastName>Smith</lastName><address>12 Main Street</address></shipToList>`)

	// schema order: profile fields, then paymentProfiles, then shipToList
	assert.True(t, strings.Index(body, "<merchantCustomerId>") < strings.Index(body, "<paymentProfiles>"))
	assert.True(t, strings.Index(body, "<paymentProfiles>") < strings.Index(body, "<shipToList>"))
}

func TestCreateCustomerProfileOmitsAbsentOptionals(t *testing.T) {
	client, rec := newTestClient(t, Config{}, okResponse)

	_, err := client.CreateCustomerProfile(context.Background(), &CreateCustomerProfileRequest{
		Profile: CustomerProfile{Email: "bob@example.com"},
	})
	require.NoError(t, err)

	assert.NotContains(t, rec.body, "<refId")
	assert.NotContains(t, rec.body, "<merchantCustomerId")
	assert.NotContains(t, rec.body, "<description")
	assert.NotContains(t, rec.body, "<paymentProfiles")
	assert.NotContains(t, rec.body, "<shipToList")
	assert.NotContains(t, rec.body, "<billTo")
}

func TestCreateCustomerProfileShipToAsBillTo(t *testing.T) {
	client, rec := newTestClient(t, Config{}, okResponse)

	_, err := client.CreateCustomerProfile(context.Background(), &CreateCustomerProfileRequest{
		Profile:           CustomerProfile{Email: "bob@example.com"},
		ShipTo:            &Address{FirstName: "Bob", City: "Columbus", Zip: "44628"},
		UseShipToAsBillTo: true,
	})
	require.NoError(t, err)

	assert.Contains(t, rec.body,
		`<billTo><firstName>Bob</firstName><city>Columbus</city><zip>44628</zip></billTo>`,
		"billTo must be populated from the shipToList values")
	assert.Contains(t, rec.body,
		`<shipToList><firstName>Bob</firstName><city>Columbus</city><zip>44628</zip></shipToList>`)
}

func TestCreateCustomerProfileBillToAsShipTo(t *testing.T) {
	client, rec := newTestClient(t, Config{}, okResponse)

	_, err := client.CreateCustomerProfile(context.Background(), &CreateCustomerProfileRequest{
		Profile:           CustomerProfile{Email: "bob@example.com"},
		BillTo:            &Address{FirstName: "Bob", Zip: "44628"},
		UseBillToAsShipTo: true,
	})
	require.NoError(t, err)

	assert.Contains(t, rec.body, `<shipToList><firstName>Bob</firstName><zip>44628</zip></shipToList>`)
}

func TestCreateCustomerProfileValidationModeInTestMode(t *testing.T) {
	tests := []struct {
		name     string
		testMode bool
		want     bool
	}{
		{
			name:     "test mode appends validationMode",
			testMode: true,
			want:     true,
		},
		{
			name:     "live mode omits validationMode",
			testMode: false,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, Config{TestMode: tt.testMode}, okResponse)

			_, err := client.CreateCustomerProfile(context.Background(), &CreateCustomerProfileRequest{
				Profile: CustomerProfile{Email: "bob@example.com"},
			})
			require.NoError(t, err)

			if tt.want {
				assert.Contains(t, rec.body, `<validationMode>testMode</validationMode>`)
			} else {
				assert.NotContains(t, rec.body, "validationMode")
			}
		})
	}
}

func TestGetCustomerProfile(t *testing.T) {
	client, rec := newTestClient(t, Config{}, okResponse)

	resp, err := client.GetCustomerProfile(context.Background(), "10000")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Contains(t, rec.body, `<getCustomerProfileRequest xmlns="AnetApi/xml/v1/schema/AnetApiSchema.xsd">`)
	assert.Contains(t, rec.body, `<customerProfileId>10000</customerProfileId>`)

	_, err = client.GetCustomerProfile(context.Background(), "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetCustomerProfileIDs(t *testing.T) {
	tests := []struct {
		name     string
		ids      string
		expected []string
	}{
		{
			name:     "no profiles",
			ids:      `<ids/>`,
			expected: []string{},
		},
		{
			name:     "single profile",
			ids:      `<ids><numericString>10000</numericString></ids>`,
			expected: []string{"10000"},
		},
		{
			name: "multiple profiles",
			ids: `<ids><numericString>10000</numericString>` +
				`<numericString>10001</numericString></ids>`,
			expected: []string{"10000", "10001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			respBody := `<?xml version="1.0" encoding="utf-8"?>` +
				`<getCustomerProfileIdsResponse xmlns="AnetApi/xml/v1/schema/AnetApiSchema.xsd">` +
				`<messages><resultCode>Ok</resultCode></messages>` + tt.ids +
				`</getCustomerProfileIdsResponse>`
			client, rec := newTestClient(t, Config{}, respBody)

			resp, err := client.GetCustomerProfileIDs(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.IDs)
			assert.Contains(t, rec.body, "<getCustomerProfileIdsRequest")
		})
	}
}

func TestUpdateCustomerProfile(t *testing.T) {
	client, rec := newTestClient(t, Config{}, okResponse)

	_, err := client.UpdateCustomerProfile(context.Background(), &UpdateCustomerProfileRequest{
		CustomerProfileID: "10000",
		Profile:           CustomerProfile{Email: "new@example.com"},
	})
	require.NoError(t, err)

	assert.Contains(t, rec.body,
		`<profile><email>new@example.com</email><customerProfileId>10000</customerProfileId></profile>`)

	_, err = client.UpdateCustomerProfile(context.Background(), &UpdateCustomerProfileRequest{})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// Round trip for the delete operation: test-mode client, plain ID body,
// no validationMode element.
func TestDeleteCustomerProfileRoundTrip(t *testing.T) {
	client, rec := newTestClient(t, Config{TestMode: true}, okResponse)

	resp, err := client.DeleteCustomerProfile(context.Background(), "12345")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Contains(t, rec.body, `<customerProfileId>12345</customerProfileId>`)
	assert.NotContains(t, rec.body, "validationMode")

	_, err = client.DeleteCustomerProfile(context.Background(), "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
