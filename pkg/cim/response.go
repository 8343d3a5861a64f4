package cim

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

// Values is the generic decoded response tree: string keys map to scalar
// strings, nested Values, or []interface{} for repeated elements. Empty leaf
// elements are suppressed rather than decoded as empty strings.
type Values map[string]interface{}

// Message is one entry of the response envelope's message list.
type Message struct {
	Code string
	Text string
}

// Response is the decoded result of one gateway call. Every operation
// returns the same envelope: the result code and messages are always
// populated, the ID fields only where the operation's response carries them,
// and Values holds the full tree for anything not surfaced as a typed field.
type Response struct {
	// Operation is the name of the call that produced this response.
	Operation string

	// ResultCode is "Ok" on success and "Error" on a remote rejection.
	ResultCode string

	// Messages carries the gateway's code/text pairs.
	Messages []Message

	// RefID echoes the request's reference ID when one was sent.
	RefID string

	// CustomerProfileID is set on responses that return a profile ID.
	CustomerProfileID string

	// CustomerPaymentProfileID is set on payment-profile responses.
	CustomerPaymentProfileID string

	// CustomerAddressID is set on shipping-address responses.
	CustomerAddressID string

	// CustomerPaymentProfileIDList holds the payment profile IDs returned by
	// createCustomerProfile when the request embedded payment data.
	CustomerPaymentProfileIDList []string

	// CustomerShippingAddressIDList holds the shipping address IDs returned
	// by createCustomerProfile when the request embedded a shipToList.
	CustomerShippingAddressIDList []string

	// IDs is the normalized profile ID sequence of getCustomerProfileIds.
	// It always has length 0, 1 or N regardless of how the XML decoder
	// represents a single-element list.
	IDs []string

	// DirectResponse is the comma-delimited direct response of transaction
	// and validation calls.
	DirectResponse string

	// ValidationDirectResponses holds the per-payment-profile validation
	// responses of createCustomerProfile.
	ValidationDirectResponses []string

	// Values is the generic decoded tree of the whole response body.
	Values Values

	raw []byte
}

// Ok reports whether the gateway accepted the call.
func (r *Response) Ok() bool {
	return r.ResultCode == "Ok"
}

// Raw returns the undecoded response body.
func (r *Response) Raw() []byte {
	return r.raw
}

// decodeResponse parses a response body into the typed envelope and the
// generic value tree. An unparseable body yields a *DecodeError.
func decodeResponse(operation string, body []byte) (*Response, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, &DecodeError{Operation: operation, Snippet: bodySnippet(body), Err: err}
	}
	docRoot := doc.Root()
	if docRoot == nil {
		return nil, &DecodeError{Operation: operation, Snippet: bodySnippet(body), Err: errEmptyDocument}
	}

	values, _ := decodeValues(docRoot).(Values)
	if values == nil {
		values = Values{}
	}

	root, err := xmlutils.ParseResponse(body)
	if err != nil {
		return nil, &DecodeError{Operation: operation, Snippet: bodySnippet(body), Err: err}
	}

	response := &Response{
		Operation: operation,
		Values:    values,
		raw:       body,
	}

	response.ResultCode, _ = xmlutils.ExtractOne(root, "//messages/resultCode")
	response.RefID, _ = xmlutils.ExtractOne(root, "//refId")
	response.CustomerProfileID, _ = xmlutils.ExtractOne(root, "//customerProfileId")
	response.CustomerPaymentProfileID, _ = xmlutils.ExtractOne(root, "//customerPaymentProfileId")
	response.CustomerAddressID, _ = xmlutils.ExtractOne(root, "//customerAddressId")

	codes, _ := xmlutils.ExtractAll(root, "//messages/message/code")
	texts, _ := xmlutils.ExtractAll(root, "//messages/message/text")
	for i, code := range codes {
		response.Messages = append(response.Messages, Message{
			Code: code,
			Text: xmlutils.GetOrEmpty(texts, i),
		})
	}

	response.IDs, _ = xmlutils.ExtractAll(root, "//ids/numericString")
	response.CustomerPaymentProfileIDList, _ = xmlutils.ExtractAll(root, "//customerPaymentProfileIdList/numericString")
	response.CustomerShippingAddressIDList, _ = xmlutils.ExtractAll(root, "//customerShippingAddressIdList/numericString")
	response.ValidationDirectResponses, _ = xmlutils.ExtractAll(root, "//validationDirectResponseList/string")

	if direct, ok := xmlutils.ExtractOne(root, "//directResponse"); ok {
		response.DirectResponse = direct
	} else if direct, ok := xmlutils.ExtractOne(root, "//validationDirectResponse"); ok {
		response.DirectResponse = direct
	}

	return response, nil
}

// decodeValues converts an element into the generic tree. Leaves become
// trimmed strings, nested elements become Values, and repeated sibling tags
// collapse into a []interface{} in document order. Empty leaves are dropped.
func decodeValues(el *etree.Element) interface{} {
	children := el.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(el.Text())
	}

	m := Values{}
	for _, child := range children {
		v := decodeValues(child)
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		if existing, present := m[child.Tag]; present {
			if list, isList := existing.([]interface{}); isList {
				m[child.Tag] = append(list, v)
			} else {
				m[child.Tag] = []interface{}{existing, v}
			}
		} else {
			m[child.Tag] = v
		}
	}
	return m
}
