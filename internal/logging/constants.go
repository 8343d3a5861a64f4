package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the client and the CLI,
// making traces easier to filter and correlate.
const (
	FieldOperation        = "operation"
	FieldEndpoint         = "endpoint"
	FieldProfileID        = "customer_profile_id"
	FieldPaymentProfileID = "customer_payment_profile_id"
	FieldAddressID        = "customer_address_id"
	FieldTransactionID    = "trans_id"
	FieldResultCode       = "result_code"
	FieldStatus           = "http_status"
	FieldDuration         = "duration_ms"
	FieldCount            = "count"
	FieldError            = "error"
	FieldFile             = "file_path"
)
