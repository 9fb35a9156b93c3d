package httputil

// Machine-readable error codes returned alongside error messages so the
// dashboard frontend can branch on failures without string matching.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeInternalError      = "internal_error"

	CodeEmailRequired      = "email_required"
	CodeInvalidEmailFormat = "invalid_email_format"
	CodeNameRequired       = "name_required"
	CodeInvalidNameFormat  = "invalid_name_format"
	CodePasswordRequired   = "password_required"
	CodePasswordTooShort   = "password_too_short"
	CodePasswordTooWeak    = "password_too_weak"

	CodeEmailAlreadyExists = "email_already_exists"
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailNotVerified   = "email_not_verified"
	CodeTooManyAttempts    = "too_many_attempts"

	CodeVerificationTokenRequired = "verification_token_required"
	CodeVerificationFailed        = "verification_failed"
	CodeAlreadyVerified           = "already_verified"
	CodeInvalidResetToken         = "invalid_reset_token"

	CodeInvalidAuthHeader  = "invalid_auth_header"
	CodeMissingAuth        = "missing_auth"
	CodeTokenExpired       = "token_expired"
	CodeInvalidToken       = "invalid_token"
	CodeInvalidTokenUserID = "invalid_token_user_id"

	CodeCustomerExists     = "customer_already_exists"
	CodeCustomerNotFound   = "customer_not_found"
	CodeCustomerIDRequired = "customer_id_required"
	CodeValidationFailed   = "validation_failed"
)
