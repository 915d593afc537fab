package errors

// Error code constants returned in API error responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The frontend maps these codes to
// user-facing messages, so they are part of the API contract.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // sign-in required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED" // signed out
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzOwnerOnly    = "AUTHZ_OWNER_ONLY"    // shop owner only
	AuthzCustomerOnly = "AUTHZ_CUSTOMER_ONLY" // customers only (reviews)

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidRole  = "VALIDATION_INVALID_ROLE"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Shop (SHOP_) ====================
	ShopNotFound      = "SHOP_NOT_FOUND"
	ShopAlreadyExists = "SHOP_ALREADY_EXISTS" // owner already has a shop
	ShopNameRequired  = "SHOP_NAME_REQUIRED"

	// ==================== Menu item (ITEM_) ====================
	ItemNotFound     = "ITEM_NOT_FOUND"
	ItemInvalidPrice = "ITEM_INVALID_PRICE" // non-numeric or negative

	// ==================== Review (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING" // outside 1-5

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"
)
