package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps a low-level error onto an API error code and message.
// Sensitive driver detail stays out of the response; the caller passes a
// short context string ("create shop", "submit review") used to pick a
// sensible default message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong. Please try again later",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM sentinel errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. Postgres constraint errors

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStrLower)
	}

	// 2-3. Check constraint violation (23514)
	if strings.Contains(errStrLower, "check constraint") {
		return parseCheckConstraintError(errStrLower)
	}

	// 2-4. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// 3. Network/connection errors
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Could not reach the database. Please try again later",
		}
	}

	// 4. Default internal server error
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "An account with this email already exists",
		}
	}

	if strings.Contains(errLower, "owner_id") || strings.Contains(errLower, "idx_shops_owner_id") {
		return ErrorInfo{
			Code:    ShopAlreadyExists,
			Message: "You already have a shop",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "This record already exists",
	}
}

func parseForeignKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "This record is referenced by other data and cannot be deleted",
		}
	}

	if strings.Contains(errLower, "shop_id") || strings.Contains(errLower, "fk_shops") {
		return ErrorInfo{
			Code:    ShopNotFound,
			Message: "Shop not found",
		}
	}
	if strings.Contains(errLower, "user_id") || strings.Contains(errLower, "fk_users") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "User not found",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "Referenced record not found",
	}
}

func parseCheckConstraintError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "rating") {
		return ErrorInfo{
			Code:    ReviewInvalidRating,
			Message: "Rating must be between 1 and 5",
		}
	}

	if strings.Contains(errLower, "price") {
		return ErrorInfo{
			Code:    ItemInvalidPrice,
			Message: "Price must be a non-negative number",
		}
	}

	return ErrorInfo{
		Code:    ValidationInvalidInput,
		Message: "Invalid input",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "shop") {
		return "Shop not found"
	}
	if strings.Contains(contextLower, "item") || strings.Contains(contextLower, "menu") {
		return "Menu item not found"
	}
	if strings.Contains(contextLower, "review") {
		return "Review not found"
	}
	if strings.Contains(contextLower, "user") {
		return "User not found"
	}

	return "Requested record not found"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "submit") {
		return "Could not save. Please try again later"
	}
	if strings.Contains(contextLower, "update") {
		return "Could not update. Please try again later"
	}
	if strings.Contains(contextLower, "delete") {
		return "Could not delete. Please try again later"
	}

	return "Something went wrong. Please try again later"
}

// ParseAndRespond parses an error and writes the standard error payload
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
