package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure; handlers map it to an HTTP status
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindExpired
	KindNotFound
	KindAuth
	KindForbidden
	KindConflict
	KindDelivery
)

// Error is a classified service failure with a client-safe message
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind and message so errors.Is works on copies
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// KindOf returns the kind of err, KindInternal when unclassified
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// wrap attaches a cause to a sentinel without changing its identity
func wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching
var (
	// ErrInvalidCredentials indicates login failed
	ErrInvalidCredentials = newError(KindAuth, "Invalid credentials")

	// ErrUnauthorized indicates a missing, expired or destroyed session
	ErrUnauthorized = newError(KindAuth, "Unauthorized")

	// ErrForbidden indicates the session role is not allowed on the route
	ErrForbidden = newError(KindForbidden, "Forbidden")

	// ErrInvalidVerification is returned for every failed identity check
	ErrInvalidVerification = newError(KindInvalid, "Invalid verification data")

	// ErrInvalidCode covers unknown, already used and lost-race codes
	ErrInvalidCode = newError(KindInvalid, "Invalid or expired code")

	// ErrCodeExpired indicates the code exists but its window has passed
	ErrCodeExpired = newError(KindExpired, "Code has expired")

	// ErrIdentityRequired indicates neither email nor document number was provided
	ErrIdentityRequired = newError(KindInvalid, "Email or document number is required")

	// ErrDeliveryFailed indicates the SMS gateway or mail provider rejected the code
	ErrDeliveryFailed = newError(KindDelivery, "Failed to deliver code")

	// ErrEmptyUpdate indicates a partial update without any field
	ErrEmptyUpdate = newError(KindInvalid, "At least one field must be provided for update")

	// ErrAdminNotFound indicates the admin account does not exist
	ErrAdminNotFound = newError(KindNotFound, "Admin not found")

	// ErrEmailTaken indicates another admin already uses the email
	ErrEmailTaken = newError(KindConflict, "Email already in use")

	// ErrPasswordTooLong indicates a password bcrypt cannot hash
	ErrPasswordTooLong = newError(KindInvalid, "Password must be at most 72 characters")

	// ErrDocumentTaken indicates another admin already holds the document number
	ErrDocumentTaken = newError(KindConflict, "Document number already in use")

	// ErrInvalidRole indicates a role outside super_admin, editor, viewer
	ErrInvalidRole = newError(KindInvalid, "Invalid role")

	// ErrSelfDelete indicates a super admin tried to delete their own account
	ErrSelfDelete = newError(KindInvalid, "You cannot delete your own account")

	ErrProductNotFound   = newError(KindNotFound, "Product not found")
	ErrITServiceNotFound = newError(KindNotFound, "Service not found")
	ErrFoodItemNotFound  = newError(KindNotFound, "Food item not found")
	ErrCartItemNotFound  = newError(KindNotFound, "Cart item not found")

	// ErrInvalidQuantity indicates a cart quantity below one
	ErrInvalidQuantity = newError(KindInvalid, "Invalid quantity")

	// ErrInvalidServiceType indicates a contact request for an unknown section
	ErrInvalidServiceType = newError(KindInvalid, "Invalid contact request data")

	ErrCategoryNotFound = newError(KindNotFound, "Category not found")
	ErrSettingNotFound  = newError(KindNotFound, "Setting not found")
	ErrFooterNotFound   = newError(KindNotFound, "Footer not found")

	// ErrInvalidCategory indicates a blank or overlong category name
	ErrInvalidCategory = newError(KindInvalid, "Invalid category data")

	// ErrCategoryTaken indicates the catalog already has a category with that name
	ErrCategoryTaken = newError(KindConflict, "Category already exists")

	// ErrInvalidSettingKey indicates a key that is not lowercase snake case
	ErrInvalidSettingKey = newError(KindInvalid, "Invalid setting key")

	// ErrInvalidSetting indicates a setting value that is not a JSON object
	ErrInvalidSetting = newError(KindInvalid, "Invalid setting data")

	// ErrInvalidFooterSection indicates an unknown storefront section
	ErrInvalidFooterSection = newError(KindInvalid, "Invalid footer section")
)
