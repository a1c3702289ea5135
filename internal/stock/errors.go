package stock

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
)

// Field-level messages.
const (
	MsgRequired          = "This field is required."
	MsgBlank             = "This field may not be blank."
	MsgNameTooLong       = "Ensure this field has no more than 100 characters."
	MsgPriceNegative     = "Price cannot be negative."
	MsgPriceWholeDigits  = "Ensure that there are no more than 8 digits before the decimal point."
	MsgPriceDecimals     = "Ensure that there are no more than 2 decimal places."
	MsgQuantityNegative  = "Quantity cannot be negative."
	MsgLowStockNegative  = "Ensure this value is greater than or equal to 0."
	MsgExpiredWithStock  = "Cannot stock already-expired items."
	MsgInvalidNumber     = "A valid number is required."
	MsgInvalidInteger    = "A valid integer is required."
	MsgInvalidDate       = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgInvalidDateFilter = "Enter a date (YYYY-MM-DD) or an expression such as \"today\", \"in 3 days\" or \"next monday\"."
)
