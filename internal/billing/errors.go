package billing

import "errors"

// ErrPaymentDeclined indicates the mock payment confirmation failed.
var ErrPaymentDeclined = errors.New("payment declined")

// ErrAlreadyPro indicates the user already holds a pro subscription.
var ErrAlreadyPro = errors.New("subscription already pro")
