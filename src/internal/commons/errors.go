package commons

import "errors"

var ErrAccountNotFound = errors.New("Account not found")
var ErrDuplicateOwner = errors.New("owner already has an account")
