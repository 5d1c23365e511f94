package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusNotLoggedIn      = http.StatusUnauthorized
	ErrStatusNoPermission     = http.StatusForbidden
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusEmailAlreadyUsed = http.StatusBadRequest
	ErrStatusConflict         = http.StatusConflict
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Not authorized, no token")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrForbidden               = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrProductNotFound         = errors.New("Product not found")
	ErrOrderNotFound           = errors.New("Order not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrNoOrderItems            = errors.New("No order items")
	ErrAlreadyReviewed         = errors.New("Product already reviewed by this user")
	ErrReviewNotAllowed        = errors.New("You can only review products you have purchased and received")
	ErrNotOrderOwner           = errors.New("Not authorized to view this order")
	ErrNotAnImage              = errors.New("Images only (jpg, jpeg, png, gif, webp, avif)")
	ErrNoImageFile             = errors.New("No image file provided")
	ErrConflict                = errors.New("Conflicting record found")
	ErrTokenExpired            = errors.New("The token is already expired")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrForbidden:               ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrProductNotFound:         ErrStatusNotFound,
	ErrOrderNotFound:           ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusEmailAlreadyUsed,
	ErrNoOrderItems:            ErrStatusClient,
	ErrAlreadyReviewed:         ErrStatusClient,
	ErrReviewNotAllowed:        ErrStatusNoPermission,
	ErrNotOrderOwner:           ErrStatusNoPermission,
	ErrNotAnImage:              ErrStatusClient,
	ErrNoImageFile:             ErrStatusClient,
	ErrConflict:                ErrStatusConflict,
	ErrTokenExpired:            ErrStatusNotLoggedIn,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
