package model

import "errors"

var ErrorUserNotFound = errors.New("user not found")
var ErrorDuplicateEmail = errors.New("email already registered")
var ErrorMissingAuthorization = errors.New("authorization header missing")
var ErrorInvalidToken = errors.New("token verification failed")
var ErrorTokenExpired = errors.New("token expired")
