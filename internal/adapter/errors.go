package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrNotImplemented      = errors.New("not supported by server")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoToken             = errors.New("no session token, register or log in first")
)
