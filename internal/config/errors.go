package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidKDFConfigs     = errors.New("invalid kdf configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
