// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the go-pii-keeper HTTP API.
//
// [ServerAdapter] hides the REST routes and the bearer token; failures are
// mapped to the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pii-keeper/models"
)

// ServerAdapter talks to a go-pii-keeper server on behalf of one user.
// Register and Login store the session token; every other call except
// EmailExists sends it.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, credentials models.Credentials) error
	Login(ctx context.Context, credentials models.Credentials) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, change models.PasswordChange) error
	EmailExists(ctx context.Context, email string) (bool, error)

	Profile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)

	CreateContact(ctx context.Context, contact models.NewContact) (models.ContactView, error)
	ListContacts(ctx context.Context) ([]models.ContactView, error)
	SearchContacts(ctx context.Context, email string) ([]models.ContactView, error)
}
