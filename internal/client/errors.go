package client

import "errors"

var (
	ErrNilConfig           = errors.New("client config is nil")
	ErrNilRepository       = errors.New("vault repository is nil")
	ErrNilUI               = errors.New("ui is nil")
	ErrNilIDGenerator      = errors.New("id generator is nil")
	ErrEmptyMasterPassword = errors.New("master password is empty")
)
