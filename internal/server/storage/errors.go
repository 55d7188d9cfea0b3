package storage

import "errors"

// Common storage errors
var (
	// ErrWorkspaceNotFound indicates that workspace was not found in storage
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrStorageClosed indicates that the storage was used after Close
	ErrStorageClosed = errors.New("storage is closed")
)
