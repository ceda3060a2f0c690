package services

import "errors"

// Service-level error kinds. Handlers translate these into HTTP responses;
// raw collaborator errors never escape the service layer.
var (
	// ErrNotFound means no record owned by the caller matched.
	ErrNotFound = errors.New("record not found")

	// ErrNoFileProvided means an upload carried no content.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrStorageWrite means the object store rejected a blob write.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrStorageRead means the object store could not issue a signed URL.
	ErrStorageRead = errors.New("storage read failed")

	// ErrMetadataWrite means a database insert/update/delete failed.
	ErrMetadataWrite = errors.New("metadata write failed")

	// ErrQuery means a database read failed.
	ErrQuery = errors.New("query failed")

	// ErrShareCreation means the share record could not be persisted.
	ErrShareCreation = errors.New("share creation failed")

	// ErrShareInvalid covers both unknown and expired share tokens; the
	// two cases are deliberately indistinguishable to callers.
	ErrShareInvalid = errors.New("share link invalid or expired")
)
