package domain

import "go.trai.ch/zerr"

var (
	// ErrTypeAlreadyExists is returned when a schema already declares a type with the same name.
	ErrTypeAlreadyExists = zerr.New("type already exists")

	// ErrNoSchemaInputs is returned when neither the command line nor the config names a schema file.
	ErrNoSchemaInputs = zerr.New("no schema inputs specified")

	// ErrInputNotFound is returned when a schema input pattern matches no files.
	ErrInputNotFound = zerr.New("input not found")

	// ErrSchemaInvalid is returned when the schema documents fail to parse or validate.
	ErrSchemaInvalid = zerr.New("invalid schema")

	// ErrUnreachableTypes is returned by the unused command in fail mode when unreachable types exist.
	ErrUnreachableTypes = zerr.New("schema declares unreachable types")

	// ErrUnknownFormat is returned when an output format is neither text nor json.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrInvalidPattern is returned when an ignore pattern does not compile.
	ErrInvalidPattern = zerr.New("invalid pattern")
)
