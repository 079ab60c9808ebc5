//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq generates the interface mocks used in service tests.
// - github.com/pressly/goose/v3/cmd/goose applies migrations outside the server.
