// Package mocks holds testify mocks for interfaces that cross package
// boundaries.
package mocks
