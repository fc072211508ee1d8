// Package testutil contains helper builders and fixtures used across tests
// to reduce boilerplate when declaring archetypes, models and components and
// asserting hook order. They are not intended for production usage.
package testutil
