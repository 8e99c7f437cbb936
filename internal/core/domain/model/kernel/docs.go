// Package kernel contains shared value objects used across domain models.
// It currently provides the UUID identifier type used for intake-session
// correlation and export artifact naming.
package kernel
