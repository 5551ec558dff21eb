// Package utils provides common utility functions for the sync-actions application.
// It includes helper functions for type conversion of decoded JSON values that
// don't fit into domain-specific packages.
package utils
