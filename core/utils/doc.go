// Package utils provides common utility functions for the metabuild-hub service.
// It includes helpers for converting the loosely typed values that come out of
// decoded backend payloads into Go scalars.
package utils
