package kmp

import "fmt"

// TableError reports a prefix table that does not belong to the pattern
// it was passed with.
type TableError struct {
	PatternLen int
	TableLen   int
}

// Error implements the error interface.
func (e *TableError) Error() string {
	return fmt.Sprintf("kmp: prefix table has length %d, pattern has length %d", e.TableLen, e.PatternLen)
}
