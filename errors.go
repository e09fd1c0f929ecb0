package svcimage

import "fmt"

// ConfigurerError reports a reflection configurer whose callback failed. It
// always aborts the build: configurers are a small, build-author-controlled
// set, and skipping one silently would hide real misconfiguration.
type ConfigurerError struct {
	TypeName string // the configurer's closed-world type name
	Err      error
}

func (e *ConfigurerError) Error() string {
	return fmt.Sprintf("reflection configurer %s failed: %v", e.TypeName, e.Err)
}

func (e *ConfigurerError) Unwrap() error { return e.Err }

// ScanError reports that the raw service declarations could not be read. It
// aborts the build before any pruning begins.
type ScanError struct {
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning service declarations: %v", e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
