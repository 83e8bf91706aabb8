package internalerr

import "errors"

// Sentinel errors for the fatal pipeline conditions
var (
	ErrCatalogLoad      = errors.New("catalog load failed")
	ErrCatalogIntegrity = errors.New("catalog integrity violation")
	ErrReconciliation   = errors.New("report reconciliation failed")
)
