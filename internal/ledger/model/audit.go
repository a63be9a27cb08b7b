package model

// AuditReason classifies a single chain audit finding.
type AuditReason string

const (
	// AuditHashMismatch means the block's recomputed content hash differs
	// from the stored one.
	AuditHashMismatch AuditReason = "hash_mismatch"
	// AuditLinkMismatch means the block's previous-hash reference does not
	// match its predecessor's stored hash.
	AuditLinkMismatch AuditReason = "link_mismatch"
)

// AuditFinding describes one failed check for one block. A block can carry
// both a hash and a link finding in the same report.
type AuditFinding struct {
	BlockNumber  uint64      `json:"block_number"`
	Reason       AuditReason `json:"reason"`
	StoredHash   string      `json:"stored_hash,omitempty"`
	ComputedHash string      `json:"computed_hash,omitempty"`
	ExpectedPrev string      `json:"expected_previous,omitempty"`
	ActualPrev   string      `json:"actual_previous,omitempty"`
}

// AuditReport is the outcome of a full chain walk. Findings are data, not
// errors: callers must inspect Valid.
type AuditReport struct {
	Valid      bool           `json:"is_valid"`
	Message    string         `json:"message"`
	BlockCount int            `json:"block_count"`
	Findings   []AuditFinding `json:"findings"`
}
