// Package canonical derives the deterministic string and hash forms of ledger
// block content. It is the single source of truth for hash calculation: both
// the append path and the chain audit must go through BlockHash, or
// verification fails spuriously.
package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/trustrent/trustchain-backend/pkg/safe"
)

// ErrMalformedPropertyID signals a property identifier outside the accepted
// surface forms. Write paths surface it; read paths swallow it to an empty
// result.
var ErrMalformedPropertyID = errors.New("malformed property id")

// TimeLayout is the canonical timestamp rendering: UTC, microsecond
// precision, explicit offset. Any drift in precision or offset formatting
// between append time and verify time breaks hash reproducibility, so every
// timestamp that participates in a hash goes through FormatTime.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

var propertyPattern = regexp.MustCompile(`^PROP_?([0-9]+)$`)

// PropertyID is the parsed numeric identity of a property. Its String form,
// PROP_<n>, is the one canonical textual rendering used for storage and
// hashing.
type PropertyID uint64

func (p PropertyID) String() string {
	return "PROP_" + strconv.FormatUint(uint64(p), 10)
}

// ParsePropertyID normalizes the accepted surface forms of a property
// identifier: a native integer, a bare numeric string, or a PROP_<n> /
// PROP<n> prefixed string. Anything else fails with ErrMalformedPropertyID,
// never a silent coercion. float64 is accepted for identifiers decoded from
// JSON numbers, integral values only.
func ParsePropertyID(v any) (PropertyID, error) {
	switch id := v.(type) {
	case PropertyID:
		return id, nil
	case int:
		return fromInt(int64(id))
	case int32:
		return fromInt(int64(id))
	case int64:
		return fromInt(id)
	case uint:
		return PropertyID(id), nil
	case uint64:
		return PropertyID(id), nil
	case float64:
		if id != float64(int64(id)) {
			return 0, fmt.Errorf("%w: non-integral number %v", ErrMalformedPropertyID, id)
		}
		return fromInt(int64(id))
	case string:
		return parseString(id)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrMalformedPropertyID, v)
	}
}

func fromInt(v int64) (PropertyID, error) {
	n, err := safe.Uint64(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %d", ErrMalformedPropertyID, v)
	}
	return PropertyID(n), nil
}

func parseString(s string) (PropertyID, error) {
	s = strings.TrimSpace(s)
	if m := propertyPattern.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPropertyID, s)
	}
	return PropertyID(n), nil
}

// FormatTime renders a timestamp in the canonical form used for hashing and
// must be applied before a timestamp is persisted, so the stored value
// round-trips to the same rendering.
func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Microsecond).Format(TimeLayout)
}

// NormalizeTime truncates a timestamp to the precision that survives the
// canonical rendering. Blocks persist the normalized value.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// BlockContent is the semantic content of a block that participates in its
// hash. The predecessor hash is deliberately not part of it: content
// tampering and link tampering are detected as two independent checks.
type BlockContent struct {
	PropertyID   string
	OwnerID      int64
	DocumentHash *string
	BlockNumber  uint64
	Timestamp    time.Time
}

// BlockHash derives the deterministic content digest of a block: SHA-256
// over the concatenation of property id, owner id, document hash (empty when
// absent), block number and canonical timestamp, rendered as lowercase hex.
// PropertyID must already be in canonical PROP_<n> form; the audit path
// hashes the stored value verbatim so that a tampered identifier shows up as
// a hash mismatch rather than a parse error.
func BlockHash(c BlockContent) string {
	var sb strings.Builder
	sb.WriteString(c.PropertyID)
	sb.WriteString(strconv.FormatInt(c.OwnerID, 10))
	if c.DocumentHash != nil {
		sb.WriteString(*c.DocumentHash)
	}
	sb.WriteString(strconv.FormatUint(c.BlockNumber, 10))
	sb.WriteString(FormatTime(c.Timestamp))

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// DocumentHash computes the SHA-256 content hash of a supporting document as
// lowercase hex.
func DocumentHash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash document: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
