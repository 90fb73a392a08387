package metadata

import "time"

/*
ErrorCause is a closed, canonical classification used exclusively for
observability (logging, reporting, test assertions).

Rules:
  - ErrorCause is for observability only.
  - It must never be used to derive control-flow decisions. Every
    operation in this engine maps degenerate input to empty output
    unconditionally (spec §7); ErrorCause only records *why*.
  - ErrorCause MUST NOT influence control flow.
  - Pipeline packages (cleaner, mainlocator, siblings, children) MAY map
    their local conditions to ErrorCause, but MUST NOT invent new
    meanings.

If a condition does not clearly match a defined cause, CauseUnknown
MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

The condition does not map cleanly to any known category. Safe
fallback.

# CauseEmptyInput

Input was empty or tokenized to no elements at all (spec §7,
EmptyInput). All four operations return empty output.

# CauseUnparseable

The tokenizer could not make sense of the input at all (spec §4.1
Failure clause: non-text binary). Treated the same as EmptyInput by
every caller — an empty document is returned, never a panic.

# CauseNoMainFound

The Main Locator fell through every selection tier in §4.3 and
returned the cleaned body. Not itself an error (spec §7): recorded so
the fallback path is observable.

# CauseNoSiblingsFound

No sibling-group candidate survived Phase 4 selection (spec §7,
NoSiblingsFound). Siblings returns an empty list; Children returns an
empty string.
*/
const (
	CauseUnknown ErrorCause = iota
	CauseEmptyInput
	CauseUnparseable
	CauseNoMainFound
	CauseNoSiblingsFound
)

// ErrorRecord is one observed, classified condition.
type ErrorRecord struct {
	PackageName string
	Operation   string
	Cause       ErrorCause
	Details     string
	ObservedAt  time.Time
	Attrs       []Attribute
}

// Attribute is a primitive key/value pair attached to an ErrorRecord for
// additional context. Values are always primitives, never objects with
// behavior.
type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrOperation  AttributeKey = "operation"
	AttrField      AttributeKey = "field"
	AttrMessage    AttributeKey = "message"
	AttrPatternLen AttributeKey = "pattern_len"
	AttrItemCount  AttributeKey = "item_count"
	AttrHost       AttributeKey = "host"
)
