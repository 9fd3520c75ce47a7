package neon

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pqwire/pkg/hexutil"
	"github.com/joshuapare/pqwire/pkg/pqmsg"
)

// IDSize is the length of an ID in bytes.
const IDSize = 16

// ID identifies a tenant or a timeline.
type ID [IDSize]byte

// ParseID parses the 32-digit hex form of an ID. Either case is accepted.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != 2*IDSize {
		return id, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidID, s, len(s), 2*IDSize)
	}
	if !hexutil.Decode(id[:], s, IDSize) {
		return ID{}, fmt.Errorf("%w: %q is not hex", ErrInvalidID, s)
	}
	return id, nil
}

// String returns the lowercase hex form.
func (id ID) String() string { return hexutil.EncodeToString(id[:]) }

// IsZero reports whether every byte is zero.
func (id ID) IsZero() bool { return id == ID{} }

// GetID reads 16 raw bytes from msg.
func GetID(msg *pqmsg.Buffer) (ID, error) {
	var id ID
	if err := msg.CopyBytes(id[:]); err != nil {
		return ID{}, fmt.Errorf("id: %w", err)
	}
	return id, nil
}

// SendID appends the 16 raw bytes of id to b.
func SendID(b *pqmsg.Buffer, id ID) { b.SendBytes(id[:]) }

// TenantTimelineID names one timeline of one tenant.
type TenantTimelineID struct {
	Tenant   ID
	Timeline ID
}

// ParseTenantTimelineID parses "<tenant>/<timeline>".
func ParseTenantTimelineID(s string) (TenantTimelineID, error) {
	tenant, timeline, ok := strings.Cut(s, "/")
	if !ok {
		return TenantTimelineID{}, fmt.Errorf("%w: %q lacks '/' separator", ErrInvalidID, s)
	}
	var ttid TenantTimelineID
	var err error
	if ttid.Tenant, err = ParseID(tenant); err != nil {
		return TenantTimelineID{}, fmt.Errorf("tenant: %w", err)
	}
	if ttid.Timeline, err = ParseID(timeline); err != nil {
		return TenantTimelineID{}, fmt.Errorf("timeline: %w", err)
	}
	return ttid, nil
}

func (t TenantTimelineID) String() string {
	return t.Tenant.String() + "/" + t.Timeline.String()
}
