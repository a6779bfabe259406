package roles

import "context"

// Positioner places custom roles immediately above a configured anchor role
// in the guild hierarchy. The anchor is injected, not discovered, and the
// hierarchy is re-read on every call since it can change under us at any
// time.
type Positioner struct {
	gateway      Gateway
	anchorRoleID string
}

func NewPositioner(gateway Gateway, anchorRoleID string) *Positioner {
	return &Positioner{gateway: gateway, anchorRoleID: anchorRoleID}
}

func (p *Positioner) AnchorRoleID() string { return p.anchorRoleID }

// PlaceAbove moves roleID to the slot directly above the anchor role. When
// the anchor is gone or misconfigured the role lands at position 1, just
// above @everyone. Returns ErrRoleNotFound if roleID itself is not in the
// hierarchy, which callers treat as a stale record.
func (p *Positioner) PlaceAbove(ctx context.Context, roleID string) error {
	order, err := p.gateway.Hierarchy(ctx)
	if err != nil {
		return err
	}

	current := indexOf(order, roleID)
	if current < 0 {
		return ErrRoleNotFound
	}

	// Work out the target on the hierarchy minus the role being placed:
	// the reorder removes it before reinserting, and when the role starts
	// below the anchor that removal shifts the anchor's slot by one.
	rest := make([]string, 0, len(order)-1)
	for _, id := range order {
		if id != roleID {
			rest = append(rest, id)
		}
	}
	target := 1
	if anchor := indexOf(rest, p.anchorRoleID); anchor >= 0 {
		target = anchor + 1
	}
	if current == target {
		return nil
	}
	return p.gateway.SetRolePosition(ctx, roleID, target)
}

func indexOf(order []string, roleID string) int {
	for i, id := range order {
		if id == roleID {
			return i
		}
	}
	return -1
}
