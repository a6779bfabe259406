package roles

import (
	"context"
	"fmt"
	"sync"
)

// fakeGateway is an in-memory guild hierarchy for exercising the positioner
// and manager without Discord. Index 0 plays the @everyone slot.
type fakeGateway struct {
	mu     sync.Mutex
	order  []string
	names  map[string]string
	colors map[string]int
	nextID int

	createCalls    int
	updateCalls    int
	reorderCalls   int
	hierarchyCalls int

	failSetPosition error
}

func newFakeGateway(order ...string) *fakeGateway {
	return &fakeGateway{
		order:  order,
		names:  make(map[string]string),
		colors: make(map[string]int),
	}
}

func (g *fakeGateway) CreateRole(ctx context.Context, name string, color int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	g.createCalls++
	id := fmt.Sprintf("role-%d", g.nextID)
	g.order = append(g.order, id)
	g.names[id] = name
	g.colors[id] = color
	return id, nil
}

func (g *fakeGateway) UpdateRole(ctx context.Context, roleID, name string, color int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.updateCalls++
	if g.indexOf(roleID) < 0 {
		return ErrRoleNotFound
	}
	g.names[roleID] = name
	g.colors[roleID] = color
	return nil
}

func (g *fakeGateway) DeleteRole(ctx context.Context, roleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeLocked(roleID)
	return nil
}

func (g *fakeGateway) Hierarchy(ctx context.Context) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.hierarchyCalls++
	return append([]string(nil), g.order...), nil
}

func (g *fakeGateway) SetRolePosition(ctx context.Context, roleID string, position int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failSetPosition != nil {
		return g.failSetPosition
	}
	if g.indexOf(roleID) < 0 {
		return ErrRoleNotFound
	}
	g.reorderCalls++
	g.removeLocked(roleID)
	if position > len(g.order) {
		position = len(g.order)
	}
	g.order = append(g.order[:position], append([]string{roleID}, g.order[position:]...)...)
	return nil
}

// removeRole simulates an out-of-band deletion through the Discord UI.
func (g *fakeGateway) removeRole(roleID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeLocked(roleID)
}

func (g *fakeGateway) hierarchy() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]string(nil), g.order...)
}

func (g *fakeGateway) indexOf(roleID string) int {
	for i, id := range g.order {
		if id == roleID {
			return i
		}
	}
	return -1
}

func (g *fakeGateway) removeLocked(roleID string) {
	for i, id := range g.order {
		if id == roleID {
			g.order = append(g.order[:i], g.order[i+1:]...)
			return
		}
	}
}
