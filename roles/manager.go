package roles

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Manager orchestrates custom role operations against the store, the
// positioner and the Discord gateway. Operations for the same user are
// serialized through a keyed lock table so two concurrent commands cannot
// both pass the duplicate check; different users never contend.
type Manager struct {
	store      Store
	gateway    Gateway
	positioner *Positioner
	log        *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store Store, gateway Gateway, positioner *Positioner, log *logrus.Logger) *Manager {
	return &Manager{
		store:      store,
		gateway:    gateway,
		positioner: positioner,
		log:        log,
		locks:      make(map[string]*sync.Mutex),
	}
}

// CreateResult carries the created record plus an optional non-fatal
// positioning failure. A misplaced role is still usable for display and
// mention, so positioning problems do not fail creation.
type CreateResult struct {
	Record  Record
	Warning error
}

// Create provisions a new custom role for userID, places it above the
// anchor and persists the record. Input is validated before any Discord
// call. Returns ErrDuplicateRole if the user already owns one.
func (m *Manager) Create(ctx context.Context, userID, name, colorHex string) (CreateResult, error) {
	name, err := ValidateRoleName(name)
	if err != nil {
		return CreateResult{}, err
	}
	colorValue, normalized, err := ParseHexColor(colorHex)
	if err != nil {
		return CreateResult{}, err
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := m.store.Get(ctx, userID); err == nil {
		return CreateResult{}, ErrDuplicateRole
	} else if !errors.Is(err, ErrNotFound) {
		return CreateResult{}, err
	}

	roleID, err := m.gateway.CreateRole(ctx, name, colorValue)
	if err != nil {
		return CreateResult{}, err
	}

	var warning error
	if err := m.positioner.PlaceAbove(ctx, roleID); err != nil {
		warning = err
		m.log.WithFields(logrus.Fields{
			"user_id": userID,
			"role_id": roleID,
		}).WithError(err).Warn("custom role created but not positioned")
	}

	now := time.Now().UTC()
	rec := Record{
		UserID:    userID,
		RoleID:    roleID,
		Name:      name,
		Color:     normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Put(ctx, rec); err != nil {
		m.logDivergence(userID, roleID, err)
		return CreateResult{}, &StorageError{Op: "create", Partial: true, Err: err}
	}
	return CreateResult{Record: rec, Warning: warning}, nil
}

// Update changes the name and/or color of an existing custom role. Nil
// means "keep the current value". The role's position is left alone.
func (m *Manager) Update(ctx context.Context, userID string, name, color *string) (Record, error) {
	// Validate supplied fields before touching Discord at all.
	var newName, newColor string
	var err error
	if name != nil {
		if newName, err = ValidateRoleName(*name); err != nil {
			return Record{}, err
		}
	}
	if color != nil {
		if _, newColor, err = ParseHexColor(*color); err != nil {
			return Record{}, err
		}
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := m.getFresh(ctx, userID)
	if err != nil {
		return Record{}, err
	}
	if name == nil {
		newName = rec.Name
	}
	if color == nil {
		newColor = rec.Color
	}
	colorValue, _, err := ParseHexColor(newColor)
	if err != nil {
		return Record{}, err
	}

	if err := m.gateway.UpdateRole(ctx, rec.RoleID, newName, colorValue); err != nil {
		return Record{}, err
	}

	rec.Name = newName
	rec.Color = newColor
	rec.UpdatedAt = time.Now().UTC()
	if err := m.store.Put(ctx, rec); err != nil {
		m.logDivergence(userID, rec.RoleID, err)
		return Record{}, &StorageError{Op: "update", Partial: true, Err: err}
	}
	return rec, nil
}

// View returns the user's current record, healing a stale one first.
func (m *Manager) View(ctx context.Context, userID string) (Record, error) {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return m.getFresh(ctx, userID)
}

// Delete removes the platform role and the stored record. A role already
// deleted out-of-band counts as success; the end state is the same.
func (m *Manager) Delete(ctx context.Context, userID string) error {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := m.store.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := m.gateway.DeleteRole(ctx, rec.RoleID); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, userID); err != nil {
		m.logDivergence(userID, rec.RoleID, err)
		return &StorageError{Op: "delete", Partial: true, Err: err}
	}
	return nil
}

// Reconcile drops the user's record if its role no longer exists in the
// live hierarchy. Reports whether a stale record was removed. Having no
// record at all is a no-op, not an error.
func (m *Manager) Reconcile(ctx context.Context, userID string) (bool, error) {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := m.store.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	order, err := m.gateway.Hierarchy(ctx)
	if err != nil {
		return false, err
	}
	return m.reconcileRecord(ctx, rec, order)
}

// ReconcileAll sweeps every record and removes the stale ones, checking all
// of them against one hierarchy snapshot. Used by the admin cleanup command.
func (m *Manager) ReconcileAll(ctx context.Context) (int, error) {
	records, err := m.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	order, err := m.gateway.Hierarchy(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, rec := range records {
		if indexOf(order, rec.RoleID) >= 0 {
			continue
		}
		lock := m.userLock(rec.UserID)
		lock.Lock()
		stale, err := m.reconcileRecord(ctx, rec, order)
		lock.Unlock()
		if err != nil {
			return removed, err
		}
		if stale {
			removed++
		}
	}
	return removed, nil
}

// Stats summarizes hierarchy state for the admin roleinfo command.
type Stats struct {
	ActiveRecords  int
	HierarchySize  int
	AnchorRoleID   string
	AnchorPosition int // -1 when the anchor is missing
}

func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	records, err := m.store.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	order, err := m.gateway.Hierarchy(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		ActiveRecords:  len(records),
		HierarchySize:  len(order),
		AnchorRoleID:   m.positioner.AnchorRoleID(),
		AnchorPosition: indexOf(order, m.positioner.AnchorRoleID()),
	}, nil
}

// getFresh reads the record after dropping it if it went stale. Callers
// must hold the user lock.
func (m *Manager) getFresh(ctx context.Context, userID string) (Record, error) {
	rec, err := m.store.Get(ctx, userID)
	if err != nil {
		return Record{}, err
	}
	order, err := m.gateway.Hierarchy(ctx)
	if err != nil {
		return Record{}, err
	}
	stale, err := m.reconcileRecord(ctx, rec, order)
	if err != nil {
		return Record{}, err
	}
	if stale {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// reconcileRecord drops rec if its role is absent from the given hierarchy
// snapshot. Callers must hold the user lock.
func (m *Manager) reconcileRecord(ctx context.Context, rec Record, order []string) (bool, error) {
	if indexOf(order, rec.RoleID) >= 0 {
		return false, nil
	}
	if err := m.store.Delete(ctx, rec.UserID); err != nil {
		return false, err
	}
	m.log.WithFields(logrus.Fields{
		"user_id": rec.UserID,
		"role_id": rec.RoleID,
	}).Info("removed stale custom role record")
	return true, nil
}

func (m *Manager) userLock(userID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}

// logDivergence marks the one state reconciliation exists to heal: the
// guild was mutated but the record write failed.
func (m *Manager) logDivergence(userID, roleID string, err error) {
	m.log.WithFields(logrus.Fields{
		"user_id": userID,
		"role_id": roleID,
	}).WithError(err).Error("discord mutation succeeded but record write failed; store and guild have diverged")
}
