// SPDX-License-Identifier: MIT

package matrix

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// borrowID identifies one live mutable handle in a borrowTable.
// rootID is the owner itself and is never released.
type borrowID uint64

const rootID borrowID = 0

// borrowEntry records one mutable handle: the physical rectangle it covers,
// the handle it was carved from and how many of its own sub-handles are live.
// Diagonal handles record their exact cells, so disjoint diagonals coexist.
type borrowEntry struct {
	parent   borrowID
	area     region
	children int
}

// borrowTable is the runtime exclusivity registry of one owned buffer.
//
// Rules:
//   - A new mutable handle may be carved from parent only if its area overlaps
//     no live entry other than parent's ancestors (including parent itself).
//   - An access (read or write) through handle h touching area a fails when a
//     overlaps a live entry that is not h or one of h's ancestors. In
//     particular a handle with live children is frozen on the children's cells.
//   - A handle may be released only when it has no live children.
//
// The table is guarded by a mutex so handles may be moved across goroutines;
// element data itself is not synchronised.
type borrowTable struct {
	mu   sync.Mutex
	next borrowID
	live map[borrowID]*borrowEntry
	log  *log.Logger
}

func newBorrowTable(logger *log.Logger) *borrowTable {
	return &borrowTable{
		next: rootID + 1,
		live: map[borrowID]*borrowEntry{rootID: {parent: rootID}},
		log:  logger,
	}
}

// acquire registers area as a new child of parent.
func (t *borrowTable) acquire(parent borrowID, area region) (borrowID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkLocked(parent, area); err != nil {
		return 0, err
	}
	id := t.next
	t.next++
	t.live[id] = &borrowEntry{parent: parent, area: area}
	t.live[parent].children++

	return id, nil
}

// acquireAll registers every area as a child of parent, atomically: either
// all succeed or none is registered. Areas must be pairwise disjoint.
func (t *borrowTable) acquireAll(parent borrowID, areas []region) ([]borrowID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, a := range areas {
		if err := t.checkLocked(parent, a); err != nil {
			return nil, err
		}
	}
	ids := make([]borrowID, len(areas))
	for k, a := range areas {
		ids[k] = t.next
		t.next++
		t.live[ids[k]] = &borrowEntry{parent: parent, area: a}
	}
	t.live[parent].children += len(areas)

	return ids, nil
}

// access validates a read or write through id touching area.
func (t *borrowTable) access(id borrowID, area region) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.checkLocked(id, area)
}

// release drops id. The root is never released.
func (t *borrowTable) release(id borrowID) error {
	if t == nil {
		return ErrNilMatrix
	}
	if id == rootID {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.live[id]
	if !ok {
		return ErrReleased
	}
	if e.children > 0 {
		return ErrBorrowed
	}
	delete(t.live, id)
	t.live[e.parent].children--

	return nil
}

// alive reports whether id is still registered.
func (t *borrowTable) alive(id borrowID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.live[id]

	return ok
}

// checkLocked implements the access rule; t.mu must be held.
func (t *borrowTable) checkLocked(id borrowID, area region) error {
	if _, ok := t.live[id]; !ok {
		return ErrReleased
	}
	if len(t.live) == 1 || area.empty() {
		return nil // only the owner is live
	}
	for oid, e := range t.live {
		if oid == rootID || !e.area.overlaps(area) {
			continue
		}
		if t.ancestorOrSelf(oid, id) {
			continue
		}
		t.log.WithFields(log.Fields{
			"handle": id,
			"holder": oid,
			"area":   area,
		}).Debug("matrix: borrow rejected")

		return ErrAliasing
	}

	return nil
}

// ancestorOrSelf reports whether anc is id or lies on id's parent chain.
func (t *borrowTable) ancestorOrSelf(anc, id borrowID) bool {
	for cur := id; ; {
		if cur == anc {
			return true
		}
		if cur == rootID {
			return false
		}
		cur = t.live[cur].parent
	}
}
