package linear

import (
	"fmt"
	"strings"

	"github.com/scottcagno/freqtable"
)

// cell states for each slot in the Table's backing array
const (
	cellEmpty uint8 = iota
	cellTombstone
	cellOccupied
)

// item is a key value pair holding a key and its occurrence count
type item struct {
	key  string
	freq int
}

// cell represents a single slot in the Table's backing array. A
// tombstone keeps a zero valued item; only the state tag matters
// for deleted cells.
type cell struct {
	state uint8
	item
}

// Table represents a string frequency hashtable implementation using
// open addressing with linear probing
type Table struct {
	cells      []cell
	keys       int  // live entries
	occupied   int  // live entries plus tombstones
	collisions int  // running pairwise collision tally
	rehashing  bool // suppresses the load factor check during a rebuild
}

var _ freqtable.Table = (*Table)(nil)

// NewTable returns a new Table instantiated with the specified size
func NewTable(size int) (*Table, error) {
	if size < 1 {
		return nil, ErrBadTableSize
	}
	return &Table{
		cells: make([]cell, size),
	}, nil
}

// NewDefaultTable returns a new Table instantiated with the default size
func NewDefaultTable() *Table {
	t, _ := NewTable(DefaultTableSize)
	return t
}

// hashIndex folds key into an index for the current capacity using
// horner's rule. Only the first character's value is forced
// non-negative; later terms may wrap the running sum below zero.
func (t *Table) hashIndex(key string) int {
	if len(key) == 0 {
		return 0
	}
	n := len(t.cells)
	h := int(key[0]) - hashDisplacement
	if h < 0 {
		h = -h
	}
	h %= n
	for i := 1; i < len(key); i++ {
		h = (int(key[i]) - hashDisplacement + hashRadix*h) % n
	}
	return h
}

// Hash returns the hash value of key at the current capacity, or -1
// for an empty key. The value changes whenever the table resizes.
func (t *Table) Hash(key string) int {
	if len(key) == 0 {
		return -1
	}
	return t.hashIndex(key)
}

// lookup returns the index of the cell holding key, or -1 if none could
// be found. Tombstones do not stop the scan; a matching key may have
// been placed past one.
func (t *Table) lookup(key string) int {
	if len(key) == 0 {
		return -1
	}
	i := wrap(t.hashIndex(key), len(t.cells))
	for t.cells[i].state != cellEmpty {
		if t.cells[i].state == cellOccupied && t.cells[i].key == key {
			return i
		}
		i = (i + 1) % len(t.cells)
	}
	return -1
}

// countCollisions reports how many live keys other than key share its
// hash value. The scan runs over the whole probe cluster so entries
// displaced past tombstones are still seen.
func (t *Table) countCollisions(key string) int {
	if len(key) == 0 {
		return 0
	}
	var count int
	origin := t.hashIndex(key)
	i := wrap(origin, len(t.cells))
	for t.cells[i].state != cellEmpty {
		if t.cells[i].state == cellOccupied &&
			t.cells[i].key != key &&
			t.hashIndex(t.cells[i].key) == origin {
			count++
		}
		i = (i + 1) % len(t.cells)
	}
	return count
}

// Insert adds one occurrence of key to the table. A key already present
// has its count bumped in place; a new key claims the first empty or
// deleted slot on its probe path. Empty keys are ignored.
func (t *Table) Insert(key string) {
	if len(key) == 0 {
		return
	}
	if i := t.lookup(key); i != -1 {
		t.cells[i].freq++
		return
	}
	// count collisions before placement so the new key is not
	// matched against itself
	newColl := t.countCollisions(key)
	i := wrap(t.hashIndex(key), len(t.cells))
	for t.cells[i].state == cellOccupied {
		i = (i + 1) % len(t.cells)
	}
	reused := t.cells[i].state == cellTombstone
	t.cells[i] = cell{state: cellOccupied, item: item{key: key, freq: 1}}
	t.keys++
	if !reused {
		// a reclaimed tombstone is already counted as occupied
		t.occupied++
	}
	t.collisions += newColl
	if !t.rehashing && t.loadFactor() > MaxLoadFactor {
		t.rehash()
	}
}

// Remove takes one occurrence of key out of the table. Removing the
// last occurrence leaves a tombstone in the key's slot. It returns the
// removed key, or false if key was not present.
func (t *Table) Remove(key string) (string, bool) {
	i := t.lookup(key)
	if i == -1 {
		return "", false
	}
	if t.cells[i].freq > 1 {
		t.cells[i].freq--
		return t.cells[i].key, true
	}
	// last occurrence; the slot becomes a tombstone and the key's
	// current collisions come off the running tally
	coll := t.countCollisions(key)
	removed := t.cells[i].key
	t.cells[i] = cell{state: cellTombstone}
	t.keys--
	t.collisions -= coll
	return removed, true
}

// rehash grows the backing array to the first prime no less than twice
// the old capacity plus one, then rebuilds every live entry through the
// normal insert path, one insert per unit of frequency, so collision
// counts are recomputed for the new capacity instead of carried over
func (t *Table) rehash() {
	old := t.cells
	t.cells = make([]cell, nextPrime(2*len(old)+1))
	t.keys, t.occupied, t.collisions = 0, 0, 0
	t.rehashing = true
	for i := range old {
		if old[i].state != cellOccupied {
			continue
		}
		for n := old[i].freq; n > 0; n-- {
			t.Insert(old[i].key)
		}
	}
	t.rehashing = false
}

// Contains reports whether key is currently in the table
func (t *Table) Contains(key string) bool {
	return t.lookup(key) != -1
}

// Frequency returns the stored occurrence count for key, or 0 if key
// is not present
func (t *Table) Frequency(key string) int {
	i := t.lookup(key)
	if i == -1 {
		return 0
	}
	return t.cells[i].freq
}

// Len returns the number of distinct keys currently in the Table
func (t *Table) Len() int {
	return t.keys
}

// Collisions returns the running tally of pairwise hash collisions
// between distinct live keys
func (t *Table) Collisions() int {
	return t.collisions
}

// Capacity returns the current number of slots in the backing array
func (t *Table) Capacity() int {
	return len(t.cells)
}

// PercentFull returns the current load factor of the Table
func (t *Table) PercentFull() float64 {
	return t.loadFactor()
}

func (t *Table) loadFactor() float64 {
	return float64(t.occupied) / float64(len(t.cells))
}

// Stats returns a snapshot of the table counters
func (t *Table) Stats() freqtable.Stats {
	return freqtable.Stats{
		Keys:       t.keys,
		Occupied:   t.occupied,
		Capacity:   len(t.cells),
		Collisions: t.collisions,
		LoadFactor: t.loadFactor(),
	}
}

// Iterator is an iterator function type
type Iterator func(key string, freq int) bool

// Range takes an Iterator and ranges the live entries of the Table in
// array order for as long as the iterator function continues to return
// true. Range is not safe to perform an insert or remove operation
// while ranging!
func (t *Table) Range(it Iterator) {
	for i := range t.cells {
		if t.cells[i].state != cellOccupied {
			continue
		}
		if !it(t.cells[i].key, t.cells[i].freq) {
			return
		}
	}
}

// String renders every slot in array order: ** for an empty slot,
// #DEL# for a tombstone and [key, freq] for a live entry
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table: ")
	for i := range t.cells {
		switch t.cells[i].state {
		case cellEmpty:
			sb.WriteString("** ")
		case cellTombstone:
			sb.WriteString(tombstoneMarker + " ")
		default:
			fmt.Fprintf(&sb, "[%s, %d] ", t.cells[i].key, t.cells[i].freq)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
