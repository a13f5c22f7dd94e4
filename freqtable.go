package freqtable

// Table is an interface for this package
type Table interface {
	Insert(key string)
	Remove(key string) (string, bool)
	Contains(key string) bool
	Len() int
	Frequency(key string) int
	Collisions() int
	Hash(key string) int
	String() string
	Stats() Stats
}

// Stats is a point in time snapshot of a table's counters
type Stats struct {
	Keys       int     // distinct live keys
	Occupied   int     // live keys plus tombstones
	Capacity   int     // total slots in the backing array
	Collisions int     // running pairwise collision tally
	LoadFactor float64 // Occupied divided by Capacity
}
