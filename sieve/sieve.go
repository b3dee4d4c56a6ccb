package sieve

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/sievego/cellmask"
	"github.com/hupe1980/sievego/sudoku"
)

// ErrNilConfig is returned when a sieve is constructed without a grid.
var ErrNilConfig = errors.New("sieve: nil config")

// numBuckets is one bucket per possible item weight 0..81.
const numBuckets = cellmask.Cells + 1

// Options contains configuration options for a Sieve.
type Options struct {
	// Logger receives debug events for admissions and seeding passes.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for a Sieve.
var DefaultOptions = Options{
	Logger: nil,
}

// Sieve is an antichain of unavoidable-set items over a fixed solved grid,
// bucketed by item weight. See the package documentation for the model.
type Sieve struct {
	config  *sudoku.Grid
	buckets [numBuckets][]cellmask.Mask
	length  int

	// Inverted index: per cell, the roaring set of item IDs whose mask
	// includes that cell. IDs are monotonically assigned and never reused.
	nextID    uint32
	ids       map[cellmask.Mask]uint32
	byID      map[uint32]cellmask.Mask
	cellIndex [cellmask.Cells]*roaring.Bitmap

	matrix *ReductionMatrix
	logger *slog.Logger

	opts Options
}

// New creates a sieve over the given solved grid. Initial items, if any,
// run through the full admission path of Add.
func New(config *sudoku.Grid, initial []cellmask.Mask, optFns ...func(o *Options)) (*Sieve, error) {
	if config == nil || !config.IsConfig() {
		return nil, ErrNilConfig
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Sieve{
		config: config,
		ids:    make(map[cellmask.Mask]uint32),
		byID:   make(map[uint32]cellmask.Mask),
		matrix: NewReductionMatrix(),
		logger: opts.Logger,
		opts:   opts,
	}
	for cell := range s.cellIndex {
		s.cellIndex[cell] = roaring.New()
	}

	s.Add(initial...)

	return s, nil
}

// Config returns the solved grid the sieve is built against.
func (s *Sieve) Config() *sudoku.Grid { return s.config }

// Len returns the number of stored items. Maintained incrementally, never
// recomputed by summation.
func (s *Sieve) Len() int { return s.length }

// Has reports whether exactly this mask is stored. It is an exact-bucket
// membership test, not a subset test.
func (s *Sieve) Has(mask cellmask.Mask) bool {
	_, ok := s.ids[mask]
	return ok
}

// Items returns all stored items, bucket by ascending weight; within a
// bucket the order is insertion order unless a seeding pass has sorted it.
func (s *Sieve) Items() []cellmask.Mask {
	out := make([]cellmask.Mask, 0, s.length)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	return out
}

// First returns an item from the lowest non-empty weight bucket, or the
// zero mask if the sieve is empty. A cheap smallest-known-constraint probe.
func (s *Sieve) First() cellmask.Mask {
	for _, bucket := range s.buckets {
		if len(bucket) > 0 {
			return bucket[0]
		}
	}
	return cellmask.Mask{}
}

// Matrix exposes the per-cell reduction counts. The returned matrix is
// owned by the sieve; callers must not mutate it.
func (s *Sieve) Matrix() *ReductionMatrix { return s.matrix }

// IsDerivative reports whether mask carries no new information: it is
// empty, or some stored item is a subset of it.
func (s *Sieve) IsDerivative(mask cellmask.Mask) bool {
	if mask.IsEmpty() {
		return true
	}
	weight := mask.Count()
	for w := 0; w <= weight; w++ {
		for _, item := range s.buckets[w] {
			if mask.ContainsAll(item) {
				return true
			}
		}
	}
	return false
}

// Add admits every given mask that is neither a derivative of a stored
// item nor rejected by the admissibility check, and returns how many were
// admitted. Rejection is an expected outcome, not an error.
func (s *Sieve) Add(masks ...cellmask.Mask) int {
	admitted := 0
	for _, mask := range masks {
		if s.IsDerivative(mask) {
			continue
		}
		if !s.admissible(mask) {
			continue
		}
		s.insert(mask)
		admitted++
		if s.logger != nil {
			s.logger.Debug("item admitted", "weight", mask.Count(), "len", s.length)
		}
	}
	return admitted
}

// RawAdd inserts a mask without validation or derivative checking. It is
// meant for pre-validated items (snapshot restores, tests); correctness is
// the caller's responsibility. Empty and duplicate masks are still
// rejected.
func (s *Sieve) RawAdd(mask cellmask.Mask) bool {
	if mask.IsEmpty() || s.Has(mask) {
		return false
	}
	s.insert(mask)
	return true
}

// insert stores mask and keeps length, the cell index and the reduction
// matrix in lock-step.
func (s *Sieve) insert(mask cellmask.Mask) {
	id := s.nextID
	s.nextID++
	s.ids[mask] = id
	s.byID[id] = mask
	for cell, ok := mask.FirstSet(); ok; cell, ok = mask.NextSet(cell + 1) {
		s.cellIndex[cell].Add(id)
	}
	w := mask.Count()
	s.buckets[w] = append(s.buckets[w], mask)
	s.length++
	s.matrix.Add(mask)
}

// remove evicts a stored mask. It panics if the mask is not stored; that is
// a bookkeeping violation, not a recoverable condition.
func (s *Sieve) remove(mask cellmask.Mask) {
	id, ok := s.ids[mask]
	if !ok {
		panic(fmt.Sprintf("sieve: remove of unknown item %#v", mask))
	}
	delete(s.ids, mask)
	delete(s.byID, id)
	for cell, more := mask.FirstSet(); more; cell, more = mask.NextSet(cell + 1) {
		s.cellIndex[cell].Remove(id)
	}
	w := mask.Count()
	bucket := s.buckets[w]
	for i, item := range bucket {
		if item == mask {
			s.buckets[w] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	s.length--
	s.matrix.Remove(mask)
}

// overlappingIDs returns the union of item IDs over the mask's cells.
func (s *Sieve) overlappingIDs(mask cellmask.Mask) *roaring.Bitmap {
	sets := make([]*roaring.Bitmap, 0, mask.Count())
	for cell, ok := mask.FirstSet(); ok; cell, ok = mask.NextSet(cell + 1) {
		sets = append(sets, s.cellIndex[cell])
	}
	if len(sets) == 0 {
		return roaring.New()
	}
	return roaring.FastOr(sets...)
}

// RemoveOverlapping evicts and returns every stored item sharing at least
// one cell with mask. Used when a caller has committed to clues that
// already cover those items.
func (s *Sieve) RemoveOverlapping(mask cellmask.Mask) []cellmask.Mask {
	victims := s.overlappingIDs(mask)
	removed := make([]cellmask.Mask, 0, victims.GetCardinality())
	it := victims.Iterator()
	for it.HasNext() {
		item := s.byID[it.Next()]
		s.remove(item)
		removed = append(removed, item)
	}
	if s.logger != nil && len(removed) > 0 {
		s.logger.Debug("items removed", "count", len(removed), "len", s.length)
	}
	return removed
}

// Satisfies reports whether clueMask intersects every stored item: the
// hitting-set test. A false result means at least one known unavoidable
// set is entirely missing from the clues, which would leave its ambiguity
// intact.
func (s *Sieve) Satisfies(clueMask cellmask.Mask) bool {
	return int(s.overlappingIDs(clueMask).GetCardinality()) == s.length
}

// Compact removes every stored item that is a strict superset of another
// stored item and returns how many were removed. Add keeps the antichain
// only with respect to insertion order; a bulk caller that needs a strict
// antichain afterwards runs Compact once.
func (s *Sieve) Compact() int {
	var victims []cellmask.Mask
	for w := 1; w < numBuckets; w++ {
		for _, item := range s.buckets[w] {
			if s.dominated(item, w) {
				victims = append(victims, item)
			}
		}
	}
	for _, item := range victims {
		s.remove(item)
	}
	return len(victims)
}

// dominated reports whether a strictly smaller stored item is a subset of
// item.
func (s *Sieve) dominated(item cellmask.Mask, weight int) bool {
	for w := 1; w < weight; w++ {
		for _, smaller := range s.buckets[w] {
			if item.ContainsAll(smaller) {
				return true
			}
		}
	}
	return false
}

// Sort orders every bucket ascending by mask value for deterministic
// enumeration. Seed calls this after its final pass; callers driving
// AddFromMask directly invoke it themselves when they need stable order.
func (s *Sieve) Sort() {
	for w := range s.buckets {
		bucket := s.buckets[w]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Less(bucket[j])
		})
	}
}

// String renders each item's cell pattern against the grid for inspection.
func (s *Sieve) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sieve of %d items over %s\n", s.length, s.config)
	for _, item := range s.Items() {
		fmt.Fprintf(&sb, "weight %d:\n", item.Count())
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				cell := cellmask.CellAt(row, col)
				if item.Test(cell) {
					sb.WriteByte('0' + s.config.Digit(cell))
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
