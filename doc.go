// Package sievego discovers and maintains minimal families of unavoidable
// sets for fully solved Sudoku grids, and uses them to decide whether a
// candidate clue-set is guaranteed to yield a unique solution.
//
// An unavoidable set is a minimal set of cells whose simultaneous removal
// from a solved grid leaves more than one completion; restoring any single
// cell of the set makes the completion unique again. A clue mask that
// intersects every known unavoidable set is, with respect to the current
// sieve, safe to build a uniquely solvable puzzle on.
//
// # Quick Start
//
//	s, err := sievego.New("218574639573896124469123578721459386354681792986237415147962853695318247832745961")
//	if err != nil {
//	    panic(err)
//	}
//	s.Seed(2, nil) // harvest the structural families up to digit pairs
//
//	clues := cellmask.All // start from the full grid and carve away
//	if s.Satisfies(clues) {
//	    // every known unavoidable set is hit by at least one clue
//	}
//
// Persist a seeded sieve and restore it later:
//
//	store, _ := blobstore.NewLocalStore("./data")
//	_ = s.Save(ctx, store, "mygrid.sieve")
//	s2, _ := sievego.Load(ctx, store, "mygrid.sieve")
//
// # Packages
//
//   - cellmask: fixed-width 81-bit masks and grid bit geometry
//   - sudoku: solved grids, partial boards and the solution search
//   - sieve: the core store, validator, antichain and seeding engine
//   - persistence: binary snapshot format (CRC32, LZ4/ZSTD payloads)
//   - blobstore: local, in-memory, S3 (+DynamoDB catalog) and MinIO storage
//   - resource: worker and search-rate bounds for seeding runs
//   - generator: concurrent multi-grid seeding and snapshot publishing
package sievego
