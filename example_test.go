package sievego_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/sievego"
	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/cellmask"
)

const grid = "218574639573896124469123578721459386354681792986237415147962853695318247832745961"

// Example_seed demonstrates seeding a sieve from the structural families of
// a solved grid.
func Example_seed() {
	s, err := sievego.New(grid)
	if err != nil {
		log.Fatal(err)
	}

	// Harvest unavoidable sets from all 1- and 2-digit families.
	s.Seed(2, nil)

	fmt.Println(s.Len(), s.First().Count())
	// Output: 56 4
}

// Example_satisfies demonstrates checking a clue set against the sieve.
func Example_satisfies() {
	s, err := sievego.New(grid)
	if err != nil {
		log.Fatal(err)
	}
	s.Seed(2, nil)

	// A puzzle keeping every cell except the ones of the lightest
	// unavoidable set cannot have a unique solution.
	clues := s.First().Complement()
	fmt.Println(s.Satisfies(clues))
	fmt.Println(s.Satisfies(cellmask.All))
	// Output:
	// false
	// true
}

// Example_saveLoad demonstrates snapshot persistence through a blob store.
func Example_saveLoad() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	s, err := sievego.New(grid)
	if err != nil {
		log.Fatal(err)
	}
	s.Seed(2, nil)

	if err := s.Save(ctx, store, "example.sieve"); err != nil {
		log.Fatal(err)
	}

	loaded, err := sievego.Load(ctx, store, "example.sieve")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(loaded.Len())
	// Output: 56
}
