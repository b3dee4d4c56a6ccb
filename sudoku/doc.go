// Package sudoku provides the solved-grid and partial-board model the sieve
// is built against: a Grid is an immutable, fully solved 81-cell
// configuration, a Board is a partial puzzle carrying per-cell candidate
// tiles, and the solver enumerates completions of a Board with an early-exit
// callback.
//
// Cells are indexed 0..80 row-major: row = cell/9, col = cell%9,
// region = (row/3)*3 + col/3.
package sudoku
