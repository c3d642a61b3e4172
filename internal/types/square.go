/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "fmt"

// Square is an index 0..63 into the board, a1 == 0, h8 == 63.
// File = index % 8, Rank = index / 8.
type Square int8

// SqLength is the number of squares on the board.
const SqLength = 64

// SqNone is the sentinel value for "not a square".
const SqNone Square = 64

// named squares used by castling and by tests
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// Direction is a delta applied to a square index via To().
type Direction int8

// the eight ray directions plus the two double pawn-push directions
const (
	North      Direction = 8
	South      Direction = -8
	East       Direction = 1
	West       Direction = -1
	Northeast  Direction = 9
	Northwest  Direction = 7
	Southeast  Direction = -7
	Southwest  Direction = -9
	NorthNorth Direction = 16
	SouthSouth Direction = -16
)

// RookDirs lists the four rook-style directions, BishopDirs the four
// bishop-style directions, and AllDirs both, rook-style first; used
// when scanning rays from the king.
var RookDirs = [4]Direction{North, South, East, West}
var BishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var AllDirs = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// SquareOf builds a square from a file and rank, each in 0..7. Returns
// SqNone if either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int8(r)*8 + int8(f))
}

// MakeSquare parses a square in algebraic notation, e.g. "e4". Returns
// SqNone if s is not exactly two characters or names a square off the board.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}

// IsValid reports whether s is on the board.
func (s Square) IsValid() bool {
	return s >= SqA1 && s <= SqH8
}

// FileOf returns the file (0=a .. 7=h) of the square.
func (s Square) FileOf() File {
	return File(int8(s) & 7)
}

// RankOf returns the rank (0=1st .. 7=8th) of the square.
func (s Square) RankOf() Rank {
	return Rank(int8(s) >> 3)
}

// DiagOf returns the a1-h8 diagonal index: 7 - rank + file.
func (s Square) DiagOf() int {
	return 7 - int(s.RankOf()) + int(s.FileOf())
}

// AntiDiagOf returns the a8-h1 diagonal index: rank + file.
func (s Square) AntiDiagOf() int {
	return int(s.RankOf()) + int(s.FileOf())
}

// FlipRank mirrors the square across the horizontal axis (a1 <-> a8).
func (s Square) FlipRank() Square {
	return s ^ 56
}

// FlipFile mirrors the square across the vertical axis (a1 <-> h1).
func (s Square) FlipFile() Square {
	return s ^ 7
}

// To returns the square reached by moving one step in Direction d from s,
// or SqNone if that step would wrap around a board edge.
func (s Square) To(d Direction) Square {
	t := s + Square(d)
	if t < SqA1 || t > SqH8 {
		return SqNone
	}
	if SquareDistance(s, t) > 2 {
		return SqNone
	}
	return t
}

// String renders the square in algebraic notation, e.g. "e4", or "-" for SqNone.
func (s Square) String() string {
	if s == SqNone || !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.FileOf()), '1'+byte(s.RankOf()))
}
