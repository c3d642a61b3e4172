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

// Package types contains the board-representation primitives shared across
// the engine: squares, files, ranks, colors, pieces, bitboards, magic attack
// tables, moves and evaluation values. Most of these would be plain enums in
// another language; Go expresses them as small integer types with methods.
package types

var initialized = false

func init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}

// Global board/search constants.
const (
	// MaxDepth is the maximum search depth/ply the engine will reach.
	MaxDepth = 128

	// MaxMoves is the maximum number of moves a game is expected to have,
	// used to size the position's history stack.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is KB*KB bytes.
	MB uint64 = KB * KB
	// GB is KB*MB bytes.
	GB uint64 = KB * MB

	// GamePhaseMax is the game phase value of the starting position (2
	// knights + 2 bishops + 2 rooks + 1 queen per side). The phase counts
	// down towards 0 as non-pawn material is traded off.
	GamePhaseMax = 24
)
