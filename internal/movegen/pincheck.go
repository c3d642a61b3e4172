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

package movegen

import (
	"github.com/msolway/wyvern/internal/attacks"
	"github.com/msolway/wyvern/internal/position"
	. "github.com/msolway/wyvern/internal/types"
)

// checkInfo is the result of a single per-king ray scan: which squares a
// move may legally land on for the side to move, computed once per call to
// GenerateLegalMoves/GeneratePseudoLegalMoves instead of testing every
// pseudo-legal move with a make/unmake/IsAttacked probe.
type checkInfo struct {
	checkers    Bitboard
	numCheckers int

	// okSquares restricts every non-king move when in single check: a
	// move is only legal if it captures the checker or interposes on the
	// king-to-checker ray. BbAll when not in check.
	okSquares Bitboard

	// pinRestrict[sq], for the piece (if any) standing on sq, is the set
	// of squares that piece may move to without exposing its own king:
	// the line between the king and the pinning slider, including the
	// pinner's square. BbAll for a piece that is not pinned.
	pinRestrict [SqLength]Bitboard
}

// inCheck reports whether the side to move is currently in check.
func (ci *checkInfo) inCheck() bool {
	return ci.numCheckers > 0
}

// doubleCheck reports whether the side to move is in check from two or
// more pieces at once - only king moves can answer this.
func (ci *checkInfo) doubleCheck() bool {
	return ci.numCheckers >= 2
}

// restrict intersects a candidate destination bitboard for the piece on
// fromSq with both the pin restriction for that square and, when in
// single check, the capture-or-block squares.
func (ci *checkInfo) restrict(fromSq Square, moves Bitboard) Bitboard {
	moves &= ci.pinRestrict[fromSq]
	if ci.numCheckers == 1 {
		moves &= ci.okSquares
	}
	return moves
}

// allows reports whether a single from/to candidate survives the same
// restriction as restrict(), for generators that derive fromSq/toSq pairs
// one at a time instead of building a destination bitboard first.
func (ci *checkInfo) allows(fromSq, toSq Square) bool {
	return ci.restrict(fromSq, toSq.Bb()) != BbZero
}

// computeCheckInfo runs the per-king scan for side us: it enumerates
// checkers (sliding, knight and pawn attackers of the king) and, for every
// enemy slider whose ray to the king is blocked by exactly one of our own
// pieces, records that piece as pinned.
//
// hasCheck is Position.HasCheck(), a cheap precomputed hint: when false we
// already know there are no checkers and skip the checker scan entirely.
// Pins are recomputed on every call regardless, since they depend on the
// full board occupancy which changes every move.
func computeCheckInfo(p *position.Position, us Color, hasCheck bool) checkInfo {
	them := us.Flip()
	ksq := p.KingSquare(us)

	ci := checkInfo{okSquares: BbAll}
	for sq := Square(0); sq < SqLength; sq++ {
		ci.pinRestrict[sq] = BbAll
	}

	if hasCheck {
		ci.checkers = attacks.AttacksTo(p, ksq, them)
		ci.numCheckers = ci.checkers.PopCount()
		if ci.numCheckers == 1 {
			checkerSq := ci.checkers.Lsb()
			if p.GetPiece(checkerSq).TypeOf().IsSliding() {
				ci.okSquares = Intermediate(ksq, checkerSq) | checkerSq.Bb()
			} else {
				ci.okSquares = checkerSq.Bb()
			}
		}
	}

	// Pins: any enemy slider whose pseudo (empty-board) attack pattern
	// from the king's square reaches it along a rook or bishop ray is a
	// candidate pinner. If exactly one piece - and it is ours - sits
	// between the king and that slider on the real board, it is pinned.
	occupiedAll := p.OccupiedAll()
	snipers := (GetPseudoAttacks(Rook, ksq) & (p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen))) |
		(GetPseudoAttacks(Bishop, ksq) & (p.PiecesBb(them, Bishop) | p.PiecesBb(them, Queen)))
	for snipers != BbZero {
		sniperSq := snipers.PopLsb()
		between := Intermediate(ksq, sniperSq) & occupiedAll
		if between.PopCount() == 1 && between&p.OccupiedBb(us) == between {
			pinnedSq := between.Lsb()
			ci.pinRestrict[pinnedSq] = Intermediate(ksq, sniperSq) | sniperSq.Bb()
		}
	}

	return ci
}

// enPassantExposesKing is the narrow edge case pin detection above cannot
// see: two pawns side by side on the king's rank, removed from the board
// together by an en-passant capture, can expose the king to a rook or
// queen along that rank even though neither pawn was individually pinned.
func enPassantExposesKing(p *position.Position, us Color, fromSq, capturedSq Square) bool {
	them := us.Flip()
	ksq := p.KingSquare(us)
	if ksq.RankOf() != fromSq.RankOf() {
		return false
	}
	occupied := p.OccupiedAll()
	occupied.PopSquare(fromSq)
	occupied.PopSquare(capturedSq)
	return GetAttacksBb(Rook, ksq, occupied)&(p.PiecesBb(them, Rook)|p.PiecesBb(them, Queen)) != BbZero
}
