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

import (
	"fmt"
	"strings"

	"github.com/msolway/wyvern/internal/assert"
)

// MoveType classifies a move: a plain move or capture, a pawn promotion,
// an en-passant capture, or a castle. Stored directly in the packed move
// rather than derived, since castling and en-passant carry no other
// distinguishing bit (e.g. a castle has no captured piece to look at).
type MoveType uint8

// MoveType constants.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

var moveTypeToString = [...]string{"n", "p", "e", "c"}

// String returns a short label for the move type.
func (t MoveType) String() string {
	return moveTypeToString[t]
}

// IsValid reports whether t is one of the four recognized move types.
func (t MoveType) IsValid() bool {
	return t <= Castling
}

// Move packs a chess move into a 64-bit value. The low 16 bits hold the
// bare move (to-square, from-square, promotion piece type, move type) -
// exactly what MoveOf() and move identity comparisons (PV move, killer
// moves, TT probes) operate on. Bits 16-31 hold an optional
// search-ordering value, following the packed-move-plus-sort-value
// convention used throughout the move generator and search. Bits 32-47
// hold annotation fields the move generator fills in once it has the
// position in hand: the moving piece, the piece occupying the
// destination after the move (equal to the moving piece except on
// promotion), the captured piece (PieceNone if none), a castle index
// identifying which rook/king pair castled, and a gives-check flag.
// These annotation bits are deliberately excluded from MoveOf() - two
// moves with the same to/from/promotion/type are the same move for
// ordering and hashing purposes regardless of which position they were
// generated on.
//
//  BITMAP 64-bit
//  |-annotation---------------------|-value --------------------------|-Move -------------------------|
//  4 4 4 4 4 4 4 4 3 3 3 3 3 3 3 3  | 3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1  | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2  | 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6  | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  ---------------------------------|-----------------------------------------------------------------|
//                                   |                                  |                     1 1 1 1 1 1  to
//                                   |                                  |         1 1 1 1 1 1              from
//                                   |                                  |     1 1                          promotion piece type (pt-Knight, 0-3)
//                                   |                                  | 1 1                              move type
//                                   |  1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 |                                  move sort value
//  1                                |                                  |                                  gives check
//    1 1 1                          |                                  |                                  castle index
//          1 1 1 1                  |                                  |                                  captured piece
//                  1 1 1 1          |                                  |                                  piece after move
//                          1 1 1 1  |                                  |                                  moving piece
type Move uint64

// MoveNone is the all-zero, invalid move.
const MoveNone Move = 0

const (
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14
	valueShift    uint = 16

	movingPieceShift   uint = 32
	afterPieceShift    uint = 36
	capturedPieceShift uint = 40
	castleIndexShift   uint = 44
	givesCheckShift    uint = 47

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
	moveMask     Move = 0xFFFF
	valueMask    Move = 0xFFFF << valueShift

	pieceNibble       Move = 0xF
	movingPieceMask   Move = pieceNibble << movingPieceShift
	afterPieceMask    Move = pieceNibble << afterPieceShift
	capturedPieceMask Move = pieceNibble << capturedPieceShift
	castleIndexMask   Move = 0x7 << castleIndexShift
	givesCheckMask    Move = 1 << givesCheckShift
)

// CastleIndex identifies which castling move was played, following the
// {None, WK, WQ, BK, BQ} convention: White/Black king-side or queen-side.
type CastleIndex uint8

// CastleIndex constants.
const (
	CastleNone CastleIndex = iota
	CastleWK
	CastleWQ
	CastleBK
	CastleBQ
)

var castleIndexToString = [...]string{"-", "WK", "WQ", "BK", "BQ"}

// String returns a short label for the castle index.
func (c CastleIndex) String() string {
	if int(c) >= len(castleIndexToString) {
		return "-"
	}
	return castleIndexToString[c]
}

// CreateMove returns an encoded Move with no sort value. promType is only
// meaningful when t is Promotion; it is clamped to Knight otherwise since
// the promotion-type field only stores 2 bits (Knight..Queen).
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// CreateMoveValue returns an encoded Move with a move-generator sort value
// embedded in the high bits.
func CreateMoveValue(from, to Square, t MoveType, promType PieceType, value Value) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(value-ValueNA)<<valueShift |
		Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// MoveType returns the move's classification.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece type promoted to. Only meaningful when
// MoveType() == Promotion; callers must not rely on it otherwise, since
// non-promotion moves encode Knight in this field by construction.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.MoveType() == Promotion
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.MoveType() == EnPassant
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips any embedded sort value, leaving the bare encoded move.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value embedded in the move's high bits.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue embeds a search-ordering value into the move's high bits.
// MoveNone never carries a value.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "invalid move sort value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&^valueMask | Move(v-ValueNA)<<valueShift
	return *m
}

// IsValid reports whether m names valid squares, a valid promotion type,
// a valid move type, and either no sort value or a valid one. MoveNone is
// never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

// WithPieces annotates m with the moving piece, the piece occupying the
// destination square after the move (the promoted piece on a promotion,
// otherwise identical to moving), and the captured piece (PieceNone if the
// move captures nothing). Called by the move generator once it knows
// which pieces are involved; it leaves the bare move and any embedded
// sort value untouched.
func (m Move) WithPieces(moving, afterMove, captured Piece) Move {
	return m&^(movingPieceMask|afterPieceMask|capturedPieceMask) |
		Move(moving&0xF)<<movingPieceShift |
		Move(afterMove&0xF)<<afterPieceShift |
		Move(captured&0xF)<<capturedPieceShift
}

// WithCastleIndex annotates m with which castling move it is. Only
// meaningful when MoveType() == Castling.
func (m Move) WithCastleIndex(c CastleIndex) Move {
	return m&^castleIndexMask | Move(c&0x7)<<castleIndexShift
}

// WithGivesCheck sets or clears the gives-check annotation.
func (m Move) WithGivesCheck(v bool) Move {
	if v {
		return m | givesCheckMask
	}
	return m &^ givesCheckMask
}

// MovingPiece returns the piece that was standing on From() before the
// move, as recorded by WithPieces. Zero (PieceNone) until annotated.
func (m Move) MovingPiece() Piece {
	return Piece((m & movingPieceMask) >> movingPieceShift)
}

// PieceAfterMove returns the piece occupying To() after the move -
// identical to MovingPiece() except on a promotion, where it is the
// promoted piece.
func (m Move) PieceAfterMove() Piece {
	return Piece((m & afterPieceMask) >> afterPieceShift)
}

// CapturedPiece returns the piece captured by the move, or PieceNone if
// the move captures nothing.
func (m Move) CapturedPiece() Piece {
	return Piece((m & capturedPieceMask) >> capturedPieceShift)
}

// IsCapture reports whether the move carries a captured-piece annotation.
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PieceNone
}

// CastleIndex returns which castling move this is. Only meaningful when
// MoveType() == Castling.
func (m Move) CastleIndex() CastleIndex {
	return CastleIndex((m & castleIndexMask) >> castleIndexShift)
}

// GivesCheck reports whether the move has been annotated as giving check
// to the opponent. Set by the move generator via WithGivesCheck.
func (m Move) GivesCheck() bool {
	return m&givesCheckMask != 0
}

// StringUci renders the move the way UCI expects it on the wire, e.g.
// "e2e4" or "a7a8Q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(m.PromotionType().Char())
	}
	return os.String()
}

// String renders a move with full diagnostic detail.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s  value:%-6d  chk:%t  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m.ValueOf(), m.GivesCheck(), uint64(m))
}

// StringBits renders a move's field layout for debugging, e.g.
// "Move { From[001100](e2) To[011100](e4) Prom[11](N) mType[00](n) value[...](0) (796)}".
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Prom[%-0.2b](%s) mType[%-0.2b](%s) value[%-0.16b](%d) captured[%s] chk[%t] (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PromotionType(), m.PromotionType().Char(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(), m.ValueOf(),
		m.CapturedPiece().String(),
		m.GivesCheck(),
		uint64(m))
}
