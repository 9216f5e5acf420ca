package chess

import "strings"

// Move encodes a chess move in a 32-bit value: source and destination
// square, the piece moved, any piece captured, any promotion piece, and a
// small flag field for the special move types that need extra bookkeeping
// during Do/Undo. Grounded on the teacher's move.go bitfield layout, with an
// added DoublePush flag and Chess960-compatible castling encoding.
type Move uint32

const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 3 bits
)

// MoveFlag distinguishes the special move types that Do/Undo must handle
// beyond a plain piece relocation or capture.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagCastle
	FlagEnPassant
	FlagDoublePush
	// Promotion is indicated by a non-zero PromotionPiece and does not need
	// its own flag value.
)

// MoveTypes is a bitset describing the kinds a move belongs to; see
// Move.Types.
type MoveTypes uint8

const (
	MoveQuiet MoveTypes = 1 << iota
	MoveCapture
	MoveEnPassant
	MoveCastle
	MovePromotion
	MoveDoublePush

	MoveAll MoveTypes = MoveQuiet | MoveCapture | MoveEnPassant | MoveCastle | MovePromotion | MoveDoublePush
)

// Types classifies a concrete move into the MoveTypes bits it satisfies. A
// capturing promotion sets both MoveCapture and MovePromotion; a double push
// sets both MoveQuiet and MoveDoublePush.
func (m Move) Types() MoveTypes {
	var t MoveTypes
	switch m.Flags() {
	case FlagCastle:
		t |= MoveCastle
	case FlagEnPassant:
		t |= MoveEnPassant | MoveCapture
	case FlagDoublePush:
		t |= MoveDoublePush
	}
	if m.PromotionPiece() != NoPiece {
		t |= MovePromotion
	}
	if m.CapturedPiece() != NoPiece {
		t |= MoveCapture
	}
	if t&(MoveCapture|MoveEnPassant|MoveCastle|MovePromotion) == 0 {
		t |= MoveQuiet
	}
	return t
}

// NewMove constructs a Move value from its components. For castling in a
// Chess960-aware position, to must be the rook's origin square rather than
// the king's final square; CastleDestinations resolves the actual
// destinations.
func NewMove(from, to Square, piece, captured, promotion Piece, flag MoveFlag) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x7) << moveFlagShift)
	return Move(m)
}

// NullMove is the sentinel "no move", used by null-move pruning and as a
// zero value for uninitialized Move fields.
const NullMove Move = 0

// IsNull reports whether m is the null move (from == to == a1, no piece).
func (m Move) IsNull() bool { return m == NullMove }

// From returns the source square of the move (for castling, the king's
// origin square).
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move. For a Chess960-encoded
// castling move this is the rook's origin square, not the king's landing
// square; use CastleDestinations to resolve the actual squares.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the piece captured, or NoPiece.
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType returns the colorless promotion type, or PieceTypeNone.
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flags returns the move's special-case flag.
func (m Move) Flags() MoveFlag { return MoveFlag((uint32(m) >> moveFlagShift) & 0x7) }

// IsCapture reports whether the move captures a piece, including en passant.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece || m.Flags() == FlagEnPassant }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags() == FlagEnPassant }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.Flags() == FlagCastle }

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool { return m.Flags() == FlagDoublePush }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// CastleSide returns which side of the board a castling move castles
// toward, based on the encoded rook-origin square relative to the king.
func (m Move) CastleSide() CastlingSide {
	if m.To() > m.From() {
		return KingSide
	}
	return QueenSide
}

// CastleDestinations resolves the actual king and rook landing squares for a
// castling move, independent of whether the position is standard or
// Chess960 (the landing squares are fixed in both).
func (m Move) CastleDestinations() (kingTo, rookTo Square) {
	side := sideOf(m.MovedPiece())
	return castlingDestinationSquares(side, m.CastleSide())
}

// UCI renders the move in long algebraic coordinate form, e.g. "e2e4",
// "e7e8q". A castling move renders as king-to-rook, e.g. "e1h1": m.To()
// already holds the rook's origin square as encoded, so it is emitted
// unchanged rather than translated to the king's landing square.
func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	from := m.From()
	to := m.To()
	str := from.String() + to.String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		str += strings.ToLower(string(promo.PieceLetter()))
	}
	return str
}

// String renders the move via UCI, matching the teacher's default Move
// stringer.
func (m Move) String() string { return m.UCI() }

// GivesCheck reports whether m, assumed pseudo-legal for the side to move,
// would leave the opponent's king in check. It computes the resulting
// attack picture directly from local copies of the relevant bitboards
// without mutating pos, so it can be used to classify moves (e.g. for the
// check-suffix in notation, or a checks-only move filter) ahead of actually
// playing them. Grounded on the teacher's Board.GivesCheck.
func (pos *Position) GivesCheck(m Move) bool {
	us := pos.sideToMove
	them := us.Other()

	kingBB := pos.kings[them]
	if kingBB == 0 {
		return false
	}
	ksq := kingBB.LSB()

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()
	captured := m.CapturedPiece()

	fromBB := SquareMask(from)
	toBB := SquareMask(to)

	pawnsUs := pos.pawns[us]
	knightsUs := pos.knights[us]
	bishopsUs := pos.bishops[us]
	rooksUs := pos.rooks[us]
	queensUs := pos.queens[us]
	kingsUs := pos.kings[us]

	occUs := pos.occupancy[us]
	occThem := pos.occupancy[them]

	toSq := to
	if flag == FlagEnPassant {
		var capSq Square
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		occThem &^= SquareMask(capSq)
	} else if captured != NoPiece {
		occThem &^= toBB
	}

	if flag == FlagCastle {
		toSq, _ = m.CastleDestinations()
		toBB = SquareMask(toSq)
	}

	occUs &^= fromBB
	switch moved.Type() {
	case PieceTypePawn:
		pawnsUs &^= fromBB
	case PieceTypeKnight:
		knightsUs &^= fromBB
	case PieceTypeBishop:
		bishopsUs &^= fromBB
	case PieceTypeRook:
		rooksUs &^= fromBB
	case PieceTypeQueen:
		queensUs &^= fromBB
	case PieceTypeKing:
		kingsUs &^= fromBB
	}

	pieceTo := moved
	if promo != NoPiece {
		pieceTo = promo
	}
	occUs |= toBB
	switch pieceTo.Type() {
	case PieceTypePawn:
		pawnsUs |= toBB
	case PieceTypeKnight:
		knightsUs |= toBB
	case PieceTypeBishop:
		bishopsUs |= toBB
	case PieceTypeRook:
		rooksUs |= toBB
	case PieceTypeQueen:
		queensUs |= toBB
	case PieceTypeKing:
		kingsUs |= toBB
	}

	if flag == FlagCastle {
		rFrom := m.To()
		_, rTo := m.CastleDestinations()
		rFromBB := SquareMask(rFrom)
		rToBB := SquareMask(rTo)
		rooksUs &^= rFromBB
		occUs &^= rFromBB
		rooksUs |= rToBB
		occUs |= rToBB
	}

	occAll := occUs | occThem

	if us == White {
		if pawnAttackTable[Black][ksq]&pawnsUs != 0 {
			return true
		}
	} else {
		if pawnAttackTable[White][ksq]&pawnsUs != 0 {
			return true
		}
	}
	if knightAttackTable[ksq]&knightsUs != 0 {
		return true
	}
	if kingAttackTable[ksq]&kingsUs != 0 {
		return true
	}
	rq := rooksUs | queensUs
	if rq != 0 && rookRayAttacks(int(ksq), occAll)&rq != 0 {
		return true
	}
	bq := bishopsUs | queensUs
	if bq != 0 && bishopRayAttacks(int(ksq), occAll)&bq != 0 {
		return true
	}
	return false
}
