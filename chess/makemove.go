package chess

// MoveState holds the minimal information needed to undo a move applied
// with Position.Do. Grounded on the teacher's MoveState.
type MoveState struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	rookFrom      Square
	rookTo        Square
}

// NullState holds the minimal information needed to undo a null move
// applied with Position.DoNull.
type NullState struct {
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	prevSide      Side
}

// Do applies m to the position. It reports ok=false if the move leaves the
// mover's own king in check, in which case the position is restored to how
// it was before the call. Grounded on the teacher's Board.MakeMove, extended
// to resolve castling rook squares from Position.rookStartSquare instead of
// hardcoded a1/h1/a8/h8. The en-passant square is set after any two-square
// pawn advance.
func (pos *Position) Do(m Move) (ok bool, st MoveState) {
	pos.pinnedValid = false

	st.move = m
	st.prevCastling = pos.castlingRights
	st.prevEnPassant = pos.enPassantSquare
	st.prevHalfmove = pos.halfmoveClock
	st.prevFullmove = pos.fullmoveNumber
	st.prevZobrist = pos.zobristKey
	st.rookFrom, st.rookTo = NoSquare, NoSquare
	st.captured = NoPiece

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	if pos.enPassantSquare != NoSquare {
		pos.zobristKey ^= zobristEnPassant[int(pos.enPassantSquare.File())]
	}
	pos.enPassantSquare = NoSquare

	us := pos.sideToMove
	them := us.Other()
	fromBB := SquareMask(from)
	toBB := SquareMask(to)

	if flag == FlagEnPassant {
		var capSq Square
		var capPiece Piece
		if us == White {
			capSq = to - 8
			capPiece = BlackPawn
		} else {
			capSq = to + 8
			capPiece = WhitePawn
		}
		st.captured = capPiece
		capBB := SquareMask(capSq)
		pos.pieces[capSq] = NoPiece
		pos.occupancy[them] &^= capBB
		pos.pawns[them] &^= capBB
		pos.zobristKey ^= zobristPiece[capPiece][capSq]
	} else if captured != NoPiece && flag != FlagCastle {
		st.captured = captured
		pos.pieces[to] = NoPiece
		pos.occupancy[them] &^= toBB
		clearBBForType(pos, captured.Type(), them, toBB)
		pos.zobristKey ^= zobristPiece[captured][to]
	}

	kingTo, rookTo := to, NoSquare
	if flag == FlagCastle {
		kingTo, rookTo = m.CastleDestinations()
	}

	if promo != NoPiece {
		pos.pieces[from] = NoPiece
		pos.occupancy[us] &^= fromBB
		pos.pawns[us] &^= fromBB
		pos.zobristKey ^= zobristPiece[moved][from]

		pos.pieces[to] = promo
		pos.occupancy[us] |= toBB
		setBBForType(pos, promo.Type(), us, toBB)
		pos.zobristKey ^= zobristPiece[promo][to]
	} else if flag == FlagCastle {
		rookFrom := to
		rook := PieceFromType(us, PieceTypeRook)

		pos.pieces[from] = NoPiece
		pos.pieces[rookFrom] = NoPiece
		pos.occupancy[us] &^= fromBB | SquareMask(rookFrom)
		pos.kings[us] &^= fromBB
		pos.rooks[us] &^= SquareMask(rookFrom)
		pos.zobristKey ^= zobristPiece[moved][from]
		pos.zobristKey ^= zobristPiece[rook][rookFrom]

		pos.pieces[kingTo] = moved
		pos.pieces[rookTo] = rook
		pos.occupancy[us] |= SquareMask(kingTo) | SquareMask(rookTo)
		pos.kings[us] |= SquareMask(kingTo)
		pos.rooks[us] |= SquareMask(rookTo)
		pos.zobristKey ^= zobristPiece[moved][kingTo]
		pos.zobristKey ^= zobristPiece[rook][rookTo]

		st.rookFrom, st.rookTo = rookFrom, rookTo
	} else {
		pos.pieces[from] = NoPiece
		pos.pieces[to] = moved
		pos.occupancy[us] ^= fromBB | toBB
		xorBBForType(pos, moved.Type(), us, fromBB|toBB)
		pos.zobristKey ^= zobristPiece[moved][from]
		pos.zobristKey ^= zobristPiece[moved][to]
	}

	newCR := pos.castlingRights
	if moved.Type() == PieceTypeKing {
		newCR &^= RightsFor(us, KingSide) | RightsFor(us, QueenSide)
	}
	if moved.Type() == PieceTypeRook {
		if from == pos.rookStartSquare[us][KingSide] {
			newCR &^= RightsFor(us, KingSide)
		} else if from == pos.rookStartSquare[us][QueenSide] {
			newCR &^= RightsFor(us, QueenSide)
		}
	}
	if st.captured != NoPiece && st.captured.Type() == PieceTypeRook {
		if to == pos.rookStartSquare[them][KingSide] {
			newCR &^= RightsFor(them, KingSide)
		} else if to == pos.rookStartSquare[them][QueenSide] {
			newCR &^= RightsFor(them, QueenSide)
		}
	}
	if newCR != pos.castlingRights {
		pos.zobristKey ^= zobristCastle[pos.castlingRights]
		pos.zobristKey ^= zobristCastle[newCR]
		pos.castlingRights = newCR
	}

	if moved.Type() == PieceTypePawn && abs(int(to)-int(from)) == 16 {
		var ep Square
		if us == White {
			ep = from + 8
		} else {
			ep = from - 8
		}
		pos.enPassantSquare = ep
		pos.zobristKey ^= zobristEnPassant[int(ep.File())]
	}

	pos.sideToMove = them
	pos.zobristKey ^= zobristSide

	moverSide := us
	kingBB := pos.kings[moverSide]
	// With no king of the mover's side on the board, no move can leave it
	// in check.
	needCheck := kingBB != 0
	var ks Square
	if needCheck {
		ks = kingBB.LSB()
		if moved.Type() != PieceTypeKing && flag != FlagEnPassant && flag != FlagCastle {
			if (kingRaysUnion[ks]>>uint(from))&1 == 0 {
				needCheck = false
			}
		}
	}
	if needCheck {
		occ := pos.Pieces()
		if pos.isSquareAttackedWithOcc(ks, them, occ) {
			pos.Undo(m, st)
			return false, st
		}
	}

	if moved.Type() == PieceTypePawn || st.captured != NoPiece {
		pos.halfmoveClock = 0
	} else {
		pos.halfmoveClock++
	}
	if moverSide == Black {
		pos.fullmoveNumber++
	}

	return true, st
}

// Undo reverses a move previously applied with Do, restoring the exact
// prior position (the Zobrist key is restored from the saved snapshot
// rather than recomputed).
func (pos *Position) Undo(m Move, st MoveState) {
	pos.pinnedValid = false

	pos.sideToMove = pos.sideToMove.Other()
	pos.zobristKey ^= zobristSide

	if pos.enPassantSquare != NoSquare {
		pos.zobristKey ^= zobristEnPassant[int(pos.enPassantSquare.File())]
	}

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()

	us := pos.sideToMove
	them := us.Other()

	if flag == FlagCastle && st.rookFrom != NoSquare {
		kingTo, rookTo := m.CastleDestinations()
		rook := PieceFromType(us, PieceTypeRook)

		pos.pieces[kingTo] = NoPiece
		pos.pieces[rookTo] = NoPiece
		pos.occupancy[us] &^= SquareMask(kingTo) | SquareMask(rookTo)
		pos.kings[us] &^= SquareMask(kingTo)
		pos.rooks[us] &^= SquareMask(rookTo)

		pos.pieces[from] = moved
		pos.pieces[st.rookFrom] = rook
		pos.occupancy[us] |= SquareMask(from) | SquareMask(st.rookFrom)
		pos.kings[us] |= SquareMask(from)
		pos.rooks[us] |= SquareMask(st.rookFrom)

		pos.castlingRights = st.prevCastling
		pos.enPassantSquare = st.prevEnPassant
		if pos.enPassantSquare != NoSquare {
			pos.zobristKey ^= zobristEnPassant[int(pos.enPassantSquare.File())]
		}
		pos.halfmoveClock = st.prevHalfmove
		pos.fullmoveNumber = st.prevFullmove
		pos.zobristKey = st.prevZobrist
		return
	}

	fromBB := SquareMask(from)
	toBB := SquareMask(to)
	pos.pieces[to] = NoPiece

	if promo != NoPiece {
		pawn := PieceFromType(us, PieceTypePawn)
		pos.pieces[from] = pawn
		pos.occupancy[us] ^= fromBB | toBB
		clearBBForType(pos, promo.Type(), us, toBB)
		pos.pawns[us] |= fromBB
	} else {
		pos.pieces[from] = moved
		pos.occupancy[us] ^= fromBB | toBB
		xorBBForType(pos, moved.Type(), us, fromBB|toBB)
	}

	if st.captured != NoPiece {
		if flag == FlagEnPassant {
			var capSq Square
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			capBB := SquareMask(capSq)
			pos.pieces[capSq] = st.captured
			pos.occupancy[them] |= capBB
			pos.pawns[them] |= capBB
		} else {
			pos.pieces[to] = st.captured
			pos.occupancy[them] |= toBB
			setBBForType(pos, st.captured.Type(), them, toBB)
		}
	}

	pos.castlingRights = st.prevCastling
	pos.enPassantSquare = st.prevEnPassant
	if pos.enPassantSquare != NoSquare {
		pos.zobristKey ^= zobristEnPassant[int(pos.enPassantSquare.File())]
	}
	pos.halfmoveClock = st.prevHalfmove
	pos.fullmoveNumber = st.prevFullmove
	pos.zobristKey = st.prevZobrist
}

// DoNull switches the side to move without moving any piece, clearing any
// en-passant square. UndoNull reverses it.
func (pos *Position) DoNull() (st NullState) {
	pos.pinnedValid = false

	st.prevEnPassant = pos.enPassantSquare
	st.prevHalfmove = pos.halfmoveClock
	st.prevFullmove = pos.fullmoveNumber
	st.prevZobrist = pos.zobristKey
	st.prevSide = pos.sideToMove

	if pos.enPassantSquare != NoSquare {
		pos.zobristKey ^= zobristEnPassant[int(pos.enPassantSquare.File())]
	}
	pos.enPassantSquare = NoSquare
	pos.halfmoveClock++
	pos.sideToMove = pos.sideToMove.Other()
	pos.zobristKey ^= zobristSide
	if st.prevSide == Black {
		pos.fullmoveNumber++
	}
	return st
}

// UndoNull reverses DoNull.
func (pos *Position) UndoNull(st NullState) {
	pos.pinnedValid = false

	pos.enPassantSquare = st.prevEnPassant
	pos.halfmoveClock = st.prevHalfmove
	pos.fullmoveNumber = st.prevFullmove
	pos.sideToMove = st.prevSide
	pos.zobristKey = st.prevZobrist
}

func clearBBForType(pos *Position, pt PieceType, side Side, bb Bitboard) {
	switch pt {
	case PieceTypePawn:
		pos.pawns[side] &^= bb
	case PieceTypeKnight:
		pos.knights[side] &^= bb
	case PieceTypeBishop:
		pos.bishops[side] &^= bb
	case PieceTypeRook:
		pos.rooks[side] &^= bb
	case PieceTypeQueen:
		pos.queens[side] &^= bb
	case PieceTypeKing:
		pos.kings[side] &^= bb
	}
}

func setBBForType(pos *Position, pt PieceType, side Side, bb Bitboard) {
	switch pt {
	case PieceTypePawn:
		pos.pawns[side] |= bb
	case PieceTypeKnight:
		pos.knights[side] |= bb
	case PieceTypeBishop:
		pos.bishops[side] |= bb
	case PieceTypeRook:
		pos.rooks[side] |= bb
	case PieceTypeQueen:
		pos.queens[side] |= bb
	case PieceTypeKing:
		pos.kings[side] |= bb
	}
}

func xorBBForType(pos *Position, pt PieceType, side Side, bb Bitboard) {
	switch pt {
	case PieceTypePawn:
		pos.pawns[side] ^= bb
	case PieceTypeKnight:
		pos.knights[side] ^= bb
	case PieceTypeBishop:
		pos.bishops[side] ^= bb
	case PieceTypeRook:
		pos.rooks[side] ^= bb
	case PieceTypeQueen:
		pos.queens[side] ^= bb
	case PieceTypeKing:
		pos.kings[side] ^= bb
	}
}
