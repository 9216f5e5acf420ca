package chess

// MoveGenerationFlags tunes how GenerateMovesInto behaves.
type MoveGenerationFlags uint8

const (
	// LegalMoves generates the full legal move set, ordered with captures
	// and promotions first, quiet moves second.
	LegalMoves MoveGenerationFlags = iota
	// QueenPromotionOnly suppresses under-promotions (to knight, bishop,
	// rook), useful for search where under-promotions are rarely relevant.
	QueenPromotionOnly
)

// GenerateMovesInto writes the side to move's legal moves into dst,
// starting at index 0 (any moves already in dst are discarded), and returns
// the resulting slice, reusing dst's backing array when it has capacity.
// Moves are ordered in two buckets: captures, en-passant
// captures, and any promotion (whether or not it captures) first, then all
// remaining quiet moves -- including castling and quiet pawn pushes.
// Grounded on the teacher's generateMovesFilteredInto, restructured for
// bucketed ordering and generalized for Chess960 castling.
func (pos *Position) GenerateMovesInto(dst []Move, flags MoveGenerationFlags) []Move {
	loud := make([]Move, 0, 32)
	quiet := make([]Move, 0, 64)
	pos.generateInto(&loud, &quiet, flags)
	out := dst[:0]
	out = append(out, loud...)
	out = append(out, quiet...)
	return out
}

// GenerateMoves is a convenience wrapper over GenerateMovesInto that
// allocates a fresh slice.
func (pos *Position) GenerateMoves(flags MoveGenerationFlags) []Move {
	return pos.GenerateMovesInto(make([]Move, 0, 64), flags)
}

// GenerateCapturesInto writes only capturing moves (including en passant)
// and promotions into dst, starting at index 0.
func (pos *Position) GenerateCapturesInto(dst []Move) []Move {
	loud := make([]Move, 0, 32)
	var quiet []Move
	pos.generateInto(&loud, &quiet, LegalMoves)
	return append(dst[:0], loud...)
}

// GenerateQuietsInto writes only non-capturing, non-promotion moves into
// dst, starting at index 0.
func (pos *Position) GenerateQuietsInto(dst []Move) []Move {
	var loud []Move
	quiet := make([]Move, 0, 64)
	pos.generateInto(&loud, &quiet, LegalMoves)
	return append(dst[:0], quiet...)
}

// GenerateChecksInto writes into dst, starting at index 0, the subset of
// the legal move set that would give check to the opponent, using Position.GivesCheck to classify each
// candidate.
func (pos *Position) GenerateChecksInto(dst []Move) []Move {
	all := pos.GenerateMoves(LegalMoves)
	out := dst[:0]
	for _, m := range all {
		if pos.GivesCheck(m) {
			out = append(out, m)
		}
	}
	return out
}

func (pos *Position) generateInto(loud, quiet *[]Move, flags MoveGenerationFlags) {
	side := pos.sideToMove
	us := side
	them := side.Other()

	ownOcc := pos.occupancy[us]
	oppOcc := pos.occupancy[them]
	allOcc := ownOcc | oppOcc

	kingBB := pos.kings[us]
	ks := NoSquare
	if kingBB != 0 {
		ks = kingBB.LSB()
	}

	inCheck, doubleCheck, checkMask, pinLine := pos.computeCheckAndPins(side, allOcc)

	promoRank := us.PromotionRank()
	push := us.PawnPushDirection()

	appendPromotions := func(dst *[]Move, from, to Square, moved, captured Piece, flag MoveFlag) {
		queen := PieceFromType(us, PieceTypeQueen)
		if flags == QueenPromotionOnly {
			*dst = append(*dst, NewMove(from, to, moved, captured, queen, flag))
			return
		}
		rook := PieceFromType(us, PieceTypeRook)
		bishop := PieceFromType(us, PieceTypeBishop)
		knight := PieceFromType(us, PieceTypeKnight)
		*dst = append(*dst,
			NewMove(from, to, moved, captured, queen, flag),
			NewMove(from, to, moved, captured, rook, flag),
			NewMove(from, to, moved, captured, bishop, flag),
			NewMove(from, to, moved, captured, knight, flag),
		)
	}

	pawns := pos.pawns[us]
	for pawns != 0 {
		from := pawns.ResetLSB()
		moved := pos.pieces[from]
		pinMask := pinLine[from]

		oneTo, ok := stepSquare(int(from), push)
		if ok {
			one := Square(oneTo)
			if !allOcc.Has(one) {
				toBB := SquareMask(one)
				allowed := !doubleCheck && (pinMask == 0 || toBB&pinMask != 0) && (!inCheck || toBB&checkMask != 0)
				if one.Rank() == promoRank {
					if allowed {
						appendPromotions(loud, from, one, moved, NoPiece, FlagNone)
					}
				} else {
					if allowed {
						*quiet = append(*quiet, NewMove(from, one, moved, NoPiece, NoPiece, FlagNone))
					}
					// The double push is tested on its own: it can block a
					// check that the single push does not.
					if from.Rank() == us.SecondRank() {
						twoTo, ok2 := stepSquare(int(one), push)
						if ok2 {
							two := Square(twoTo)
							if !allOcc.Has(two) {
								toBB2 := SquareMask(two)
								if !doubleCheck && (pinMask == 0 || toBB2&pinMask != 0) && (!inCheck || toBB2&checkMask != 0) {
									*quiet = append(*quiet, NewMove(from, two, moved, NoPiece, NoPiece, FlagDoublePush))
								}
							}
						}
					}
				}
			}
		}

		capTargets := pawnAttackTable[us][from] & oppOcc
		for capTargets != 0 {
			to := capTargets.ResetLSB()
			captured := pos.pieces[to]
			toBB := SquareMask(to)
			if doubleCheck || (pinMask != 0 && toBB&pinMask == 0) || (inCheck && toBB&checkMask == 0) {
				continue
			}
			if to.Rank() == promoRank {
				appendPromotions(loud, from, to, moved, captured, FlagNone)
			} else {
				*loud = append(*loud, NewMove(from, to, moved, captured, NoPiece, FlagNone))
			}
		}

		if pos.enPassantSquare != NoSquare {
			ep := pos.enPassantSquare
			if pawnAttackTable[us][from].Has(ep) {
				toBB := SquareMask(ep)
				if !(doubleCheck || (pinMask != 0 && toBB&pinMask == 0)) {
					var capSq Square
					if us == White {
						capSq = ep - 8
					} else {
						capSq = ep + 8
					}
					occp := allOcc
					occp &^= SquareMask(from)
					occp &^= SquareMask(capSq)
					occp |= toBB
					if ks != NoSquare && !pos.isSquareAttackedWithOcc(ks, them, occp) {
						capturedPawn := PieceFromType(them, PieceTypePawn)
						*loud = append(*loud, NewMove(from, ep, moved, capturedPawn, NoPiece, FlagEnPassant))
					}
				}
			}
		}
	}

	if !doubleCheck {
		knights := pos.knights[us]
		for knights != 0 {
			from := knights.ResetLSB()
			moved := pos.pieces[from]
			pinMask := pinLine[from]
			targets := knightAttackTable[from] &^ ownOcc
			if pinMask != 0 {
				targets &= pinMask
			}
			if inCheck {
				targets &= checkMask
			}
			emitPieceTargets(loud, quiet, from, moved, targets, oppOcc, &pos.pieces)
		}

		bishops := pos.bishops[us]
		for bishops != 0 {
			from := bishops.ResetLSB()
			moved := pos.pieces[from]
			pinMask := pinLine[from]
			targets := bishopAttacksMagic(int(from), allOcc) &^ ownOcc
			if pinMask != 0 {
				targets &= pinMask
			}
			if inCheck {
				targets &= checkMask
			}
			emitPieceTargets(loud, quiet, from, moved, targets, oppOcc, &pos.pieces)
		}

		rooks := pos.rooks[us]
		for rooks != 0 {
			from := rooks.ResetLSB()
			moved := pos.pieces[from]
			pinMask := pinLine[from]
			targets := rookAttacksMagic(int(from), allOcc) &^ ownOcc
			if pinMask != 0 {
				targets &= pinMask
			}
			if inCheck {
				targets &= checkMask
			}
			emitPieceTargets(loud, quiet, from, moved, targets, oppOcc, &pos.pieces)
		}

		queens := pos.queens[us]
		for queens != 0 {
			from := queens.ResetLSB()
			moved := pos.pieces[from]
			pinMask := pinLine[from]
			targets := (rookAttacksMagic(int(from), allOcc) | bishopAttacksMagic(int(from), allOcc)) &^ ownOcc
			if pinMask != 0 {
				targets &= pinMask
			}
			if inCheck {
				targets &= checkMask
			}
			emitPieceTargets(loud, quiet, from, moved, targets, oppOcc, &pos.pieces)
		}
	}

	if kingBB != 0 {
		from := ks
		moved := pos.pieces[from]
		targets := kingAttackTable[from] &^ ownOcc
		for targets != 0 {
			to := targets.ResetLSB()
			isCap := oppOcc.Has(to)
			occp := allOcc
			occp &^= SquareMask(from)
			if isCap {
				occp &^= SquareMask(to)
			}
			occp |= SquareMask(to)
			if pos.isSquareAttackedWithOcc(to, them, occp) {
				continue
			}
			var captured Piece
			if isCap {
				captured = pos.pieces[to]
				*loud = append(*loud, NewMove(from, to, moved, captured, NoPiece, FlagNone))
			} else {
				*quiet = append(*quiet, NewMove(from, to, moved, NoPiece, NoPiece, FlagNone))
			}
		}

		if !inCheck {
			for _, cs := range [2]CastlingSide{KingSide, QueenSide} {
				if !pos.canCastle(RightsFor(us, cs)) {
					continue
				}
				if pos.castlingImpeded(us, cs) {
					continue
				}
				kingTo, rookTo := castlingDestinationSquares(us, cs)
				rookFrom := pos.rookStartSquare[us][cs]

				// Simulate the post-castling occupancy (king and rook both
				// departed and landed) so that a rook vacating its start
				// square cannot hide a slider that would otherwise attack
				// a square the king passes through or lands on -- the
				// Chess960 case a fixed a1/h1/a8/h8 assumption would miss.
				occAfter := allOcc
				occAfter &^= SquareMask(from) | SquareMask(rookFrom)
				occAfter |= SquareMask(kingTo) | SquareMask(rookTo)

				lo, hi := from, kingTo
				if lo > hi {
					lo, hi = hi, lo
				}
				pathSafe := true
				for sq := lo; sq <= hi; sq++ {
					if pos.isSquareAttackedWithOcc(sq, them, occAfter) {
						pathSafe = false
						break
					}
				}
				if !pathSafe {
					continue
				}
				*quiet = append(*quiet, NewMove(from, rookFrom, moved, NoPiece, NoPiece, FlagCastle))
			}
		}
	}
}

func emitPieceTargets(loud, quiet *[]Move, from Square, moved Piece, targets, oppOcc Bitboard, board *[64]Piece) {
	for targets != 0 {
		to := targets.ResetLSB()
		if oppOcc.Has(to) {
			*loud = append(*loud, NewMove(from, to, moved, board[to], NoPiece, FlagNone))
		} else {
			*quiet = append(*quiet, NewMove(from, to, moved, NoPiece, NoPiece, FlagNone))
		}
	}
}

// IsLegal reports whether m is a legal move in the current position by
// generating the full legal move set and searching for a match. Intended
// for validating externally supplied moves (e.g. parsed from UCI or SAN),
// not for hot-path search code.
func (pos *Position) IsLegal(m Move) bool {
	for _, cand := range pos.GenerateMoves(LegalMoves) {
		if cand == m {
			return true
		}
	}
	return false
}
