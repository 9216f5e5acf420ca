package chess

import "math/bits"

// Precomputed occupancy-independent attack tables.
var knightAttackTable [64]Bitboard
var kingAttackTable [64]Bitboard
var pawnAttackTable [2][64]Bitboard

// Rays per square, excluding the origin square, one entry per direction.
// Rook directions: 0=N, 1=S, 2=E, 3=W. Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW.
var rookRays [64][4]Bitboard
var bishopRays [64][4]Bitboard
var kingRaysUnion [64]Bitboard

// Software PEXT/PDEP magic-equivalent slider attack tables, grounded on the
// teacher's hyperbola-quintessence-free approach: enumerate every subset of
// the relevant occupancy mask and precompute its attack set.
var rookOccMask [64]Bitboard
var bishopOccMask [64]Bitboard
var rookAttackTable [64][]Bitboard
var bishopAttackTable [64][]Bitboard

func init() {
	initLeaperTables()
	initRayTables()
	initSliderTables()
	initBetweenAndLine()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var knightMask, kingMask Bitboard
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				knightMask |= Bitboard(1) << uint(rf*8+ff)
			}
		}
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kingMask |= Bitboard(1) << uint(rf*8+ff)
			}
		}
		knightAttackTable[sq] = knightMask
		kingAttackTable[sq] = kingMask

		if rank < 7 {
			if file > 0 {
				pawnAttackTable[White][sq] |= Bitboard(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnAttackTable[White][sq] |= Bitboard(1) << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttackTable[Black][sq] |= Bitboard(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnAttackTable[Black][sq] |= Bitboard(1) << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRayTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var ray Bitboard
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][0] = ray

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][1] = ray

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][2] = ray

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][3] = ray

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][0] = ray

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][1] = ray

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][2] = ray

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][3] = ray

		kingRaysUnion[sq] = rookRays[sq][0] | rookRays[sq][1] | rookRays[sq][2] | rookRays[sq][3] |
			bishopRays[sq][0] | bishopRays[sq][1] | bishopRays[sq][2] | bishopRays[sq][3]
	}
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var rm Bitboard
		for r := rank + 1; r < 7; r++ {
			rm |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r > 0; r-- {
			rm |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 7; f++ {
			rm |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f > 0; f-- {
			rm |= 1 << uint(rank*8+f)
		}
		rookOccMask[sq] = rm

		var bm Bitboard
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		bishopOccMask[sq] = bm

		rBits := bits.OnesCount64(uint64(rm))
		bBits := bits.OnesCount64(uint64(bm))
		rookAttackTable[sq] = make([]Bitboard, 1<<rBits)
		bishopAttackTable[sq] = make([]Bitboard, 1<<bBits)

		for idx := 0; idx < (1 << rBits); idx++ {
			occ := pdep(uint64(idx), uint64(rm))
			rookAttackTable[sq][idx] = rookRayAttacks(sq, Bitboard(occ))
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			occ := pdep(uint64(idx), uint64(bm))
			bishopAttackTable[sq][idx] = bishopRayAttacks(sq, Bitboard(occ))
		}
	}
}

// pext extracts the bits of x at the positions set in mask, packed into the
// low bits of the result, in ascending mask-bit order.
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// pdep deposits the low bits of x into the positions set in mask.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

// rookRayAttacks returns rook attacks from sq given occupancy occ: each of
// the four rays runs up to and including the first blocker.
func rookRayAttacks(sq int, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		blockers := ray & occ
		if blockers != 0 {
			var first int
			if d == 0 || d == 2 {
				first = bits.TrailingZeros64(uint64(blockers))
			} else {
				first = 63 - bits.LeadingZeros64(uint64(blockers))
			}
			ray &^= rookRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopRayAttacks returns bishop attacks from sq given occupancy occ.
func bishopRayAttacks(sq int, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		blockers := ray & occ
		if blockers != 0 {
			var first int
			if d == 0 || d == 1 {
				first = bits.TrailingZeros64(uint64(blockers))
			} else {
				first = 63 - bits.LeadingZeros64(uint64(blockers))
			}
			ray &^= bishopRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

func rookAttacksMagic(sq int, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(rookOccMask[sq]))
	return rookAttackTable[sq][idx]
}

func bishopAttacksMagic(sq int, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(bishopOccMask[sq]))
	return bishopAttackTable[sq][idx]
}

// Attacks returns the attack bitboard for a piece of the given type and side
// standing on sq, given the current board occupancy. Knight, king and pawn
// lookups are occupancy-independent; bishop, rook and queen are resolved via
// the magic-equivalent slider tables. Queen is the union of rook and bishop.
func Attacks(pt PieceType, side Side, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case PieceTypePawn:
		return pawnAttackTable[side][sq]
	case PieceTypeKnight:
		return knightAttackTable[sq]
	case PieceTypeKing:
		return kingAttackTable[sq]
	case PieceTypeBishop:
		return bishopAttacksMagic(int(sq), occ)
	case PieceTypeRook:
		return rookAttacksMagic(int(sq), occ)
	case PieceTypeQueen:
		return rookAttacksMagic(int(sq), occ) | bishopAttacksMagic(int(sq), occ)
	default:
		return 0
	}
}
