package chess_test

import (
	"testing"

	"github.com/Oliverans/chess-movegen/chess"
)

func TestGenerateMovesInitialPositionCount(t *testing.T) {
	pos, err := chess.ParseFEN(chess.StartPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves(chess.LegalMoves)
	if len(moves) != 20 {
		t.Fatalf("initial position: got %d legal moves, want 20", len(moves))
	}
}

// TestGenerateMovesBucketOrdering asserts the two-bucket ordering contract:
// every capture, en-passant capture, and promotion precedes every quiet
// move in the returned slice.
func TestGenerateMovesBucketOrdering(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves(chess.LegalMoves)
	if len(moves) == 0 {
		t.Fatalf("expected legal moves in Kiwipete position")
	}
	seenQuiet := false
	for _, m := range moves {
		loud := m.IsCapture() || m.IsPromotion()
		if loud {
			if seenQuiet {
				t.Fatalf("loud move %s found after a quiet move; bucket ordering violated", m.UCI())
			}
			continue
		}
		seenQuiet = true
	}
}

// TestGenerateMovesPieceOrderWithinBucket checks that within a bucket,
// pieces are emitted in pawn, knight, bishop, rook, queen, king order.
func TestGenerateMovesPieceOrderWithinBucket(t *testing.T) {
	pos, err := chess.ParseFEN("4k3/8/8/8/8/2N1B3/1P6/R2QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	order := map[chess.PieceType]int{
		chess.PieceTypePawn:   0,
		chess.PieceTypeKnight: 1,
		chess.PieceTypeBishop: 2,
		chess.PieceTypeRook:   3,
		chess.PieceTypeQueen:  4,
		chess.PieceTypeKing:   5,
	}
	// Piece ordering is a within-bucket guarantee: the loud and quiet
	// buckets are checked independently since the bucket boundary itself
	// resets back to pawns.
	checkOrder := func(moves []chess.Move) {
		last := -1
		for _, m := range moves {
			rank := order[m.MovedPiece().Type()]
			if rank < last {
				t.Fatalf("piece order violated at move %s: rank %d after %d", m.UCI(), rank, last)
			}
			last = rank
		}
	}
	checkOrder(pos.GenerateCapturesInto(nil))
	checkOrder(pos.GenerateQuietsInto(nil))
}

func TestGenerateMovesAscendingSquareOrder(t *testing.T) {
	pos, err := chess.ParseFEN("4k3/8/8/8/8/8/8/R6R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves(chess.LegalMoves)
	lastFrom := chess.NoSquare
	for _, m := range moves {
		if m.From() != lastFrom {
			if m.From() < lastFrom && lastFrom != chess.NoSquare {
				t.Fatalf("source squares not ascending: %s after %s", m.From(), lastFrom)
			}
			lastFrom = m.From()
		}
	}
}

func TestGenerateMovesPinnedPieceCannotLeaveLine(t *testing.T) {
	pos, err := chess.ParseFEN("k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range pos.GenerateMoves(chess.LegalMoves) {
		if m.MovedPiece() != chess.WhiteRook {
			continue
		}
		if m.To().File() != chess.FileE {
			t.Fatalf("pinned rook escaped its pin line via %s", m.UCI())
		}
	}
}

func TestGenerateMovesCheckRestrictsToBlockOrCapture(t *testing.T) {
	// White king on e1 in check from a black rook on e8; the only legal
	// replies are capturing the rook, blocking on the e-file, or moving
	// the king off it.
	pos, err := chess.ParseFEN("4r3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !pos.InCheck(chess.White) {
		t.Fatalf("expected white to be in check")
	}
	for _, m := range pos.GenerateMoves(chess.LegalMoves) {
		if m.MovedPiece() == chess.WhiteKing {
			continue
		}
		if m.To().File() != chess.FileE {
			t.Fatalf("non-king move %s does not block or capture the checking rook", m.UCI())
		}
	}
}

func TestGenerateCapturesAndQuietsPartitionLegalMoves(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	captures := pos.GenerateCapturesInto(nil)
	quiets := pos.GenerateQuietsInto(nil)
	all := pos.GenerateMoves(chess.LegalMoves)
	if len(captures)+len(quiets) != len(all) {
		t.Fatalf("captures(%d)+quiets(%d) != all(%d)", len(captures), len(quiets), len(all))
	}
	for _, m := range captures {
		if !m.IsCapture() && !m.IsPromotion() {
			t.Fatalf("GenerateCapturesInto returned a quiet non-promotion move %s", m.UCI())
		}
	}
	for _, m := range quiets {
		if m.IsCapture() || m.IsPromotion() {
			t.Fatalf("GenerateQuietsInto returned a loud move %s", m.UCI())
		}
	}
}

func TestGenerateMovesIntoReusesBuffer(t *testing.T) {
	pos, err := chess.ParseFEN(chess.StartPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]chess.Move, 0, 64)
	out := pos.GenerateMovesInto(buf, chess.LegalMoves)
	if &out[0] != &buf[:1][0] {
		t.Fatalf("GenerateMovesInto did not reuse the backing array")
	}
}

func TestChess960CastlingBlockedByHiddenSliderAfterRookMoves(t *testing.T) {
	// White king on c1, queen-side rook on b1 (its Chess960 start square).
	// A black rook on a1 does not attack c1 while the b1 rook still
	// occupies its start square, but once b1 vacates during queen-side
	// castling (king stays on c1, rook lands on d1) nothing stands between
	// the black rook and c1 -- castling must be refused.
	fen := "4k3/8/8/8/8/8/8/rRK5 w B - 0 1"
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range pos.GenerateMoves(chess.LegalMoves) {
		if m.IsCastle() {
			t.Fatalf("castling should be blocked by the rook on a1 attacking c1 after the rook vacates b1, got %s", m.UCI())
		}
	}
}

func TestIsLegalAgreesWithGenerateMoves(t *testing.T) {
	pos, err := chess.ParseFEN(chess.StartPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves(chess.LegalMoves)
	for _, m := range moves {
		if !pos.IsLegal(m) {
			t.Fatalf("IsLegal(%s) = false, want true", m.UCI())
		}
	}
	from, _ := chess.ParseSquare("a1")
	to, _ := chess.ParseSquare("a5")
	bogus := chess.NewMove(from, to, chess.WhiteRook, chess.NoPiece, chess.NoPiece, chess.FlagNone)
	if pos.IsLegal(bogus) {
		t.Fatalf("IsLegal reported a move blocked by the rook's own pawn as legal")
	}
}
