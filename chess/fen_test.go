package chess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Oliverans/chess-movegen/chess"
)

func TestParseFENRoundTripsStartPosition(t *testing.T) {
	pos, err := chess.ParseFEN(chess.StartPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.ToFEN(); got != chess.StartPositionFen {
		t.Fatalf("round trip: got %q want %q", got, chess.StartPositionFen)
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"8/8/8/8/8/8/8 w - - 0 1",
		// Shredder castling file "C" names the white king's own file (king
		// on c1), which is not a valid rook file.
		"nrkbrqbn/pppppppp/8/8/8/8/PPPPPPPP/NRKBRQBN w C - 0 1",
	}
	for _, fen := range cases {
		_, err := chess.ParseFEN(fen)
		require.Errorf(t, err, "expected ParseFEN(%q) to fail", fen)
	}
}

func TestParseFENEnPassantSquare(t *testing.T) {
	pos, err := chess.ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	require.NoError(t, err)
	want, _ := chess.ParseSquare("d6")
	require.Equal(t, want, pos.EnPassantSquare())
}

func TestParseFENShredderCastlingRights(t *testing.T) {
	// Chess960 arrangement with rooks on b and e files.
	fen := "nrkbrqbn/pppppppp/8/8/8/8/PPPPPPPP/NRKBRQBN w BEbe - 0 1"
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsChess960() {
		t.Fatalf("expected chess960 flag from Shredder castling notation")
	}
	kingSideRook := pos.RookStartSquare(chess.White, chess.KingSide)
	queenSideRook := pos.RookStartSquare(chess.White, chess.QueenSide)
	wantKingSide, _ := chess.ParseSquare("e1")
	wantQueenSide, _ := chess.ParseSquare("b1")
	if kingSideRook != wantKingSide {
		t.Fatalf("white king-side rook: got %s want %s", kingSideRook, wantKingSide)
	}
	if queenSideRook != wantQueenSide {
		t.Fatalf("white queen-side rook: got %s want %s", queenSideRook, wantQueenSide)
	}
}

func TestToShredderFENRendersFileLetters(t *testing.T) {
	fen := "nrkbrqbn/pppppppp/8/8/8/8/PPPPPPPP/NRKBRQBN w BEbe - 0 1"
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	shredder := pos.ToShredderFEN()
	wantFields := "EB"
	found := false
	for i := 0; i+len(wantFields) <= len(shredder); i++ {
		if shredder[i:i+len(wantFields)] == wantFields {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected shredder FEN %q to contain castling field %q", shredder, wantFields)
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "h8", "e4", "d5"} {
		sq, err := chess.ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", s, err)
		}
		if got := sq.String(); got != s {
			t.Fatalf("square round trip: got %q want %q", got, s)
		}
	}
}
