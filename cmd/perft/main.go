package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Oliverans/chess-movegen/chess"
)

func main() {
	fen := flag.String("fen", chess.StartPositionFen, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	parallel := flag.Bool("parallel", false, "Run -divide root moves concurrently")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *depth <= 0 {
		log.Fatal().Msg("-depth must be > 0")
	}

	pos, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("parse fen")
	}

	if *divide {
		var div map[chess.Move]uint64
		if *parallel {
			div = chess.PerftDivideParallel(pos, *depth)
		} else {
			div = chess.PerftDivide(pos, *depth)
		}
		type kv struct {
			m chess.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.UCI() < arr[j].m.UCI() })
		for _, x := range arr {
			os.Stdout.WriteString(x.m.UCI() + ": " + strconv.FormatUint(x.n, 10) + "\n")
		}
		os.Stdout.WriteString("Total: " + strconv.FormatUint(sum, 10) + "\n")
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("create cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += chess.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	log.Info().
		Str("label", *label).
		Int("depth", *depth).
		Uint64("nodes", totalNodes).
		Dur("elapsed", elapsed).
		Float64("nps", nps).
		Msg("perft")

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatal().Err(err).Msg("create memprofile")
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("write heap profile")
		}
		_ = f.Close()
	}
}
