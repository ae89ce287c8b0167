package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/victorgabillon/atomheart"
	"github.com/victorgabillon/atomheart/game"
)

var (
	stateFile = flag.String("state_file", "", "YAML file holding a fen plus history state")
	fen       = flag.String("fen", game.StartingFEN, "starting position in FEN notation")
	moves     = flag.String("moves", "", "space separated UCI moves played from the starting position")
	useNative = flag.Bool("native", false, "run on the native bitboard backend")
)

func main() {
	flag.Parse()

	var state game.FenPlusHistory
	if *stateFile != "" {
		f, err := os.Open(*stateFile)
		if err != nil {
			log.Fatalf("open state file: %s", err)
		}
		defer f.Close()
		state, err = game.LoadFenPlusHistory(f)
		if err != nil {
			log.Fatalf("load state file: %s", err)
		}
	} else {
		state = game.NewFenPlusHistory(*fen, strings.Fields(*moves)...)
	}

	conf := atomheart.Config{Backend: atomheart.BackendFromFlag(*useNative), SortLegalMoves: true}
	board, err := atomheart.CreateBoard(state, conf)
	if err != nil {
		log.Fatalf("create board: %s", err)
	}

	fmt.Println(board)
	fmt.Printf("fen: %s\n", board.ExportFEN())
	fmt.Printf("hash: %016x  ply: %d  check: %v  terminal: %s\n",
		board.Hash(), board.Ply(), board.IsCheck(), board.Terminal())
	var ucis []string
	for _, k := range board.LegalMoves() {
		ucis = append(ucis, k.UCI())
	}
	fmt.Printf("legal moves (%d): %s\n", len(ucis), strings.Join(ucis, " "))
}
