package main

import (
	"flag"
	"log"
	"strings"

	"github.com/victorgabillon/atomheart/backend"
	"github.com/victorgabillon/atomheart/game"
)

var (
	fen   = flag.String("fen", game.StartingFEN, "starting position in FEN notation")
	moves = flag.String("moves", "", "space separated UCI moves to replay on both backends")
)

func main() {
	flag.Parse()
	if err := backend.Crosscheck(*fen, strings.Fields(*moves)); err != nil {
		log.Fatalf("backends diverge:\n%s", err)
	}
	log.Printf("backends agree over %d moves", len(strings.Fields(*moves)))
}
