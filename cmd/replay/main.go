package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/tackle/internal/game"
)

func main() {
	filename := flag.String("file", "", "game record to replay")
	flag.Parse()

	if *filename == "" {
		fmt.Println("missing -file argument")
		os.Exit(1)
	}

	file, err := os.Open(*filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer file.Close()

	rec, err := game.ParseRecord(file)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	g, err := rec.Replay()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	g.Board().Print()
	fmt.Printf("phase: %s, plies: %d\n", g.Phase(), g.PlyCount())
	if winner, ok := g.Winner(); ok {
		fmt.Printf("winner: %s (%s)\n", winner, g.Job(winner).Name)
	}
}
