package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/othello/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 64 characters of '.', 'X' and 'O'")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	board.Print()

	white, black := board.Score()
	fmt.Printf("white: %d, black: %d\n", white, black)

	for _, side := range []othello.Side{othello.Black, othello.White} {
		fmt.Printf("%s moves: %v\n", side, board.AvailablePositions(side))
	}
}
