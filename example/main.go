package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theflywheel/schash"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// A small table so growth happens early
	t, err := schash.NewWithSize[schash.StringKey](5, schash.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create table", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Table created with %d buckets\n", t.Buckets())

	words := []schash.StringKey{"apple", "banana", "cherry", "date", "elder", "fig", "grape", "apple"}
	for _, w := range words {
		t.Insert(w)
	}

	fmt.Printf("Inserted %d words, %d distinct, %d buckets after %d grows\n",
		len(words), t.Len(), t.Buckets(), t.Grows())

	for _, w := range []schash.StringKey{"banana", "kiwi"} {
		if t.Contains(w) {
			fmt.Printf("%s => present (bucket %d)\n", w, schash.HashString(string(w), t.Buckets()))
		} else {
			fmt.Printf("%s not found\n", w)
		}
	}

	t.Remove("banana")
	fmt.Printf("After removing banana: present=%v, size=%d\n", t.Contains("banana"), t.Len())

	t.MakeEmpty()
	fmt.Printf("After MakeEmpty: size=%d, buckets=%d\n", t.Len(), t.Buckets())

	fmt.Println("Example completed successfully")
}
