package tq_test

import (
	"fmt"

	"github.com/motoki317/tq"
)

func Example() {
	// (production code should not ignore errors)
	bookReviews, _ := tq.New[string, string](1024)

	// Review some books.
	bookReviews.Set("Adventures of Huckleberry Finn", "My favorite book.")
	bookReviews.Set("Grimms' Fairy Tales", "Masterpiece.")
	bookReviews.Set("Pride and Prejudice", "Very enjoyable.")
	bookReviews.Set("The Adventures of Sherlock Holmes", "Eye lyked it alot.")

	// Check for a specific one.
	if !bookReviews.Contains("Les Misérables") {
		fmt.Printf("We've got %d reviews, but Les Misérables ain't one.\n", bookReviews.Len())
	}

	// This review has a lot of spelling mistakes, let's delete it.
	bookReviews.Delete("The Adventures of Sherlock Holmes")

	// Look up the values associated with some keys.
	for _, book := range []string{"Pride and Prejudice", "Alice's Adventure in Wonderland"} {
		if review, ok := bookReviews.Get(book); ok {
			fmt.Printf("%s: %s\n", book, review)
		} else {
			fmt.Printf("%s is unreviewed.\n", book)
		}
	}
	// Output:
	// We've got 4 reviews, but Les Misérables ain't one.
	// Pride and Prejudice: Very enjoyable.
	// Alice's Adventure in Wonderland is unreviewed.
}

func ExampleCache_Entry() {
	playerStats, _ := tq.New[string, int](32)

	// Insert a key only if it doesn't already exist.
	playerStats.Entry("health").OrInsert(100)

	// Update a key, guarding against the key possibly not being set.
	stat := playerStats.Entry("attack").OrInsert(100)
	*stat += 42

	attack, _ := playerStats.Get("attack")
	fmt.Println(attack)
	health, _ := playerStats.Get("health")
	fmt.Println(health)
	// Output:
	// 142
	// 100
}

func ExampleCache_All() {
	cache, _ := tq.New[string, int](8)
	cache.Set("a", 1)
	cache.Set("b", 2)

	for key, value := range cache.All() {
		fmt.Println(key, value)
	}
	// Output:
	// b 2
	// a 1
}
