// Command pathmap analyzes a text-fixture map: openness per movement type,
// main chokes of the start locations, and point-to-point distances.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
