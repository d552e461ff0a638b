package main

import (
	"flag"
	"fmt"
	"os"

	ap "github.com/lukaszgryglicki/apmath"
)

// tetrate evaluates the finite power tower z^z^...^z (height n, right
// associative) at a chosen decimal precision.
//
//	tetrate -z "1+i" -n 10 -digits 60

func main() {
	zStr := flag.String("z", "0.5+0.5i", "tower base, e.g. \"1+i\" or \"1.5\"")
	n := flag.Int("n", 8, "tower height (number of occurrences of z)")
	digits := flag.Uint("digits", 50, "decimal precision (significant digits)")
	verbose := flag.Bool("v", false, "print every intermediate tower")
	flag.Parse()

	if *n < 1 {
		fmt.Fprintln(os.Stderr, "n must be at least 1")
		os.Exit(2)
	}
	z, err := ap.ParseDecComplex(*zStr, uint32(*digits))
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse z:", err)
		os.Exit(2)
	}

	// Build right to left: t_1 = z, t_k = z^t_{k-1}.
	t := z
	for k := 2; k <= *n; k++ {
		t = z.Pow(t)
		if *verbose {
			fmt.Printf("height %d: %s\n", k, t)
		}
		if t.IsNaN() || t.IsInf() {
			fmt.Printf("tower diverged at height %d: %s\n", k, t)
			return
		}
	}
	fmt.Printf("%s tetrated %d times = %s\n", *zStr, *n, t)
}
