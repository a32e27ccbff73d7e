// SPDX-License-Identifier: MIT

// Command classify computes class breaks and classifications over numbers
// read from a file or stdin.
//
//	classify breaks --algorithm natural --classes 5 values.txt
//	classify split --breaks 0,10,100 --column 2 --header counties.csv
//	classify unique codes.txt
//	classify membership --range 0:10 --range 5:20 values.txt
//	classify run --config classify.yaml counties.csv
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
