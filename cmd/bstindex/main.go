// Command bstindex exercises the bstindex package: it times bulk operations
// on a tree of integer keys and prints small trees.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
