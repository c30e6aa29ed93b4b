//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The chromagrow viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/viewer` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless generation use `go run ./cmd/chromagrow`.")
	os.Exit(2)
}
