// Package main provides the STDE command line interface.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("STDE %s\n", version)
		return
	}

	fmt.Println("STDE - Stochastic Hessian-Trace Estimation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/laplacian for an end-to-end estimation run.")
}
