// matchctl renderiza reportes de partido desde la terminal: a partir de un
// JSON ya guardado o pidiéndolo al backend.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
