// Command heredocscan drives the heredoc/nowdoc external scanner over a
// source file and prints the resulting token stream, exercising the same
// create/scan/serialize/deserialize cycle the real incremental parser
// would across a file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
