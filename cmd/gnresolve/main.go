// Package main provides the gnresolve CLI application.
// gnresolve resolves scientific names against a canonical-form index.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
