package main

import (
	"context"
	"fmt"
	"os"

	"github.com/conlog/conlog/cli"
	"github.com/conlog/conlog/log"
	"github.com/conlog/conlog/pkg"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// Failures before the sink is installed fall back to stderr.
		if log.Installed() {
			log.Error(pkg.Name, err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
