package main

import (
	"fmt"
	"os"

	"github.com/IntersectLabs/supra-oracle-pull/cmd/pull"
)

func main() {
	rootCmd := pull.BuildPullCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
