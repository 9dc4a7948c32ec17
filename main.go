package main

import "github.com/naka-gawa/repo-commits/cmd"

func main() {
	cmd.Execute()
}
