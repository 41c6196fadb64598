package main

import "github.com/carlonluca/isogeometric-analysis/cmd"

func main() {
	cmd.Execute()
}
