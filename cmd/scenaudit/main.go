package main

import "github.com/Entarogan/AOE2-Campaign-Transfer/internal/cli"

func main() {
	cli.Execute()
}
