package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/luau-tools/opfreq/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Opcode Frequency Analyzer"
	app.Description = "Tabulates instruction mnemonic frequencies across compiled scripts"
	app.Commands = []*cli.Command{
		cmd.AnalyzeCommand,
		cmd.DumpCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
