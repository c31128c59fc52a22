package main

import (
	"os"

	"github.com/QuangTung97/ratcalc/internal/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	logger.SetLevel(logger.INFO)
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ratcalc"
	app.Usage = "Exact rational arithmetic on NUM DEN integer pairs."
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
	}
	app.Before = func(c *cli.Context) error {
		logger.SetLevel(c.Int("log"))
		logger.SetOutput(c.App.ErrWriter)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:            "new",
			Aliases:         []string{"n"},
			Usage:           "Reduce a fraction and print its parts",
			SkipFlagParsing: true,
			ArgsUsage:       "NUM DEN",
			Action:          newCmd,
		},
		{
			Name:            "mul",
			Usage:           "Multiply two fractions",
			SkipFlagParsing: true,
			ArgsUsage:       "NUM1 DEN1 NUM2 DEN2",
			Action:          mulCmd,
		},
		{
			Name:            "add",
			Usage:           "Add two fractions",
			SkipFlagParsing: true,
			ArgsUsage:       "NUM1 DEN1 NUM2 DEN2",
			Action:          addCmd,
		},
		{
			Name:            "sub",
			Usage:           "Subtract the second fraction from the first",
			SkipFlagParsing: true,
			ArgsUsage:       "NUM1 DEN1 NUM2 DEN2",
			Action:          subCmd,
		},
		{
			Name:            "div",
			Usage:           "Divide the first fraction by the second",
			SkipFlagParsing: true,
			ArgsUsage:       "NUM1 DEN1 NUM2 DEN2",
			Action:          divCmd,
		},
		{
			Name:            "recip",
			Usage:           "Invert a fraction",
			SkipFlagParsing: true,
			ArgsUsage:       "NUM DEN",
			Action:          recipCmd,
		},
		{
			Name:            "gcd",
			Usage:           "Greatest common divisor of two integers",
			SkipFlagParsing: true,
			ArgsUsage:       "A B",
			Action:          gcdCmd,
		},
		{
			Name:            "lcm",
			Usage:           "Least common multiple of two integers",
			SkipFlagParsing: true,
			ArgsUsage:       "A B",
			Action:          lcmCmd,
		},
	}
	return app
}
