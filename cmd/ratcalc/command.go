package main

import (
	"fmt"
	"strconv"

	"github.com/QuangTung97/ratcalc"
	"github.com/QuangTung97/ratcalc/internal/logger"
	"github.com/urfave/cli/v2"
)

func intArgs(c *cli.Context, n int) ([]int64, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("usage: %s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage)
	}
	values := make([]int64, n)
	for i := range values {
		v, err := strconv.ParseInt(c.Args().Get(i), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", c.Args().Get(i), err)
		}
		values[i] = v
	}
	return values, nil
}

func oneRational(c *cli.Context) (ratcalc.Rational, error) {
	args, err := intArgs(c, 2)
	if err != nil {
		return ratcalc.Rational{}, err
	}
	return ratcalc.NewRational(args[0], args[1])
}

func twoRationals(c *cli.Context) (ratcalc.Rational, ratcalc.Rational, error) {
	args, err := intArgs(c, 4)
	if err != nil {
		return ratcalc.Rational{}, ratcalc.Rational{}, err
	}
	a, err := ratcalc.NewRational(args[0], args[1])
	if err != nil {
		return ratcalc.Rational{}, ratcalc.Rational{}, err
	}
	b, err := ratcalc.NewRational(args[2], args[3])
	if err != nil {
		return ratcalc.Rational{}, ratcalc.Rational{}, err
	}
	logger.Verbosef("%s %s %s", c.Command.Name, a, b)
	return a, b, nil
}

func newCmd(c *cli.Context) error {
	r, err := oneRational(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "value:\t%s\n", r)
	fmt.Fprintf(c.App.Writer, "numerator:\t%d\n", r.Numerator())
	fmt.Fprintf(c.App.Writer, "denominator:\t%d\n", r.Denominator())
	return nil
}

func mulCmd(c *cli.Context) error {
	a, b, err := twoRationals(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, a.Mul(b))
	return nil
}

func addCmd(c *cli.Context) error {
	a, b, err := twoRationals(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, a.Add(b))
	return nil
}

func subCmd(c *cli.Context) error {
	a, b, err := twoRationals(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, a.Sub(b))
	return nil
}

func divCmd(c *cli.Context) error {
	a, b, err := twoRationals(c)
	if err != nil {
		return err
	}
	q, err := a.Div(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, q)
	return nil
}

func recipCmd(c *cli.Context) error {
	r, err := oneRational(c)
	if err != nil {
		return err
	}
	logger.Verbosef("recip %s", r)
	recip, err := r.Reciprocal()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, recip)
	return nil
}

func gcdCmd(c *cli.Context) error {
	args, err := intArgs(c, 2)
	if err != nil {
		return err
	}
	logger.Debugf("gcd %d %d", args[0], args[1])
	fmt.Fprintln(c.App.Writer, ratcalc.GCD(args[0], args[1]))
	return nil
}

func lcmCmd(c *cli.Context) error {
	args, err := intArgs(c, 2)
	if err != nil {
		return err
	}
	logger.Debugf("lcm %d %d", args[0], args[1])
	fmt.Fprintln(c.App.Writer, ratcalc.LCM(args[0], args[1]))
	return nil
}
