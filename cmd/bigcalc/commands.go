package main

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tczajka/gobig"
	"github.com/tczajka/gobig/modular"
)

func parseOperand(name, s string) (*gobig.IBig, error) {
	v, err := gobig.ParseIBig(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s %q", name, s)
	}
	return v, nil
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add a b",
		Short: "Print a+b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("a", args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand("b", args[1])
			if err != nil {
				return err
			}
			fmt.Println(a.Add(b))
			return nil
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub a b",
		Short: "Print a-b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("a", args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand("b", args[1])
			if err != nil {
				return err
			}
			fmt.Println(a.Sub(b))
			return nil
		},
	}
}

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul a b",
		Short: "Print a*b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("a", args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand("b", args[1])
			if err != nil {
				return err
			}
			fmt.Println(a.Mul(b))
			return nil
		},
	}
}

func newDivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div a b",
		Short: "Print a/b and a%b, truncated toward zero",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("a", args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand("b", args[1])
			if err != nil {
				return err
			}
			if b.IsZero() {
				return errors.New("division by zero")
			}
			q, r := a.QuoRem(b)
			fmt.Printf("%v r %v\n", q, r)
			return nil
		},
	}
}

func newPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow base exponent",
		Short: "Print base**exponent, for a non-negative exponent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseOperand("base", args[0])
			if err != nil {
				return err
			}
			exp, err := gobig.ParseUBig(args[1])
			if err != nil {
				return errors.Wrap(err, "parse exponent")
			}
			fmt.Println(base.Pow(exp))
			return nil
		},
	}
}

func newModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mod base exponent modulus",
		Short: "Print base**exponent mod modulus",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := gobig.ParseUBig(args[0])
			if err != nil {
				return errors.Wrap(err, "parse base")
			}
			exp, err := gobig.ParseUBig(args[1])
			if err != nil {
				return errors.Wrap(err, "parse exponent")
			}
			m, err := gobig.ParseUBig(args[2])
			if err != nil {
				return errors.Wrap(err, "parse modulus")
			}
			ring := modular.NewRing(m)
			result := ring.Element(base).Pow(exp)
			fmt.Println(result.Residue())
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	var radix uint32
	cmd := &cobra.Command{
		Use:   "parse value",
		Short: "Parse a signed integer and print it back in decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if radix == 0 {
				v, err := parseOperand("value", args[0])
				if err != nil {
					return err
				}
				fmt.Println(v)
				return nil
			}
			v, err := gobig.ParseIBigRadix(args[0], radix)
			if err != nil {
				return errors.Wrapf(err, "parse value %q in radix %d", args[0], radix)
			}
			fmt.Println(v)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&radix, "radix", 0, "radix to parse in (2-36; 0 auto-detects a 0b/0o/0x prefix, default decimal)")
	return cmd
}

func newHumanizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "humanize value",
		Short: "Print a signed integer with thousands separators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseOperand("value", args[0])
			if err != nil {
				return err
			}
			decimal := v.InRadix(10).String()
			bi := new(big.Int)
			if _, ok := bi.SetString(decimal, 10); !ok {
				return errors.Errorf("internal: could not re-parse %q", decimal)
			}
			fmt.Println(humanize.BigComma(bi))
			return nil
		},
	}
}
