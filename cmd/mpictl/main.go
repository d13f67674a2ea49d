// Command mpictl is a thin command-line front end over the mpi
// package: each subcommand parses its operands, calls one library
// operation, and prints the result in the requested radix.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/johnjohnsp1/sgxmpi"
)

// cryptoRand adapts crypto/rand.Reader to mpi.RandomSource.
type cryptoRand struct{}

func (cryptoRand) FillRandom(dst []byte) error {
	_, err := rand.Read(dst)
	return err
}

func main() {
	var radix int

	rootCmd := &cobra.Command{
		Use:   "mpictl",
		Short: "Multi-precision integer arithmetic from the command line",
	}
	rootCmd.PersistentFlags().IntVar(&radix, "radix", 16, "Input/output radix (2..16)")

	parseOperand := func(s string) (*mpi.MPI, error) {
		x := mpi.New()
		if err := mpi.ReadString(x, s, radix); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", s, err)
		}
		return x, nil
	}
	printResult := func(label string, x *mpi.MPI) error {
		s, err := mpi.WriteString(x, radix)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", label, s)
		return nil
	}

	addCmd := &cobra.Command{
		Use:   "add A B",
		Short: "X = A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.Add(x, a, b); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}

	subCmd := &cobra.Command{
		Use:   "sub A B",
		Short: "X = A - B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.Sub(x, a, b); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul A B",
		Short: "X = A * B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.Mul(x, a, b); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}

	divmodCmd := &cobra.Command{
		Use:   "divmod A B",
		Short: "Q, R = A / B, A mod B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			q, r := mpi.New(), mpi.New()
			if err := mpi.DivMod(q, r, a, b); err != nil {
				return err
			}
			if err := printResult("Q", q); err != nil {
				return err
			}
			return printResult("R", r)
		},
	}

	gcdCmd := &cobra.Command{
		Use:   "gcd A B",
		Short: "G = gcd(A, B)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			g := mpi.New()
			if err := mpi.GCD(g, a, b); err != nil {
				return err
			}
			return printResult("G", g)
		},
	}

	invmodCmd := &cobra.Command{
		Use:   "invmod A N",
		Short: "X = A^-1 mod N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			n, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.InvMod(x, a, n); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}

	expmodCmd := &cobra.Command{
		Use:   "expmod A E N",
		Short: "X = A^E mod N",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			e, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			n, err := parseOperand(args[2])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.ExpMod(x, a, e, n, nil); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}

	isprimeCmd := &cobra.Command{
		Use:   "isprime X",
		Short: "Test X for primality (Miller-Rabin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			if err := mpi.IsPrime(x, cryptoRand{}); err != nil {
				glog.Infof("isprime: %v", err)
				fmt.Println("composite")
				return nil
			}
			fmt.Println("probably prime")
			return nil
		},
	}

	var safePrime bool
	genprimeCmd := &cobra.Command{
		Use:   "genprime NBITS",
		Short: "Generate a random NBITS-bit prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nbits, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing NBITS: %w", err)
			}
			x := mpi.New()
			if err := mpi.GenPrime(x, nbits, safePrime, cryptoRand{}); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}
	genprimeCmd.Flags().BoolVar(&safePrime, "safe", false, "Generate a safe prime ((X-1)/2 also prime)")

	tobytesCmd := &cobra.Command{
		Use:   "tobytes X",
		Short: "Print X's big-endian byte encoding as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			buf := make([]byte, mpi.SizeBytes(x))
			if err := mpi.WriteBinary(x, buf); err != nil {
				return err
			}
			fmt.Printf("%x\n", buf)
			return nil
		},
	}

	frombytesCmd := &cobra.Command{
		Use:   "frombytes HEX",
		Short: "Parse a big-endian hex byte string into X and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := hexDecode(args[0])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.ReadBinary(x, buf, false); err != nil {
				return err
			}
			return printResult("X", x)
		},
	}

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divmodCmd, gcdCmd, invmodCmd,
		expmodCmd, isprimeCmd, genprimeCmd, tobytesCmd, frombytesCmd)

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("mpictl: %v", err)
		os.Exit(1)
	}
}

func hexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok := hexVal(s[2*i])
		if !ok {
			return nil, fmt.Errorf("invalid hex character %q", s[2*i])
		}
		lo, ok := hexVal(s[2*i+1])
		if !ok {
			return nil, fmt.Errorf("invalid hex character %q", s[2*i+1])
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
