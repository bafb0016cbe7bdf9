package main

import (
	"fmt"
	"io"
	"os"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/utl/bits"
	"github.com/hupe1980/utl/hexconv"
	"github.com/hupe1980/utl/hexlog"
	"github.com/hupe1980/utl/internal/conv"
)

// =============================================================================
// DUMP AND CONVERSION COMMANDS
// =============================================================================

// readInput reads a file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

func newHexdumpCmd() *cobra.Command {
	var (
		withAddr bool
		base     uint64
	)
	cmd := &cobra.Command{
		Use:   "hexdump <file|->",
		Short: "Print a file as hex with an ASCII gutter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				logger.LogDump(cmd.Context(), args[0], 0, err)
				return err
			}

			opts := []hexlog.Option{
				hexlog.WithWriter(cmd.OutOrStdout()),
				hexlog.WithBaseAddress(base),
			}
			if withAddr {
				err = hexlog.HexWithAddr(data, opts...)
			} else {
				err = hexlog.Hex(data, opts...)
			}
			logger.LogDump(cmd.Context(), args[0], len(data), err)
			return err
		},
	}
	cmd.Flags().BoolVarP(&withAddr, "addr", "a", false, "Prefix lines with addresses")
	cmd.Flags().Uint64Var(&base, "base", 0, "Address of the first byte")
	return cmd
}

// setBits sets the listed bit positions in data. Every position must fall
// inside data.
func setBits(data []byte, set []uint) error {
	rb := roaring.New()
	for _, p := range set {
		p32, err := conv.Uint64ToUint32(uint64(p))
		if err != nil {
			return err
		}
		rb.Add(p32)
	}
	if n := bits.FromPositions(rb, data); uint64(n) != rb.GetCardinality() {
		return fmt.Errorf("%w: set position past %d bits", hexlog.ErrBitRange, len(data)*8)
	}
	return nil
}

func newBitsCmd() *cobra.Command {
	var (
		nbits     int
		pos       int
		positions bool
		set       []uint
		shift     int
	)
	cmd := &cobra.Command{
		Use:   "bits <hex>",
		Short: "Print bits of hex-encoded data",
		Long: `Decode the hex argument and print nbits bits starting at bit offset pos.
Bits are numbered from the least significant bit of the first byte.

--set turns on the listed bit positions and --shift then shifts the whole
buffer left as one little-endian integer before printing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := hexconv.DecodeHex(args[0])
			if len(set) > 0 {
				if err := setBits(data, set); err != nil {
					return err
				}
			}
			if shift < 0 {
				return fmt.Errorf("invalid shift %d", shift)
			}
			if shift >= len(data)*8 {
				clear(data)
			} else {
				for range shift {
					bits.ShiftLeft(data)
				}
			}

			if nbits < 0 {
				nbits = len(data)*8 - pos
			}

			err := hexlog.Bits(data, nbits, pos, hexlog.WithWriter(cmd.OutOrStdout()))
			logger.LogDump(cmd.Context(), "argument", nbits, err)
			if err != nil {
				return err
			}

			if positions {
				rb, err := bits.Positions(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "set: %d %v\n", rb.GetCardinality(), rb.ToArray())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&nbits, "len", "n", -1, "Number of bits (default: all from pos)")
	cmd.Flags().IntVarP(&pos, "pos", "p", 0, "Bit offset of the first bit")
	cmd.Flags().BoolVar(&positions, "positions", false, "Also list the positions of set bits")
	cmd.Flags().UintSliceVar(&set, "set", nil, "Bit positions to set before printing")
	cmd.Flags().IntVar(&shift, "shift", 0, "Shift the data left by this many bits before printing")
	return cmd
}

func newHex2BinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex2bin <hex>",
		Short: "Decode hex text and write the raw bytes to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(hexconv.DecodeHex(args[0]))
			return err
		},
	}
}

func newBin2HexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bin2hex <file|->",
		Short: "Encode a file as lowercase hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexconv.EncodeHex(data))
			return nil
		},
	}
}
