// Command odz compresses and decompresses files using the odz format
// (format version 2): "ODZ" magic, a version byte, an 8-byte original
// size, then one or more LZ77+Huffman or stored blocks.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"odz"
)

func main() {
	app := &cli.App{
		Name:  "odz",
		Usage: "a block-oriented LZ77+Huffman compressor",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Aliases:   []string{"c"},
				Usage:     "compress a file",
				ArgsUsage: "INPUT OUTPUT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "level",
						Value: "default",
						Usage: "fast|default|best",
					},
				},
				Action: runCompress,
			},
			{
				Name:      "decompress",
				Aliases:   []string{"d"},
				Usage:     "decompress a file",
				ArgsUsage: "INPUT OUTPUT",
				Action:    runDecompress,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("odz: %s", err)
	}
}

func parseLevel(s string) (odz.CompressionLevel, error) {
	switch s {
	case "fast":
		return odz.Fast, nil
	case "", "default":
		return odz.Default, nil
	case "best":
		return odz.Best, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}

func runCompress(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("usage: odz compress INPUT OUTPUT", 2)
	}
	level, err := parseLevel(c.String("level"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	in, err := os.Open(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer out.Close()

	opts := &odz.Options{
		Level:    level,
		Progress: progressReporter(),
	}
	if cerr := odz.Compress(out, in, info.Size(), opts); cerr != nil {
		fmt.Fprintln(os.Stderr)
		return cli.Exit(cerr.Error(), 1)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

func runDecompress(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("usage: odz decompress INPUT OUTPUT", 2)
	}

	in, err := os.Open(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer out.Close()

	opts := &odz.Options{Progress: progressReporter()}
	if cerr := odz.Decompress(out, in, opts); cerr != nil {
		fmt.Fprintln(os.Stderr)
		return cli.Exit(cerr.Error(), 1)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

func progressReporter() odz.Progress {
	return func(processed, total uint64) bool {
		pct := 100.0
		if total > 0 {
			pct = 100 * float64(processed) / float64(total)
		}
		fmt.Fprintf(os.Stderr, "\r  %d / %d bytes (%.1f%%)", processed, total, pct)
		return false
	}
}
