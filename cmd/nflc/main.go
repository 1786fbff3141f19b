// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

// The nflc CLI decompresses, compresses, and inspects NFLC multi-block
// containers (Ultimate Spider-Man and related PS2/Xbox-era titles).
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/woozymasta/lzo"

	"github.com/UltimateSpider-Man/nflc-decomp/nflc"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	app := &cli.App{
		Name:  "nflc",
		Usage: "decompress, compress and inspect NFLC containers",
		Commands: []*cli.Command{
			decompressCommand(),
			compressCommand(),
			infoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func decompressCommand() *cli.Command {
	return &cli.Command{
		Name:      "decompress",
		Aliases:   []string{"d"},
		Usage:     "decompress an NFLC container to raw asset bytes",
		ArgsUsage: "<input.nflc> <output.bin>",
		Action: func(c *cli.Context) error {
			in, out, err := twoPaths(c)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "read %s", in)
			}

			container, err := nflc.Parse(raw)
			if err != nil {
				return errors.Wrapf(err, "parse %s", in)
			}

			data := container.Decode()
			if err := os.WriteFile(out, data, 0644); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}

			logrus.Infof("decompressed %s: %d -> %d bytes (%d chunks, layout %s)",
				in, len(raw), len(data), len(container.Chunks), container.Layout)
			return nil
		},
	}
}

func compressCommand() *cli.Command {
	return &cli.Command{
		Name:      "compress",
		Aliases:   []string{"c"},
		Usage:     "compress raw bytes into an NFLC container",
		ArgsUsage: "<input.bin> <output.nflc>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "level",
				Usage: "LZO1X compression level (1 = fast, 2-9 = better ratio)",
				Value: 1,
			},
		},
		Action: func(c *cli.Context) error {
			in, out, err := twoPaths(c)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "read %s", in)
			}

			level := c.Int("level")
			codec := func(b []byte) ([]byte, error) {
				return lzo.Compress(b, &lzo.CompressOptions{Level: level})
			}

			data, err := nflc.Encode(raw, codec)
			if err != nil {
				return errors.Wrapf(err, "encode %s", in)
			}

			if err := os.WriteFile(out, data, 0644); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}

			logrus.Infof("compressed %s: %d -> %d bytes (%.1f%%)",
				in, len(raw), len(data), 100*float64(len(data))/float64(len(raw)))
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "print the chunk listing of an NFLC container",
		ArgsUsage: "<input.nflc>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("missing input file")
			}
			in := c.Args().Get(0)

			raw, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "read %s", in)
			}

			container, err := nflc.Parse(raw)
			if err != nil {
				return errors.Wrapf(err, "parse %s", in)
			}

			fmt.Printf("file: %s\n", in)
			fmt.Printf("size: %d bytes\n", container.Size())
			fmt.Printf("layout: %s\n", container.Layout)
			fmt.Printf("total uncompressed: %d bytes\n", container.Totals.UncompressedSize)
			fmt.Printf("total compressed: %d bytes\n", container.Totals.CompressedSize)
			fmt.Printf("chunks: %d\n\n", len(container.Chunks))

			for _, ch := range container.Chunks {
				fmt.Printf("--- chunk %d ---\n", ch.Index)
				fmt.Printf("  header offset:  %#x", ch.ContainerOffset)
				if !ch.HeaderValid {
					fmt.Printf("  (unreadable)")
				}
				fmt.Println()
				fmt.Printf("  payload offset: %#x\n", ch.PayloadOffset)
				fmt.Printf("  payload length: %d bytes\n", ch.PayloadLength)
				if ch.HeaderValid {
					fmt.Printf("  declared sizes: %d compressed, %d uncompressed\n",
						ch.DeclaredCompressedSize, ch.DeclaredUncompressedSize)
				}
			}

			return nil
		},
	}
}

// twoPaths extracts the input and output arguments shared by decompress and
// compress.
func twoPaths(c *cli.Context) (string, string, error) {
	if c.NArg() < 2 {
		return "", "", errors.New("missing input/output file arguments")
	}

	return c.Args().Get(0), c.Args().Get(1), nil
}
