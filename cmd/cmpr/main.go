package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cmpr-kit/cmpr"
	"github.com/cmpr-kit/cmpr/analyze"
	"github.com/cmpr-kit/cmpr/fileworker"
	"github.com/cmpr-kit/cmpr/huffman"
	"github.com/cmpr-kit/cmpr/rle"
)

func main() {
	app := cli.App{
		Usage: "Compress and decompress files with RLE or Huffman coding",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file, writing FILE plus the codec postfix",
				Action:    compressFile,
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "alg",
						Value: "rle",
						Usage: "compression algorithm, \"rle\" or \"huffman\"",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a file; the codec is picked from the postfix",
				Action:    decompressFile,
				ArgsUsage: "FILE",
			},
			{
				Name:      "stats",
				Usage:     "Report how well each algorithm compresses a file",
				Action:    reportStats,
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "chart",
						Usage: "also write a symbol-frequency chart to `SVG`",
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func codecByName(name string) (cmpr.Codec, error) {
	switch name {
	case "rle":
		return rle.Codec{}, nil
	case "huffman":
		return huffman.Codec{}, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", name)
}

func requireOneFile(context *cli.Context) (string, error) {
	if context.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one FILE argument")
	}
	return context.Args().First(), nil
}

func compressFile(context *cli.Context) error {
	path, err := requireOneFile(context)
	if err != nil {
		return err
	}
	codec, err := codecByName(context.String("alg"))
	if err != nil {
		return err
	}

	dstPath, err := fileworker.CompressFile(codec, path)
	if err != nil {
		return err
	}
	fmt.Println(dstPath)
	return nil
}

func decompressFile(context *cli.Context) error {
	path, err := requireOneFile(context)
	if err != nil {
		return err
	}
	codec, ok := fileworker.ForPostfix(path)
	if !ok {
		return cmpr.ErrBadPostfix.WithMessage(path)
	}

	dstPath, err := fileworker.DecompressFile(codec, path)
	if err != nil {
		return err
	}
	fmt.Println(dstPath)
	return nil
}

func reportStats(context *cli.Context) error {
	path, err := requireOneFile(context)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	reports, err := analyze.Measure(path, data, fileworker.Codecs())
	if err != nil {
		return err
	}
	if err := analyze.WriteCSV(reports, os.Stdout); err != nil {
		return err
	}

	if chartPath := context.String("chart"); chartPath != "" {
		chartFile, err := os.Create(chartPath)
		if err != nil {
			return err
		}
		defer chartFile.Close()
		return analyze.FrequencyChart(data, chartFile)
	}
	return nil
}
