package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mgmeyers/font2bitmap/canvas"
	"github.com/mgmeyers/font2bitmap/converter"
	"github.com/mgmeyers/font2bitmap/formatters"
	"github.com/mgmeyers/font2bitmap/logging"
	"github.com/mgmeyers/font2bitmap/preview"
	"golang.org/x/sync/errgroup"
)

var args struct {
	Config kong.ConfigFlag `help:"Load options from a JSON file"`

	FontPath string   `required:"" type:"path" help:"Path to the font file (e.g., RobotoMono-Medium.ttf)"`
	FontName string   `required:"" help:"Name of the font (e.g., RobotoMono)"`
	Height   []int    `required:"" sep:"," help:"Height of the font in pixels. Several comma-separated heights produce one artifact each"`
	Output   string   `required:"" short:"o" type:"path" help:"Output file path. Must contain {height} when several heights are given"`
	Format   string   `short:"f" default:"${default_format}" help:"Output format (${formats})"`
	Subsets  []string `sep:"," default:"ascii" help:"Comma-separated list of character subsets (ascii, latin, digits, cyrillic, punctuation)"`
	Symbols  string   `help:"A string of additional characters to include"`

	LetterSpacing int `default:"1" help:"Letter spacing"`
	WordSpacing   int `default:"-1" help:"Word spacing. -1 derives it from the height"`

	Preview        string `type:"path" help:"Also write a PNG or JPEG preview sheet of the glyphs"`
	PreviewScale   int    `default:"4" help:"Preview magnification"`
	PreviewQuality int    `default:"90" help:"Preview quality. Only applies to jpg images"`

	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFile  string `type:"path" help:"Write logs to a rotating file instead of stderr"`
}

type result struct {
	job     job
	text    string
	preview []byte
}

func main() {
	kong.Parse(&args,
		kong.Name("font2bitmap"),
		kong.Description("Convert font glyphs into 1-bit bitmaps for embedded displays."),
		kong.Vars{
			"formats":        strings.Join(formatters.Names(), ", "),
			"default_format": formatters.DefaultFormat,
		},
		kong.Configuration(kong.JSON, "font2bitmap.json", "~/.config/font2bitmap.json"),
	)

	logger, err := logging.New(args.LogLevel, args.LogFile)
	endIfErr(err)

	if _, err := os.Stat(args.FontPath); err != nil {
		endIfErr(fmt.Errorf("font file not found at %s", args.FontPath))
	}

	format, err := formatters.Lookup(args.Format)
	if err != nil {
		endIfErr(fmt.Errorf("unsupported format %q (expected one of %s)", args.Format, strings.Join(formatters.Names(), ", ")))
	}

	charsets, err := converter.ParseCharsets(args.Subsets)
	endIfErr(err)

	jobs, err := planJobs(args.FontName, args.Height, args.Output, args.Preview)
	endIfErr(err)

	results := make([]result, len(jobs))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			res, err := runJob(j, charsets, format, logger.With(slog.Int("height", j.height)))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	endIfErr(g.Wait())

	artifacts := make([]artifact, 0, len(results)*2)
	for _, res := range results {
		artifacts = append(artifacts, artifact{path: res.job.output, data: []byte(res.text)})
		if res.preview != nil {
			artifacts = append(artifacts, artifact{path: res.job.preview, data: res.preview})
		}
	}

	endIfErr(writeArtifacts(artifacts))

	for _, res := range results {
		fmt.Printf("Output successfully written to %s\n", res.job.output)
		if res.preview != nil {
			fmt.Printf("Preview successfully written to %s\n", res.job.preview)
		}
	}
}

// runJob converts the font at one height and renders its artifacts in
// memory. Every job has its own rasterizer, so jobs never share a typeface
// or a surface.
func runJob(j job, charsets []converter.Charset, format formatters.Formatter, logger *slog.Logger) (result, error) {
	font, err := converter.ConvertFont(canvas.New(), converter.Options{
		FontPath:      args.FontPath,
		FontName:      j.name,
		Height:        j.height,
		Subsets:       charsets,
		Symbols:       []rune(args.Symbols),
		LetterSpacing: args.LetterSpacing,
		WordSpacing:   wordSpacing(args.WordSpacing, j.height),
		Logger:        logger,
	})
	if err != nil {
		return result{}, err
	}

	text, err := format(font)
	if err != nil {
		return result{}, err
	}

	res := result{job: j, text: text}

	if j.preview != "" {
		opts := preview.DefaultOptions()
		opts.Scale = args.PreviewScale

		img, err := preview.Render(font, opts)
		if err != nil {
			return result{}, err
		}

		var buf bytes.Buffer
		if err := preview.Encode(&buf, img, j.preview, args.PreviewQuality); err != nil {
			return result{}, err
		}
		res.preview = buf.Bytes()
	}

	logger.Info("converted",
		slog.String("font", font.Name),
		slog.Int("width", font.Width),
		slog.Int("symbols", font.SymbolCount()),
		slog.Int("subsets", len(font.Subsets)))

	return res, nil
}
