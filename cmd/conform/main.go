// Command conform converts brat standoff annotation files to the con
// line:word annotation format.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/corpustools/conform/core/brat"
	"github.com/corpustools/conform/core/convert"
	"github.com/corpustools/conform/core/errors"
	"github.com/corpustools/conform/core/textpos"
	"github.com/corpustools/conform/internal/batch"
	"github.com/corpustools/conform/internal/fileutil"
	"github.com/corpustools/conform/internal/logging"
	"github.com/corpustools/conform/internal/validation"
)

const version = "0.2.0"

// CLI defines the command-line interface for conform.
var CLI struct {
	// Global flags
	Verbose   bool   `help:"Enable debug logging." short:"v"`
	LogFormat string `help:"Log output format (text or json)." enum:"text,json" default:"text"`

	Convert ConvertCmd `cmd:"" help:"Convert one annotation file to con format"`
	Batch   BatchCmd   `cmd:"" help:"Convert every annotation/text pair in a directory"`
	Check   CheckCmd   `cmd:"" help:"Validate an annotation file without converting"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a single annotation file.
type ConvertCmd struct {
	Ann  string `arg:"" help:"Path to the brat annotation file." type:"existingfile"`
	Text string `help:"Path to the source text file (default: annotation path with a .txt extension)." type:"path"`
	Out  string `help:"Output path (default: stdout)." type:"path"`
}

func (c *ConvertCmd) Run() error {
	if err := validation.ValidatePath(c.Ann); err != nil {
		return fmt.Errorf("invalid annotation path: %w", err)
	}
	if c.Out != "" {
		if err := validation.ValidatePath(c.Out); err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
	}

	textPath := c.Text
	if textPath == "" {
		found, err := batch.FindTextFor(c.Ann)
		if err != nil {
			return err
		}
		textPath = found
	} else if _, err := os.Stat(textPath); err != nil {
		return errors.NewNotFound("text file", textPath)
	}

	text, err := fileutil.ReadFileAuto(textPath)
	if err != nil {
		return err
	}
	ann, err := fileutil.ReadFileAuto(c.Ann)
	if err != nil {
		return err
	}

	doc := textpos.NewDocument(string(text))
	reporter := convert.ReporterFunc(func(msg string) {
		logging.SkippedLine(c.Ann, msg)
	})

	res, err := convert.Brat(doc, string(ann), reporter)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Print(res.Output)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(res.Output), 0644); err != nil {
		return errors.NewIO("write", c.Out, err)
	}
	logging.DocumentConverted(c.Ann, doc.Fingerprint(), res.Annotations)
	return nil
}

// BatchCmd converts a directory of annotation/text pairs.
type BatchCmd struct {
	In  string `arg:"" help:"Input directory holding .ann/.txt pairs." type:"existingdir"`
	Out string `arg:"" help:"Output directory for .con files and the conversion log." type:"path"`

	CopyText bool   `help:"Also copy consumed text files to the output directory." short:"c"`
	Workers  int    `help:"Number of documents converted concurrently (default: GOMAXPROCS)."`
	ReportDB string `name:"report-db" help:"Record per-file conversion stats in this SQLite database." type:"path"`
}

func (c *BatchCmd) Run() error {
	if err := validation.ValidatePath(c.Out); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	result, err := batch.Run(context.Background(), batch.Options{
		InputDir:  c.In,
		OutputDir: c.Out,
		CopyText:  c.CopyText,
		Workers:   c.Workers,
		ReportDB:  c.ReportDB,
	})
	if err != nil {
		return err
	}

	fmt.Println(result)
	for _, fr := range result.Files {
		if fr.Err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", fr.Pair.AnnPath, fr.Err)
		}
	}
	return nil
}

// CheckCmd validates an annotation file and reports malformed lines.
type CheckCmd struct {
	Ann string `arg:"" help:"Path to the brat annotation file." type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	data, err := fileutil.ReadFileAuto(c.Ann)
	if err != nil {
		return err
	}

	var malformed []string
	valid := 0
	for _, line := range strings.Split(string(data), "\n") {
		if brat.IsSkippable(line) {
			continue
		}
		if brat.Valid(line) {
			valid++
			continue
		}
		malformed = append(malformed, line)
	}

	fmt.Printf("%s: %d valid annotation line(s)\n", c.Ann, valid)
	if len(malformed) == 0 {
		return nil
	}
	for _, line := range malformed {
		fmt.Printf("  malformed: %q\n", line)
	}
	return errors.NewValidation("annotation file",
		fmt.Sprintf("%d malformed line(s)", len(malformed)))
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("conform version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("conform"),
		kong.Description("Converter for brat standoff annotations to the con format"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelInfo
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
