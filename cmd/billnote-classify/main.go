// Command billnote-classify classifies video links and resolves their
// platform source from args or stdin, printing one JSON object per input
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"io"
	"os"
	"slices"
	"strings"

	"billnote/internal/core/normalize"
	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
	"billnote/internal/core/rulepack"
	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"
)

var (
	modes   = []string{"classify", "describe", "detect", "resolve", "validate", "video-id"}
	formats = []string{"json", "msgpack"}
)

func main() {
	logger.Init(logger.FromEnv())
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Get().Error().Err(err).AnErr("cause", perr.Root(err)).Msg("billnote-classify")
		os.Exit(exitCode(err))
	}
}

type options struct {
	mode     string
	platform platform.Tag
	source   provenance.Source
	lang     language.Tag
	rules    string
	clean    bool
	format   string
}

// failure is written in place of a result when a strict mode rejects an input
type failure struct {
	Input string `json:"input"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type classified struct {
	Input       string       `json:"input"`
	Platform    platform.Tag `json:"platform"`
	DisplayName string       `json:"display_name"`
}

type resolved struct {
	VideoURL       string            `json:"video_url"`
	Platform       platform.Tag      `json:"platform,omitempty"`
	PlatformSource provenance.Source `json:"platform_source"`
	Label          string            `json:"label"`
}

type validated struct {
	VideoURL       string            `json:"video_url"`
	Platform       platform.Tag      `json:"platform"`
	PlatformSource provenance.Source `json:"platform_source"`
	provenance.Result
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	fs := flag.NewFlagSet("billnote-classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode   = fs.String("mode", "classify", "one of "+strings.Join(modes, "|"))
		tag    = fs.String("platform", "", "asserted platform tag for resolve/validate")
		source = fs.String("source", "", "claimed platform source for validate")
		lang   = fs.String("lang", "en", "output language (en, zh)")
		rules  = fs.String("rules", "", "path to a rules.json replacing the embedded table")
		clean  = fs.Bool("normalize", false, "strip zero-width and fold fullwidth characters before processing")
		format = fs.String("format", "json", "output encoding: json (one object per line) or msgpack (a stream of maps)")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad flags")
	}
	if !slices.Contains(modes, *mode) {
		return options{}, nil, perr.InvalidArgf("unknown -mode %q", *mode)
	}
	if !slices.Contains(formats, *format) {
		return options{}, nil, perr.InvalidArgf("unknown -format %q", *format)
	}
	tagLang, err := language.Parse(*lang)
	if err != nil {
		return options{}, nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad -lang %q", *lang)
	}
	return options{
		mode:     *mode,
		platform: platform.Tag(strings.TrimSpace(*tag)),
		source:   provenance.Source(strings.TrimSpace(*source)),
		lang:     tagLang,
		rules:    *rules,
		clean:    *clean,
		format:   *format,
	}, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opt, inputs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	c := platform.Default()
	if opt.rules != "" {
		pack, err := rulepack.LoadFile(opt.rules)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "load rules")
		}
		c = platform.New(pack)
	}
	c = c.WithLanguage(opt.lang)
	h := provenance.NewHandler(
		provenance.WithStrategy(provenance.NewEvidence(c)),
		provenance.WithLanguage(opt.lang),
	)

	enc := newEncoder(opt.format, stdout)
	log := logger.Named("classify")

	emit := func(in string) error {
		if opt.clean {
			in = normalize.Link(in)
		}
		out := process(opt, c, h, in)
		log.Debug().Str("mode", opt.mode).Str("input", in).Msg("processed")
		return perr.WrapIf(enc.Encode(out), perr.ErrorCodeUnavailable, "write output")
	}

	if len(inputs) > 0 {
		for _, in := range inputs {
			if err := emit(in); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := emit(line); err != nil {
			return err
		}
	}
	return perr.WrapIf(sc.Err(), perr.ErrorCodeUnavailable, "read input")
}

func process(opt options, c *platform.Classifier, h *provenance.Handler, in string) any {
	switch opt.mode {
	case "describe":
		return c.Describe(in)
	case "detect":
		info, err := c.Detect(in)
		if err != nil {
			return fail(in, err)
		}
		return info
	case "video-id":
		ref, err := c.ExtractVideoID(in)
		if err != nil {
			return fail(in, err)
		}
		return ref
	case "resolve":
		src := h.Resolve(in, opt.platform)
		return resolved{VideoURL: in, Platform: opt.platform, PlatformSource: src, Label: h.DisplayInfo(src).Label}
	case "validate":
		return validated{
			VideoURL:       in,
			Platform:       opt.platform,
			PlatformSource: opt.source,
			Result:         h.Validate(in, opt.platform, opt.source),
		}
	default:
		tag := c.Classify(in)
		return classified{Input: in, Platform: tag, DisplayName: c.DisplayName(tag)}
	}
}

func fail(in string, err error) failure {
	w := perr.WireFrom(err)
	return failure{Input: in, Code: w.Code.String(), Error: w.Message}
}

// exitCode is 2 for usage errors and 1 for everything else
func exitCode(err error) int {
	if perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		return 2
	}
	return 1
}

type encoder interface{ Encode(v any) error }

// newEncoder picks the output encoding; msgpack reuses the json field names
func newEncoder(format string, w io.Writer) encoder {
	if format == "msgpack" {
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
