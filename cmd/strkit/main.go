package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/strkit/strkit/pkg/baseenc"
	"github.com/strkit/strkit/pkg/ident"
	"github.com/strkit/strkit/pkg/stream"
)

func main() {
	// CLI flag definitions
	// Mode options
	mode := flag.String("mode", "split", "Operation: split, base32, hex, ident")
	sep := flag.String("sep", ",", "Record separator for split mode (single byte)")
	decode := flag.Bool("decode", false, "Decode instead of encode (base32/hex modes)")
	count := flag.Int("count", 1, "Number of identifiers to generate (ident mode)")

	// Performance options
	bufferSize := flag.Int("buffer", 16384, "Buffer size for the record splitter")
	maxRead := flag.Int("max-read", 4096, "Maximum read size per operation")

	// Logging options
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", false, "Enable pretty logging output")

	// Other options
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	// Version info
	const version = "0.1.0"

	// Handle version flag
	if *showVersion {
		fmt.Printf("strkit version %s\n", version)
		os.Exit(0)
	}

	// Configure zerolog
	setupLogging(*logLevel, *prettyLogs)

	// Cancel long-running modes on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "split":
		if len(*sep) != 1 {
			log.Fatal().Str("sep", *sep).Msg("Separator must be exactly one byte")
		}
		runSplit(ctx, (*sep)[0], *bufferSize, *maxRead)
	case "base32":
		runCodec(*decode, baseenc.EncodeBase32, baseenc.DecodeBase32)
	case "hex":
		runCodec(*decode, baseenc.EncodeHex, baseenc.DecodeHex)
	case "ident":
		for i := 0; i < *count; i++ {
			fmt.Println(ident.New())
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("Unknown mode")
	}
}

// runSplit streams stdin through the record splitter, printing one record
// per line.
func runSplit(ctx context.Context, sep byte, bufferSize, maxRead int) {
	splitter := stream.NewSplitter(ctx, os.Stdin, sep, bufferSize, maxRead)

	records := 0
	splitter.SplitAll(func(b []byte) {
		fmt.Println(string(b))
		records++
	}, func(err error) {
		log.Fatal().Err(err).Msg("Failed to split input")
	})

	log.Debug().Int("records", records).Msg("Split complete")
}

// runCodec encodes or decodes all of stdin in one shot.
func runCodec(decode bool, encode func([]byte) string, decodeFn func(string) ([]byte, error)) {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}

	if decode {
		out, err := decodeFn(strings.TrimSpace(string(input)))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode input")
		}
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output")
		}
		return
	}

	fmt.Println(encode(input))
}

func setupLogging(level string, pretty bool) {
	// Set log level
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Configure output format
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
