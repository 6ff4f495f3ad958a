package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"lexicon/pkg/dictionary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	language string
	timeout  time.Duration
	baseURL  string
	flat     bool
	verbose  bool
}

// fetchFunc performs one lookup and returns what should be printed
type fetchFunc func(ctx context.Context, c *dictionary.Client, word, language string, flat bool) (any, error)

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "dictlookup",
		Short:         "Look words up in the Free Dictionary API and print JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.language, "lang", "l", dictionary.DefaultLanguage, "language of the word, e.g. en, es, pt-BR")
	flags.DurationVar(&opts.timeout, "timeout", dictionary.DefaultTimeout, "timeout of the lookup, 0 disables it")
	flags.StringVar(&opts.baseURL, "base-url", dictionary.DefaultBaseURL, "dictionary API host")
	flags.BoolVar(&opts.flat, "flat", false, "always print a list, even for a single item")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		lookupCmd("definition", "Definitions grouped by part of speech", opts,
			func(ctx context.Context, c *dictionary.Client, word, language string, flat bool) (any, error) {
				r, err := c.FetchDefinition(ctx, word, language)
				return shape(r, err, flat)
			}),
		lookupCmd("synonyms", "Synonyms of every definition", opts,
			func(ctx context.Context, c *dictionary.Client, word, language string, flat bool) (any, error) {
				r, err := c.FetchSynonyms(ctx, word, language)
				return shape(r, err, flat)
			}),
		lookupCmd("antonyms", "Antonyms of every definition", opts,
			func(ctx context.Context, c *dictionary.Client, word, language string, flat bool) (any, error) {
				r, err := c.FetchAntonyms(ctx, word, language)
				return shape(r, err, flat)
			}),
		lookupCmd("phonetics", "Pronunciations and audio links", opts,
			func(ctx context.Context, c *dictionary.Client, word, language string, flat bool) (any, error) {
				r, err := c.FetchPhonetics(ctx, word, language)
				return shape(r, err, flat)
			}),
		lookupCmd("raw", "The API response as received", opts,
			func(ctx context.Context, c *dictionary.Client, word, language string, _ bool) (any, error) {
				return c.FetchRaw(ctx, word, language)
			}),
	)

	return root
}

func lookupCmd(name, short string, opts *options, fetch fetchFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " WORD",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if opts.verbose {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer logger.Sync() //nolint:errcheck
			}

			client := dictionary.NewClient(
				dictionary.WithBaseURL(opts.baseURL),
				dictionary.WithTimeout(opts.timeout),
				dictionary.WithLogger(logger),
			)

			out, err := fetch(cmd.Context(), client, args[0], opts.language, opts.flat)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

// shape picks the collapsed or the flat form of a result
func shape[T any](r dictionary.Result[T], err error, flat bool) (any, error) {
	if err != nil {
		return nil, err
	}
	if flat {
		items := r.Items()
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	return r, nil
}

func printJSON(w io.Writer, v any) error {
	var out []byte
	if raw, ok := v.(json.RawMessage); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("format response: %w", err)
		}
		out = buf.Bytes()
	} else {
		var err error
		if out, err = json.MarshalIndent(v, "", "  "); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	}

	_, err := fmt.Fprintln(w, string(out))
	return err
}
