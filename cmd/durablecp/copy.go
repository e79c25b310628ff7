package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/closer"
	"github.com/danmuck/closer/metrics"
)

// run copies the source to every destination and tears the destinations
// down as one aggregate, so a lost write on any of them surfaces as a
// per-destination close failure instead of vanishing.
func run(cfg runConfig) error {
	src, err := os.Open(cfg.Source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	var sinks closer.Seq[closer.Closer]
	writers := make([]io.Writer, 0, len(cfg.Destinations))
	for _, dst := range cfg.Destinations {
		f, err := closer.Create(dst)
		if err != nil {
			_ = sinks.Close()
			return fmt.Errorf("create %s: %w", dst, err)
		}
		var c closer.Closer = f
		if !cfg.Fsync {
			c = closer.Func(f.File.Close)
		}
		if cfg.Stats {
			c = metrics.Instrument("destination", c)
		}
		sinks = append(sinks, c)
		writers = append(writers, f)
	}

	out := closer.Wrap(sinks)
	defer out.MustClose()

	n, err := io.Copy(io.MultiWriter(writers...), src)
	if err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("teardown after failed copy")
		}
		return fmt.Errorf("copy: %w", err)
	}

	if err := out.Close(); err != nil {
		var seqErr *closer.SeqError
		if errors.As(err, &seqErr) {
			for _, i := range seqErr.Failed() {
				log.Error().
					Str("destination", cfg.Destinations[i]).
					Err(seqErr.Errs[i]).
					Msg("durable close failed")
			}
		}
		return err
	}

	log.Info().
		Int64("bytes", n).
		Int("destinations", len(cfg.Destinations)).
		Msg("copy complete")
	return nil
}

func printStats(w io.Writer) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), "closer_") {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
