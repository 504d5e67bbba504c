// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

// Command heatshrink compresses or decompresses a stream using the
// heatshrink package, reading from stdin and writing to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/woozymasta/heatshrink"
)

func main() {
	var (
		decompress = flag.Bool("d", false, "decompress stdin instead of compressing it")
		window     = flag.Uint("w", 11, "window exponent (8-15)")
		lookahead  = flag.Uint("l", 4, "lookahead exponent (4 <= l < w)")
		force      = flag.Bool("f", false, "allow writing compressed binary output to a terminal")
	)
	flag.Parse()

	if err := run(*decompress, uint8(*window), uint8(*lookahead), *force); err != nil {
		slog.Error("heatshrink run failed", "error", err)
		os.Exit(1)
	}
}

// run wires one codec instance to stdin/stdout. The codec itself is never
// touched from more than one goroutine; errgroup here only supervises the
// single pump goroutine so a future second stage (e.g. progress reporting
// on a side channel) has somewhere to hook in without restructuring this.
func run(decompress bool, w, l uint8, force bool) error {
	runID := uuid.New()
	log := slog.With("run_id", runID.String(), "w", w, "l", l)

	if !decompress && !force && isTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("refusing to write compressed binary output to a terminal (run %s); use -f to override", runID)
	}

	group, _ := errgroup.WithContext(context.Background())

	if decompress {
		log.Info("decompressing")
		dec, err := heatshrink.NewDecoder(w, l, 1<<w, nil)
		if err != nil {
			return fmt.Errorf("run %s: %w", runID, err)
		}
		group.Go(func() error {
			_, err := io.Copy(os.Stdout, heatshrink.NewDecompressReader(os.Stdin, dec))
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}
		log.Info("decompress complete")
		return nil
	}

	log.Info("compressing")
	enc, err := heatshrink.NewEncoder(w, l, nil)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}
	group.Go(func() error {
		_, err := io.Copy(os.Stdout, heatshrink.NewReader(os.Stdin, enc))
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}
	log.Info("compress complete")
	return nil
}

// isTerminal reports whether fd refers to a terminal, via the same termios
// ioctl the stdlib's term packages use under the hood.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
