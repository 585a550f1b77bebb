// dexcode inspects raw method-body bytecode: it walks the instruction
// stream, disassembles it and optionally memoizes listings in a local
// cache keyed by the body digest.
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andesvm/dexcode/internal/listing"
	"github.com/andesvm/dexcode/pkg/db"
	"github.com/andesvm/dexcode/pkg/db/pebble"
	"github.com/andesvm/dexcode/pkg/log"
)

func main() {
	var (
		logLevel string
		cacheDir string
	)

	rootCmd := &cobra.Command{
		Use:   "dexcode",
		Short: "Decode and inspect register-bytecode method bodies",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache", "", "directory for the listing cache (disabled when empty)")

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Disassemble a method body stored as little-endian 16-bit code units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			log.Init(log.Options{LogLevel: level, Type: log.ConsoleLogger})
			return dump(args[0], cacheDir)
		},
	}
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(path, cacheDir string) error {
	stream, err := readCodeUnits(path)
	if err != nil {
		return err
	}
	digest := listing.DigestOf(stream)
	log.Tool.Debug().Str("digest", digest.String()).Int("code_units", len(stream)).Msg("loaded method body")

	var cache db.KVStore
	if cacheDir != "" {
		cache, err = pebble.NewStore(cacheDir)
		if err != nil {
			return fmt.Errorf("opening listing cache: %w", err)
		}
		defer cache.Close()

		if cached, err := cache.Get(digest[:]); err == nil {
			log.Tool.Debug().Msg("listing cache hit")
			fmt.Print(string(cached))
			return nil
		}
	}

	l, err := listing.Build(stream, nil)
	if err != nil {
		return fmt.Errorf("disassembling %s: %w", path, err)
	}
	text := l.String()
	fmt.Print(text)

	if cache != nil {
		if err := cache.Put(digest[:], []byte(text)); err != nil {
			log.Tool.Warn().Err(err).Msg("could not store listing in cache")
		}
	}
	return nil
}

// readCodeUnits loads a file of little-endian 16-bit code units.
func readCodeUnits(path string) ([]uint16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%s: odd byte count %d, not a code-unit stream", path, len(raw))
	}
	stream := make([]uint16, len(raw)/2)
	for i := range stream {
		stream[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return stream, nil
}
