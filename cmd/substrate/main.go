package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/substrate-codec/internal/config"
	"github.com/wippyai/substrate-codec/scale"
	"github.com/wippyai/substrate-codec/ss58"
	"github.com/wippyai/substrate-codec/storage"
)

type encodeCmd struct {
	Hints  string   `arg:"-H,--hints" help:"comma separated hints, one per value (u8..u128, i8..i128, c, a); empty entries use the default"`
	Values []string `arg:"positional,required" help:"value literals: none, bool:true, int:-5, bytes:0x01, str:text"`
}

type decodeCmd struct {
	Types   string `arg:"-t,--types,required" help:"comma separated target types: none bool int bytes string, or codes 0 2 3 16 17"`
	Hints   string `arg:"-H,--hints" help:"comma separated hints, one per type"`
	Network *int   `arg:"-n,--network" help:"network version for account fields"`
	Strict  bool   `arg:"--strict" help:"fail when bytes remain after the last field"`
	Data    string `arg:"positional,required" help:"hex encoded input"`
}

type accountCmd struct {
	Ecdsa   bool   `arg:"--ecdsa" help:"treat the key as a 33 byte compressed ecdsa key"`
	Network *int   `arg:"-n,--network" help:"network version"`
	Input   string `arg:"positional,required" help:"0x prefixed public key to encode, or an SS58 identifier to decode"`
}

type storageKeyCmd struct {
	Pallet string `arg:"positional,required"`
	Item   string `arg:"positional,required"`
}

type storageMapCmd struct {
	PreHashed bool     `arg:"--pre-hashed" help:"append keys unchanged instead of hashing them"`
	Hasher    string   `arg:"--hasher" help:"hasher for every key: identity twox64concat twox128 twox256 blake2_128 blake2_128concat blake2_256"`
	Pallet    string   `arg:"positional,required"`
	Item      string   `arg:"positional,required"`
	Keys      []string `arg:"positional,required" help:"hex encoded map keys"`
}

type interactiveCmd struct{}

type cliArgs struct {
	Encode      *encodeCmd      `arg:"subcommand:encode" help:"encode values to SCALE"`
	Decode      *decodeCmd      `arg:"subcommand:decode" help:"decode SCALE to values"`
	Account     *accountCmd     `arg:"subcommand:account" help:"convert between public keys and SS58 identifiers"`
	StorageKey  *storageKeyCmd  `arg:"subcommand:storage-key" help:"derive a storage value key"`
	StorageMap  *storageMapCmd  `arg:"subcommand:storage-map" help:"derive a storage map key"`
	Interactive *interactiveCmd `arg:"subcommand:interactive" help:"interactive mode with TUI"`

	LogLevel  string `arg:"--log-level" help:"overrides SUBSTRATE_LOG_LEVEL"`
	LogFormat string `arg:"--log-format" help:"overrides SUBSTRATE_LOG_FORMAT"`
}

func (cliArgs) Description() string {
	return "substrate encodes and decodes SCALE values, SS58 identifiers and storage keys\n"
}

func (cliArgs) Epilogue() string {
	var b bytes.Buffer
	b.WriteString("Environment:\n")
	config.Usage(&b)
	return b.String()
}

func main() {
	var args cliArgs
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Read(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Override(args.LogLevel, args.LogFormat)
	if err := cfg.Validate(); err != nil {
		p.Fail(err.Error())
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	scale.SetLogger(log.Named("scale"))
	ss58.SetLogger(log.Named("ss58"))
	storage.SetLogger(log.Named("storage"))

	out := newPrinter(os.Stdout)
	if err := run(&args, cfg, out); err != nil {
		log.Debug("command failed", zap.Error(err))
		out.fail(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args *cliArgs, cfg *config.C, out *printer) error {
	switch {
	case args.Encode != nil:
		res, err := encodeOp(args.Encode.Values, args.Encode.Hints)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		out.result(res)

	case args.Decode != nil:
		c := args.Decode
		lines, err := decodeOp(c.Data, c.Types, c.Hints, network(c.Network, cfg), c.Strict)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		out.result(strings.Join(lines, "\n"))

	case args.Account != nil:
		c := args.Account
		res, err := accountOp(c.Input, c.Ecdsa, network(c.Network, cfg))
		if err != nil {
			return fmt.Errorf("account: %w", err)
		}
		out.result(res)

	case args.StorageKey != nil:
		res, err := storageKeyOp(args.StorageKey.Pallet, args.StorageKey.Item)
		if err != nil {
			return fmt.Errorf("storage-key: %w", err)
		}
		out.result(res)

	case args.StorageMap != nil:
		c := args.StorageMap
		res, err := storageMapOp(c.Pallet, c.Item, c.Keys, c.PreHashed, c.Hasher)
		if err != nil {
			return fmt.Errorf("storage-map: %w", err)
		}
		out.result(res)

	case args.Interactive != nil:
		return runInteractive(cfg)
	}
	return nil
}

// network returns the flag value when set, else the configured default.
func network(flag *int, cfg *config.C) int {
	if flag != nil {
		return *flag
	}
	return cfg.SS58Version
}

func newLogger(cfg *config.C) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if strings.EqualFold(cfg.LogFormat, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
