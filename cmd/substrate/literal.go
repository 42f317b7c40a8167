package main

import (
	"strconv"
	"strings"

	substrate "github.com/wippyai/substrate-codec"
	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/internal/hexutil"
	"github.com/wippyai/substrate-codec/storage"
)

// parseLiteral reads a value literal: none, bool:<b>, int:<n>, bytes:0x<hex>,
// str:<text>. Anything else is taken as a string.
func parseLiteral(s string) (substrate.Value, error) {
	if s == "none" {
		return substrate.None(), nil
	}
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return substrate.String(s), nil
	}
	switch kind {
	case "bool":
		b, err := strconv.ParseBool(rest)
		if err != nil {
			return substrate.Value{}, errors.ParseFailed("bool literal", err)
		}
		return substrate.Bool(b), nil
	case "int":
		i, err := strconv.ParseInt(rest, 0, 64)
		if err != nil {
			return substrate.Value{}, errors.ParseFailed("int literal", err)
		}
		return substrate.Int(i), nil
	case "bytes":
		b, err := storage.DecodeHex(rest)
		if err != nil {
			return substrate.Value{}, errors.ParseFailed("bytes literal", err)
		}
		return substrate.Bytes(b), nil
	case "str":
		return substrate.String(rest), nil
	}
	return substrate.String(s), nil
}

func parseLiterals(ss []string) ([]substrate.Value, error) {
	values := make([]substrate.Value, len(ss))
	for i, s := range ss {
		v, err := parseLiteral(s)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{"value[" + strconv.Itoa(i) + "]"}
			}
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// splitList splits a comma separated list into exactly n entries. An empty
// list yields n empty entries.
func splitList(s string, n int) []string {
	if s == "" {
		return make([]string, n)
	}
	return strings.Split(s, ",")
}

func hexString(b []byte) string {
	return hexutil.Encode(b)
}
