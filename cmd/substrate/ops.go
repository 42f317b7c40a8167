package main

import (
	"strconv"
	"strings"

	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/scale"
	"github.com/wippyai/substrate-codec/ss58"
	"github.com/wippyai/substrate-codec/storage"
)

func encodeOp(literals []string, hints string) (string, error) {
	values, err := parseLiterals(literals)
	if err != nil {
		return "", err
	}
	out, err := scale.Encode(values, splitList(hints, len(values)))
	if err != nil {
		return "", err
	}
	return hexString(out), nil
}

func decodeOp(data, types, hints string, version int, strict bool) ([]string, error) {
	raw, err := storage.DecodeHex(data)
	if err != nil {
		return nil, errors.ParseFailed("hex input", err)
	}

	var tags []scale.TypeTag
	if types != "" {
		for _, name := range strings.Split(types, ",") {
			tag, err := scale.ParseTypeTag(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
		}
	}

	fields, err := scale.Compile(tags, splitList(hints, len(tags)))
	if err != nil {
		return nil, err
	}
	d, err := scale.NewDecoderWithVersion(version)
	if err != nil {
		return nil, err
	}

	decode := d.DecodeFields
	if strict {
		decode = d.DecodeAll
	}
	values, err := decode(raw, fields)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = v.String()
	}
	return lines, nil
}

// accountOp renders a hex public key as SS58, or an SS58 identifier as its
// hex public key and network version.
func accountOp(input string, ecdsa bool, version int) (string, error) {
	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		key, err := storage.DecodeHex(input)
		if err != nil {
			return "", errors.ParseFailed("public key", err)
		}
		family := ss58.Sr25519
		if ecdsa {
			family = ss58.Ecdsa
		}
		return ss58.Encode(key, family, version)
	}

	key, v, err := ss58.Decode(input)
	if err != nil {
		return "", err
	}
	return hexString(key) + " version " + strconv.Itoa(int(v)), nil
}

func storageKeyOp(pallet, item string) (string, error) {
	key, err := storage.Key([]string{pallet, item})
	if err != nil {
		return "", err
	}
	return hexString(key), nil
}

// storageMapOp derives a map key. A non-empty hasher overrides the default
// Blake2_128Concat (or Identity when preHashed) for every key.
func storageMapOp(pallet, item string, keys []string, preHashed bool, hasher string) (string, error) {
	if hasher == "" {
		key, err := storage.MapKey(append([]string{pallet, item}, keys...), preHashed)
		if err != nil {
			return "", err
		}
		return hexString(key), nil
	}

	h, err := storage.ParseHasher(hasher)
	if err != nil {
		return "", err
	}
	segments := make([]storage.KeySegment, len(keys))
	for i, k := range keys {
		data, err := storage.DecodeHex(k)
		if err != nil {
			return "", err
		}
		segments[i] = storage.KeySegment{Data: data, Hasher: h}
	}
	key, err := storage.MapKeyWith(pallet, item, segments...)
	if err != nil {
		return "", err
	}
	return hexString(key), nil
}
