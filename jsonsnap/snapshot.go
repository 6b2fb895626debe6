// Package jsonsnap is a compact binary snapshot format for a parsed
// *json.Value tree: a tag byte per node, varint-packed lengths and counts,
// and an optional outer S2 compression envelope.
//
// It exists so a tree can be persisted or shipped between processes without
// re-parsing JSON text on the other end. The tape-and-compressed-block idea
// is grounded on minio-simdjson-go's parsed_serialize.go in the retrieval
// pack, which frames a parsed document the same way and offers S2/zstd
// block compression via github.com/klauspost/compress; the field-packing
// discipline (a tag byte followed by varint-length fields) is grounded on
// piniondb-store's PutBuffer/GetBuffer in the same pack.
package jsonsnap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/s2"

	jsondom "github.com/AeonJh/leptjson-study"
)

const (
	tagNull byte = iota
	tagFalse
	tagTrue
	tagNumber
	tagString
	tagArray
	tagObject
)

const (
	formatUncompressed byte = iota
	formatS2
)

// Marshal encodes v into the snapshot format. When compress is true the
// encoded body is wrapped in an S2 stream; Unmarshal detects which was used
// from the leading format byte, so callers never need to remember.
func Marshal(v *jsondom.Value, compress bool) ([]byte, error) {
	raw := encodeValue(nil, v)
	if !compress {
		return append([]byte{formatUncompressed}, raw...), nil
	}
	c, err := compressS2(raw)
	if err != nil {
		return nil, err
	}
	return append([]byte{formatS2}, c...), nil
}

// Unmarshal decodes a snapshot produced by Marshal back into a fresh
// *json.Value tree.
func Unmarshal(data []byte) (*jsondom.Value, error) {
	if len(data) == 0 {
		return nil, errors.New("jsonsnap: empty input")
	}
	body := data[1:]
	switch data[0] {
	case formatUncompressed:
	case formatS2:
		raw, err := decompressS2(body)
		if err != nil {
			return nil, err
		}
		body = raw
	default:
		return nil, fmt.Errorf("jsonsnap: unknown format byte %d", data[0])
	}
	v, rest, err := decodeValue(body)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.New("jsonsnap: trailing bytes after value")
	}
	return v, nil
}

func compressS2(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressS2(data []byte) ([]byte, error) {
	r := s2.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}

func appendUvarint(buf []byte, n uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	sz := binary.PutUvarint(tmp[:], n)
	return append(buf, tmp[:sz]...)
}

func appendVarintString(buf []byte, s string) []byte {
	buf = appendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func encodeValue(buf []byte, v *jsondom.Value) []byte {
	switch v.Type() {
	case jsondom.Null:
		return append(buf, tagNull)
	case jsondom.False:
		return append(buf, tagFalse)
	case jsondom.True:
		return append(buf, tagTrue)
	case jsondom.Number:
		buf = append(buf, tagNumber)
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v.GetNumber()))
		return append(buf, tmp[:]...)
	case jsondom.String:
		buf = append(buf, tagString)
		return appendVarintString(buf, v.GetString())
	case jsondom.Array:
		buf = append(buf, tagArray)
		n := v.GetArraySize()
		buf = appendUvarint(buf, uint64(n))
		for i := 0; i < n; i++ {
			buf = encodeValue(buf, v.GetArrayElement(i))
		}
		return buf
	case jsondom.Object:
		buf = append(buf, tagObject)
		n := v.GetObjectSize()
		buf = appendUvarint(buf, uint64(n))
		for i := 0; i < n; i++ {
			buf = appendVarintString(buf, v.GetObjectKey(i))
			buf = encodeValue(buf, v.GetObjectValue(i))
		}
		return buf
	default:
		panic("jsonsnap: value with invalid type tag")
	}
}

func decodeUvarint(data []byte) (uint64, []byte, error) {
	n, sz := binary.Uvarint(data)
	if sz <= 0 {
		return 0, nil, errors.New("jsonsnap: invalid varint")
	}
	return n, data[sz:], nil
}

func decodeVarintString(data []byte) (string, []byte, error) {
	n, rest, err := decodeUvarint(data)
	if err != nil {
		return "", nil, err
	}
	if uint64(len(rest)) < n {
		return "", nil, errors.New("jsonsnap: truncated string")
	}
	return string(rest[:n]), rest[n:], nil
}

func decodeValue(data []byte) (*jsondom.Value, []byte, error) {
	if len(data) == 0 {
		return nil, nil, errors.New("jsonsnap: truncated value")
	}
	tag, rest := data[0], data[1:]
	v := jsondom.New()
	switch tag {
	case tagNull:
		return v, rest, nil
	case tagFalse:
		v.SetBoolean(false)
		return v, rest, nil
	case tagTrue:
		v.SetBoolean(true)
		return v, rest, nil
	case tagNumber:
		if len(rest) < 8 {
			return nil, nil, errors.New("jsonsnap: truncated number")
		}
		bits := binary.LittleEndian.Uint64(rest[:8])
		v.SetNumber(math.Float64frombits(bits))
		return v, rest[8:], nil
	case tagString:
		s, rest2, err := decodeVarintString(rest)
		if err != nil {
			return nil, nil, err
		}
		v.SetString(s)
		return v, rest2, nil
	case tagArray:
		n, rest2, err := decodeUvarint(rest)
		if err != nil {
			return nil, nil, err
		}
		v.SetArray(int(n))
		for i := uint64(0); i < n; i++ {
			var ev *jsondom.Value
			ev, rest2, err = decodeValue(rest2)
			if err != nil {
				return nil, nil, err
			}
			slot := v.PushBackArrayElement()
			jsondom.Move(slot, ev)
		}
		return v, rest2, nil
	case tagObject:
		n, rest2, err := decodeUvarint(rest)
		if err != nil {
			return nil, nil, err
		}
		v.SetObject(int(n))
		for i := uint64(0); i < n; i++ {
			var key string
			key, rest2, err = decodeVarintString(rest2)
			if err != nil {
				return nil, nil, err
			}
			var mv *jsondom.Value
			mv, rest2, err = decodeValue(rest2)
			if err != nil {
				return nil, nil, err
			}
			slot := v.SetObjectValue(key)
			jsondom.Move(slot, mv)
		}
		return v, rest2, nil
	default:
		return nil, nil, fmt.Errorf("jsonsnap: unknown tag byte %d", tag)
	}
}
