// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tai64

import (
	"github.com/vmihailenco/msgpack/v5"
)

// labels travel in msgpack messages as their packed binary form, so a
// stored label keeps the fixed width and byte order guarantees and is
// checked again on the way in

var (
	_ msgpack.CustomEncoder = Tai{}
	_ msgpack.CustomDecoder = (*Tai)(nil)
	_ msgpack.CustomEncoder = TaiN{}
	_ msgpack.CustomDecoder = (*TaiN)(nil)
	_ msgpack.CustomEncoder = TaiA{}
	_ msgpack.CustomDecoder = (*TaiA)(nil)
)

// EncodeMsgpack - emit the packed form as a msgpack binary value
func (tai Tai) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(tai.Pack())
}

// DecodeMsgpack - read a msgpack binary value, checked as UnpackTai
func (tai *Tai) DecodeMsgpack(dec *msgpack.Decoder) error {
	buffer, err := dec.DecodeBytes()
	if nil != err {
		return err
	}
	t, err := UnpackTai(buffer)
	if nil != err {
		return err
	}
	*tai = t
	return nil
}

// EncodeMsgpack - emit the packed form as a msgpack binary value
func (tain TaiN) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(tain.Pack())
}

// DecodeMsgpack - read a msgpack binary value, checked as UnpackTaiN
func (tain *TaiN) DecodeMsgpack(dec *msgpack.Decoder) error {
	buffer, err := dec.DecodeBytes()
	if nil != err {
		return err
	}
	t, err := UnpackTaiN(buffer)
	if nil != err {
		return err
	}
	*tain = t
	return nil
}

// EncodeMsgpack - emit the packed form as a msgpack binary value
func (taia TaiA) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(taia.Pack())
}

// DecodeMsgpack - read a msgpack binary value, checked as UnpackTaiA
func (taia *TaiA) DecodeMsgpack(dec *msgpack.Decoder) error {
	buffer, err := dec.DecodeBytes()
	if nil != err {
		return err
	}
	t, err := UnpackTaiA(buffer)
	if nil != err {
		return err
	}
	*taia = t
	return nil
}
