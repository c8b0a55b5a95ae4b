// SPDX-License-Identifier: MIT
// Package: kaleido/schema
//
// codec.go — JSON, YAML and msgpack bindings for Scene and Output.
//
// All three codecs go through the same wire tree (wire.go), so a scene
// persisted with one codec decodes identically with another.

package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler.
func (s Scene) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeScene(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: scene: %v: %w", err, ErrMalformed)
	}
	dec, err := decodeScene(raw)
	if err != nil {
		return err
	}
	*s = dec
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Scene) MarshalYAML() (interface{}, error) {
	return encodeScene(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scene) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("schema: scene: %v: %w", err, ErrMalformed)
	}
	dec, err := decodeScene(raw)
	if err != nil {
		return err
	}
	*s = dec
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Scene) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(encodeScene(s))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Scene) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return fmt.Errorf("schema: scene: %v: %w", err, ErrMalformed)
	}
	sc, err := decodeScene(raw)
	if err != nil {
		return err
	}
	*s = sc
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeOutput(o))
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Output) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: output: %v: %w", err, ErrMalformed)
	}
	dec, err := decodeOutput(raw)
	if err != nil {
		return err
	}
	*o = dec
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Output) MarshalYAML() (interface{}, error) {
	return encodeOutput(o), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Output) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("schema: output: %v: %w", err, ErrMalformed)
	}
	dec, err := decodeOutput(raw)
	if err != nil {
		return err
	}
	*o = dec
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o Output) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(encodeOutput(o))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *Output) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return fmt.Errorf("schema: output: %v: %w", err, ErrMalformed)
	}
	out, err := decodeOutput(raw)
	if err != nil {
		return err
	}
	*o = out
	return nil
}

// LoadSceneYAML reads a YAML (or JSON, which is valid YAML) scene document.
func LoadSceneYAML(r io.Reader) (Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// EncodeOutputMsgpack serializes an Output for binary transport.
func EncodeOutputMsgpack(o Output) ([]byte, error) {
	return msgpack.Marshal(o)
}

// DecodeOutputMsgpack is the inverse of EncodeOutputMsgpack.
func DecodeOutputMsgpack(data []byte) (Output, error) {
	var o Output
	if err := msgpack.Unmarshal(data, &o); err != nil {
		return Output{}, err
	}
	return o, nil
}
