// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// MCPServersKey is the top-level field holding the server map.
	MCPServersKey = "mcpServers"

	// ServerConfigKey is the top-level field written by the default document.
	ServerConfigKey = "serverConfig"
)

var (
	// ErrMCPServersNotObject is returned when the document carries an
	// "mcpServers" field that is neither an object nor an empty value.
	ErrMCPServersNotObject = errors.New(`"mcpServers" is not a JSON object`)

	// ErrInvalidDescriptor is returned by [ConfigDocument.SetServer] for a
	// descriptor without a command or an args list.
	ErrInvalidDescriptor = errors.New("invalid server launch descriptor")
)

// ConfigDocument is the desktop application config file.
//
// Only "mcpServers" is typed. Every other top-level field is kept as raw JSON
// in an opaque bag and written back unchanged, and so is every server entry
// other than the one being set. Key order is not preserved.
type ConfigDocument struct {
	// servers holds the "mcpServers" entries. nil means the field is absent.
	servers map[string]json.RawMessage

	// extra holds all other top-level fields verbatim.
	extra map[string]json.RawMessage
}

// NewDefaultDocument builds the minimal document written when the config file
// does not exist yet. It carries a single "serverConfig" field with the
// platform shell descriptor for goos.
func NewDefaultDocument(goos string) (*ConfigDocument, error) {
	raw, err := marshalNoEscape(NewShellDescriptor(goos))
	if err != nil {
		return nil, err
	}

	return &ConfigDocument{
		extra: map[string]json.RawMessage{ServerConfigKey: raw},
	}, nil
}

// ParseConfigDocument decodes data into a [ConfigDocument]. data must hold a
// JSON object.
func ParseConfigDocument(data []byte) (*ConfigDocument, error) {
	doc := new(ConfigDocument)
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *ConfigDocument) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("config document is null")
	}

	d.servers = nil
	if raw, ok := fields[MCPServersKey]; ok {
		delete(fields, MCPServersKey)

		if !isEmptyValue(raw) {
			if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
				return ErrMCPServersNotObject
			}
			servers := make(map[string]json.RawMessage)
			if err := json.Unmarshal(raw, &servers); err != nil {
				return fmt.Errorf("decode %q: %w", MCPServersKey, err)
			}
			d.servers = servers
		}
	}

	d.extra = fields
	return nil
}

// MarshalJSON implements [json.Marshaler]. "mcpServers" is emitted only when
// it has been set or was present in the source document.
func (d *ConfigDocument) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.extra)+1)
	for k, v := range d.extra {
		fields[k] = v
	}

	if d.servers != nil {
		raw, err := marshalNoEscape(d.servers)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", MCPServersKey, err)
		}
		fields[MCPServersKey] = raw
	}

	return marshalNoEscape(fields)
}

// Encode serializes the document with two-space indentation and a trailing
// newline.
func (d *ConfigDocument) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// HasServers reports whether the document has an "mcpServers" object.
func (d *ConfigDocument) HasServers() bool {
	return d.servers != nil
}

// SetServer creates "mcpServers" when missing and stores descriptor under
// name, replacing any previous entry with that name.
func (d *ConfigDocument) SetServer(name string, descriptor ServerLaunchDescriptor) error {
	if !descriptor.Valid() {
		return fmt.Errorf("%w for server %q", ErrInvalidDescriptor, name)
	}

	raw, err := marshalNoEscape(descriptor)
	if err != nil {
		return fmt.Errorf("encode server %q: %w", name, err)
	}

	if d.servers == nil {
		d.servers = make(map[string]json.RawMessage)
	}
	d.servers[name] = raw

	return nil
}

// isEmptyValue reports whether raw is null, false, "" or numeric zero. Such
// an "mcpServers" value is treated as absent and replaced.
func isEmptyValue(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0
	default:
		return false
	}
}

// marshalNoEscape is json.Marshal without HTML escaping, so that strings
// such as "<", ">" and "&" in preserved fields are written back as they were.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
