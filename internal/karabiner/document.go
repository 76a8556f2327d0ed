package karabiner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoProfiles reports a karabiner.json without a non-empty profiles array.
	ErrNoProfiles = errors.New("configuration has no profiles")
	// ErrProfileNotFound reports a named profile missing from karabiner.json.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNoComplexModifications reports a profile without a
	// complex_modifications object.
	ErrNoComplexModifications = errors.New("profile has no complex_modifications object")
)

var (
	errNotObject    = errors.New("not a JSON object")
	errTrailingData = errors.New("trailing data after JSON object")
)

// SpliceRules replaces complex_modifications.rules of the selected profile in
// the karabiner.json document doc and returns the re-indented document.
// An empty profile selects the first profile. Every other member keeps its
// position and value.
func SpliceRules(doc []byte, profile string, rules []Rule) ([]byte, error) {
	root, profiles, idx, prof, cm, err := locate(doc, profile)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []Rule{}
	}
	encoded, err := marshalCompact(rules)
	if err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}
	cm.set("rules", encoded)
	prof.set("complex_modifications", cm.bytes())
	profiles[idx] = prof.bytes()
	root.set("profiles", joinArray(profiles))
	out, err := indent(root.bytes())
	if err != nil {
		return nil, fmt.Errorf("format configuration: %w", err)
	}
	return out, nil
}

// CurrentRules returns the complex_modifications.rules array installed in the
// selected profile, or an empty array when the key is absent.
func CurrentRules(doc []byte, profile string) (json.RawMessage, error) {
	_, _, _, _, cm, err := locate(doc, profile)
	if err != nil {
		return nil, err
	}
	if raw, ok := cm.get("rules"); ok {
		return raw, nil
	}
	return json.RawMessage("[]"), nil
}

// ValidateDocument checks that doc has the shape SpliceRules needs.
func ValidateDocument(doc []byte, profile string) error {
	_, _, _, _, _, err := locate(doc, profile)
	return err
}

func locate(doc []byte, profile string) (root *object, profiles []json.RawMessage, idx int, prof *object, cm *object, err error) {
	root, err = decodeObject(doc)
	if err != nil {
		return nil, nil, 0, nil, nil, fmt.Errorf("decode configuration: %w", err)
	}
	rawProfiles, ok := root.get("profiles")
	if !ok {
		return nil, nil, 0, nil, nil, ErrNoProfiles
	}
	if err := json.Unmarshal(rawProfiles, &profiles); err != nil {
		return nil, nil, 0, nil, nil, fmt.Errorf("decode profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, nil, 0, nil, nil, ErrNoProfiles
	}
	idx, prof, err = selectProfile(profiles, profile)
	if err != nil {
		return nil, nil, 0, nil, nil, err
	}
	rawCM, ok := prof.get("complex_modifications")
	if !ok {
		return nil, nil, 0, nil, nil, fmt.Errorf("profile %d: %w", idx, ErrNoComplexModifications)
	}
	cm, err = decodeObject(rawCM)
	if err != nil {
		return nil, nil, 0, nil, nil, fmt.Errorf("profile %d: %w: %v", idx, ErrNoComplexModifications, err)
	}
	return root, profiles, idx, prof, cm, nil
}

func selectProfile(profiles []json.RawMessage, name string) (int, *object, error) {
	for i, raw := range profiles {
		prof, err := decodeObject(raw)
		if err != nil {
			return 0, nil, fmt.Errorf("decode profile %d: %w", i, err)
		}
		if name == "" {
			return i, prof, nil
		}
		rawName, ok := prof.get("name")
		if !ok {
			continue
		}
		var profName string
		if err := json.Unmarshal(rawName, &profName); err != nil {
			continue
		}
		if profName == name {
			return i, prof, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

// object is a JSON object that remembers member order and keeps member
// values as raw bytes.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func decodeObject(data []byte) (*object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}
	obj := &object{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		obj.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}
	return obj, nil
}

func (o *object) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

func (o *object) set(key string, raw json.RawMessage) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

func (o *object) bytes() json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, _ := marshalCompact(key)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func joinArray(items []json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(item)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
