package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	k "github.com/hyprpal/kbgen/internal/karabiner"
)

func TestRulesAreDeterministic(t *testing.T) {
	first, err := k.Encode(File())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := k.Encode(File())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("catalog encoding differs between runs:\n%s", cmp.Diff(string(first), string(second)))
	}
	if diff := cmp.Diff(Rules(), Rules()); diff != "" {
		t.Fatalf("Rules() differs between calls:\n%s", diff)
	}
}

func TestEveryManipulatorDoesSomething(t *testing.T) {
	for _, rule := range Rules() {
		if rule.Description == "" {
			t.Fatalf("rule without description: %s", spew.Sdump(rule))
		}
		if len(rule.Manipulators) == 0 {
			t.Fatalf("rule %q has no manipulators", rule.Description)
		}
		for i, m := range rule.Manipulators {
			if len(m.To) == 0 && len(m.ToIfAlone) == 0 && len(m.ToAfterKeyUp) == 0 {
				t.Fatalf("rule %q manipulator %d has no effect: %s", rule.Description, i, spew.Sdump(m))
			}
			if m.From.KeyCode == "" {
				t.Fatalf("rule %q manipulator %d has no trigger", rule.Description, i)
			}
		}
	}
}

func TestEveryLayerHasATrigger(t *testing.T) {
	set := map[string]bool{}
	used := map[string]bool{}
	for _, rule := range Rules() {
		for _, m := range rule.Manipulators {
			for _, a := range m.To {
				if sv, ok := a.(k.SetVariable); ok && sv.Value == k.On {
					set[sv.Name] = true
				}
			}
			for _, c := range m.Conditions {
				if v, ok := c.(k.OnVariable); ok {
					used[v.Name] = true
					if v.Value != k.On && v.Value != k.Off {
						t.Fatalf("rule %q compares %s to %d", rule.Description, v.Name, v.Value)
					}
				}
			}
		}
	}
	for _, vk := range k.VirtualKeys {
		if !set[string(vk)] {
			t.Errorf("no manipulator sets %s", vk)
		}
		if !used[string(vk)] {
			t.Errorf("no manipulator is gated on %s", vk)
		}
	}
}

// Rules are matched in order, so an unconditional layer switch would shadow
// any later manipulator on the same key.
func TestLayerTriggersAreNotShadowed(t *testing.T) {
	triggerKeys := map[k.KeyCode]bool{}
	for _, tr := range triggers {
		triggerKeys[tr.key] = true
	}
	for _, rule := range Rules() {
		for _, m := range rule.Manipulators {
			if len(m.Conditions) == 0 {
				continue
			}
			if triggerKeys[m.From.KeyCode] {
				t.Errorf("rule %q remaps layer switch %q", rule.Description, m.From.KeyCode)
			}
		}
	}
}

func TestNoDuplicateTriggersPerCondition(t *testing.T) {
	seen := map[string]string{}
	for _, rule := range Rules() {
		for _, m := range rule.Manipulators {
			cond, err := k.Encode(m.Conditions)
			if err != nil {
				t.Fatalf("encode conditions: %v", err)
			}
			from, err := k.Encode(m.From)
			if err != nil {
				t.Fatalf("encode from: %v", err)
			}
			key := strings.TrimSpace(string(cond)) + "|" + strings.TrimSpace(string(from))
			if prev, ok := seen[key]; ok {
				t.Errorf("rule %q repeats a trigger already used by %q", rule.Description, prev)
			}
			seen[key] = rule.Description
		}
	}
}

func TestNumberLayerCoversDigits(t *testing.T) {
	got := map[k.KeyCode]bool{}
	for _, m := range numberLayer() {
		for _, a := range m.To {
			got[a.(k.SendKey).KeyCode] = true
		}
	}
	for _, code := range k.Numerals {
		if !got[code] {
			t.Errorf("digit %s missing from number layer", code)
		}
	}
}

func TestFileTitle(t *testing.T) {
	file := File()
	if file.Title != Title {
		t.Fatalf("unexpected title %q", file.Title)
	}
	if got, want := len(file.Rules), len(Rules()); got != want {
		t.Fatalf("File() has %d rules, want %d", got, want)
	}
}

func BenchmarkEncodeCatalog(b *testing.B) {
	file := File()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := k.Encode(file); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSpliceCatalog(b *testing.B) {
	doc := []byte(`{"global":{},"profiles":[{"name":"Default profile","complex_modifications":{"parameters":{},"rules":[]},"devices":[]}]}`)
	rules := Rules()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := k.SpliceRules(doc, "", rules); err != nil {
			b.Fatal(err)
		}
	}
}
