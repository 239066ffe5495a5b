package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vape/core"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"comma":     ',',
	"period":    '.',
}

// keysByName indexes tcell key names in lower case ("enter", "esc", "up", "ctrl-c")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the YAML layout of a keymap override
type keymapFile struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only keys present in the document are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "keymap parse")
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]core.InputCode, len(f.Keys)),
		Runes: make(map[rune]core.InputCode, len(f.Runes)),
	}

	for name, action := range f.Keys {
		k, ok := keysByName[strings.ToLower(name)]
		if !ok {
			return nil, errors.Errorf("[keys] unknown key name: %q", name)
		}
		code, err := resolveAction(action)
		if err != nil {
			return nil, errors.Wrapf(err, "[keys] key %q", name)
		}
		kt.Keys[k] = code
	}

	for name, action := range f.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, errors.Wrapf(err, "[runes] key %q", name)
		}
		code, err := resolveAction(action)
		if err != nil {
			return nil, errors.Wrapf(err, "[runes] key %q", name)
		}
		kt.Runes[r] = code
	}

	return kt, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return toLower(runes[0]), nil
	}
	return 0, errors.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (core.InputCode, error) {
	code, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("unknown action: %q (known: %s)", name, strings.Join(ActionNames(), ", "))
	}
	return code, nil
}
