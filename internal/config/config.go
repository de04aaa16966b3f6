// Package config reads YAML layout files into the immutable layout model.
// Missing settings fall back to defaults; structural errors (unknown key
// codes, bad layer references, ambiguous key kinds) fail the whole load.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swipekbd/swipekbd/internal/keycode"
	"github.com/swipekbd/swipekbd/internal/model"
)

// File is the layout file as present on disk.
type File struct {
	Left     []LayerDef  `yaml:"left"`
	Right    []LayerDef  `yaml:"right"`
	Settings SettingsDef `yaml:"settings"`
}

// LayerDef is one layer: a list of rows, each a list of key definitions.
type LayerDef [][]KeyDef

// KeyDef is one key definition. Exactly one kind must be declared: `key`
// (a basic key), `pointer: true`, `cmd`, or `button`.
type KeyDef struct {
	Key  string   `yaml:"key,omitempty"`
	Mods []string `yaml:"mods,omitempty"`

	North *SwipeDef `yaml:"n,omitempty"`
	East  *SwipeDef `yaml:"e,omitempty"`
	South *SwipeDef `yaml:"s,omitempty"`
	West  *SwipeDef `yaml:"w,omitempty"`

	Pointer bool     `yaml:"pointer,omitempty"`
	Cmd     string   `yaml:"cmd,omitempty"`
	Args    []string `yaml:"args,omitempty"`
	Button  string   `yaml:"button,omitempty"`

	Width float64 `yaml:"width,omitempty"`
	Label string  `yaml:"label,omitempty"`
}

// SwipeDef is one swipe action. The scalar shorthands `arrow`, `scroll`,
// `select`, `delete`, and `hide` take no parameters; the remaining forms are
// mappings with exactly one of the kind fields set.
type SwipeDef struct {
	Shorthand string `yaml:"-"`

	Key      string       `yaml:"key,omitempty"`
	ModKey   *ModKeyDef   `yaml:"modkey,omitempty"`
	Layer    *LayerRefDef `yaml:"layer,omitempty"`
	Modified string       `yaml:"modified,omitempty"`
	Cmd      string       `yaml:"cmd,omitempty"`
	Args     []string     `yaml:"args,omitempty"`
}

// ModKeyDef is a key with modifiers emitted as a swipe action.
type ModKeyDef struct {
	Key  string   `yaml:"key"`
	Mods []string `yaml:"mods,omitempty"`
}

// LayerRefDef addresses a layer for a layer-hold swipe.
type LayerRefDef struct {
	Side  string `yaml:"side"`
	Index int    `yaml:"index"`
}

// UnmarshalYAML accepts both the scalar shorthands and the mapping forms.
func (s *SwipeDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Shorthand = value.Value
		return nil
	}
	type mapping SwipeDef
	var m mapping
	if err := value.Decode(&m); err != nil {
		return err
	}
	*s = SwipeDef(m)
	return nil
}

// SettingsDef is the optional settings block. Unset fields keep their
// defaults.
type SettingsDef struct {
	HoldDelayMS      *int     `yaml:"hold-delay-ms,omitempty"`
	RepeatIntervalMS *int     `yaml:"repeat-interval-ms,omitempty"`
	SwipeDistance    *float64 `yaml:"swipe-distance,omitempty"`
	SwipeIncrement   *float64 `yaml:"swipe-increment,omitempty"`
	ScrollStep       *int     `yaml:"scroll-step,omitempty"`
	DeleteMode       *string  `yaml:"delete-mode,omitempty"`
}

// LoadFile reads and parses a layout file. An empty path loads the embedded
// default layout.
func LoadFile(path string) (*model.Layout, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read layout file: %w", err)
	}
	layout, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// Default returns the embedded default layout.
func Default() (*model.Layout, error) {
	return Load([]byte(defaultLayoutYAML))
}

// Load parses layout YAML into the model, appends the mouse layer as the
// last left layer, and validates all cross references.
func Load(data []byte) (*model.Layout, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cannot parse layout YAML: %w", err)
	}

	if len(file.Left) == 0 {
		return nil, fmt.Errorf("layout has no left layers")
	}
	if len(file.Right) == 0 {
		return nil, fmt.Errorf("layout has no right layers")
	}

	layout := &model.Layout{}

	for i, def := range file.Left {
		layer, err := buildLayer(def)
		if err != nil {
			return nil, fmt.Errorf("left layer %d: %w", i, err)
		}
		layout.Left = append(layout.Left, layer)
	}
	layout.Left = append(layout.Left, mouseLayer())

	for i, def := range file.Right {
		layer, err := buildLayer(def)
		if err != nil {
			return nil, fmt.Errorf("right layer %d: %w", i, err)
		}
		layout.Right = append(layout.Right, layer)
	}

	settings, err := buildSettings(file.Settings)
	if err != nil {
		return nil, err
	}
	layout.Settings = settings

	if err := validateLayerRefs(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func buildLayer(def LayerDef) (model.Layer, error) {
	var layer model.Layer
	for r, rowDef := range def {
		var row model.Row
		for c, keyDef := range rowDef {
			key, err := buildKey(keyDef)
			if err != nil {
				return model.Layer{}, fmt.Errorf("row %d key %d: %w", r, c, err)
			}
			row = append(row, key)
		}
		layer.Rows = append(layer.Rows, row)
	}
	return layer, nil
}

func buildKey(def KeyDef) (model.Key, error) {
	kinds := 0
	if def.Key != "" {
		kinds++
	}
	if def.Pointer {
		kinds++
	}
	if def.Cmd != "" {
		kinds++
	}
	if def.Button != "" {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("key must declare exactly one of key/pointer/cmd/button")
	}

	switch {
	case def.Pointer:
		return &model.PointerKey{WidthUnits: def.Width, LabelText: def.Label}, nil

	case def.Cmd != "":
		return &model.CommandKey{
			Cmd:        def.Cmd,
			Args:       def.Args,
			WidthUnits: def.Width,
			LabelText:  def.Label,
		}, nil

	case def.Button != "":
		btn, err := buttonFromName(def.Button)
		if err != nil {
			return nil, err
		}
		return &model.PointerButtonKey{
			Button:     btn,
			WidthUnits: def.Width,
			LabelText:  def.Label,
		}, nil
	}

	code, ok := keycode.FromName(def.Key)
	if !ok {
		return nil, fmt.Errorf("unknown key code %q", def.Key)
	}
	mods, err := buildMods(def.Mods)
	if err != nil {
		return nil, err
	}
	key := &model.BasicKey{
		Code:       code,
		Mods:       mods,
		WidthUnits: def.Width,
		LabelText:  def.Label,
	}
	for _, dir := range []struct {
		def *SwipeDef
		dst *model.SwipeAction
		tag string
	}{
		{def.North, &key.North, "n"},
		{def.East, &key.East, "e"},
		{def.South, &key.South, "s"},
		{def.West, &key.West, "w"},
	} {
		if dir.def == nil {
			continue
		}
		act, err := buildSwipe(*dir.def)
		if err != nil {
			return nil, fmt.Errorf("swipe %s: %w", dir.tag, err)
		}
		*dir.dst = act
	}
	return key, nil
}

func buildSwipe(def SwipeDef) (model.SwipeAction, error) {
	if def.Shorthand != "" {
		switch def.Shorthand {
		case "arrow":
			return model.ArrowSwipe{}, nil
		case "scroll":
			return model.ScrollSwipe{}, nil
		case "select":
			return model.SelectSwipe{}, nil
		case "delete":
			return model.DeleteSwipe{}, nil
		case "hide":
			return model.HideSwipe{}, nil
		default:
			return nil, fmt.Errorf("unknown swipe action %q", def.Shorthand)
		}
	}

	kinds := 0
	if def.Key != "" {
		kinds++
	}
	if def.ModKey != nil {
		kinds++
	}
	if def.Layer != nil {
		kinds++
	}
	if def.Modified != "" {
		kinds++
	}
	if def.Cmd != "" {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("swipe must declare exactly one action")
	}

	switch {
	case def.Key != "":
		code, ok := keycode.FromName(def.Key)
		if !ok {
			return nil, fmt.Errorf("unknown key code %q", def.Key)
		}
		return model.KeySwipe{Code: code}, nil

	case def.ModKey != nil:
		code, ok := keycode.FromName(def.ModKey.Key)
		if !ok {
			return nil, fmt.Errorf("unknown key code %q", def.ModKey.Key)
		}
		mods, err := buildMods(def.ModKey.Mods)
		if err != nil {
			return nil, err
		}
		return model.ModKeySwipe{Code: code, Mods: mods}, nil

	case def.Layer != nil:
		side, err := sideFromName(def.Layer.Side)
		if err != nil {
			return nil, err
		}
		return model.LayerHoldSwipe{Side: side, Index: def.Layer.Index}, nil

	case def.Modified != "":
		mod, ok := model.ModifierFromName(def.Modified)
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", def.Modified)
		}
		return model.ModifiedSwipe{Mod: mod}, nil

	default:
		return model.CommandSwipe{Cmd: def.Cmd, Args: def.Args}, nil
	}
}

func buildMods(names []string) ([]model.Modifier, error) {
	var mods []model.Modifier
	for _, name := range names {
		mod, ok := model.ModifierFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", name)
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

func buttonFromName(name string) (model.PointerButton, error) {
	switch name {
	case "left":
		return model.ButtonLeft, nil
	case "middle":
		return model.ButtonMiddle, nil
	case "right":
		return model.ButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown pointer button %q", name)
	}
}

func sideFromName(name string) (model.Side, error) {
	switch name {
	case "left":
		return model.SideLeft, nil
	case "right":
		return model.SideRight, nil
	default:
		return 0, fmt.Errorf("unknown side %q", name)
	}
}

func buildSettings(def SettingsDef) (model.Settings, error) {
	s := model.DefaultSettings()
	if def.HoldDelayMS != nil {
		if *def.HoldDelayMS <= 0 {
			return s, fmt.Errorf("hold-delay-ms must be positive")
		}
		s.HoldDelay = time.Duration(*def.HoldDelayMS) * time.Millisecond
	}
	if def.RepeatIntervalMS != nil {
		if *def.RepeatIntervalMS <= 0 {
			return s, fmt.Errorf("repeat-interval-ms must be positive")
		}
		s.RepeatInterval = time.Duration(*def.RepeatIntervalMS) * time.Millisecond
	}
	if def.SwipeDistance != nil {
		if *def.SwipeDistance <= 0 {
			return s, fmt.Errorf("swipe-distance must be positive")
		}
		s.SwipeDistance = *def.SwipeDistance
	}
	if def.SwipeIncrement != nil {
		if *def.SwipeIncrement <= 0 {
			return s, fmt.Errorf("swipe-increment must be positive")
		}
		s.SwipeIncrement = *def.SwipeIncrement
	}
	if def.ScrollStep != nil {
		if *def.ScrollStep <= 0 {
			return s, fmt.Errorf("scroll-step must be positive")
		}
		s.ScrollStep = *def.ScrollStep
	}
	if def.DeleteMode != nil {
		switch *def.DeleteMode {
		case "direct":
			s.DeleteMode = model.DeleteDirect
		case "select":
			s.DeleteMode = model.DeleteSelect
		default:
			return s, fmt.Errorf("unknown delete-mode %q", *def.DeleteMode)
		}
	}
	return s, nil
}

// validateLayerRefs checks every layer-hold swipe against the final layer
// counts, mouse layer included.
func validateLayerRefs(layout *model.Layout) error {
	counts := map[model.Side]int{
		model.SideLeft:  len(layout.Left),
		model.SideRight: len(layout.Right),
	}
	check := func(side model.Side, layers []model.Layer) error {
		for li, layer := range layers {
			for ri, row := range layer.Rows {
				for ci, key := range row {
					basic, ok := key.(*model.BasicKey)
					if !ok {
						continue
					}
					for _, act := range []model.SwipeAction{basic.North, basic.East, basic.South, basic.West} {
						ref, ok := act.(model.LayerHoldSwipe)
						if !ok {
							continue
						}
						if ref.Index < 0 || ref.Index >= counts[ref.Side] {
							return fmt.Errorf(
								"%s layer %d row %d key %d: layer reference %s/%d out of range",
								side, li, ri, ci, ref.Side, ref.Index)
						}
					}
				}
			}
		}
		return nil
	}
	if err := check(model.SideLeft, layout.Left); err != nil {
		return err
	}
	return check(model.SideRight, layout.Right)
}
