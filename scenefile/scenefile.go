/*
Package scenefile reads scene descriptions and builds trees of scene objects
from them.

A scene description is a YAML document describing one object per level:

	name: map
	kind: map
	children:
	  - name: osm
	    kind: layer
	  - name: weather
	    kind: layer
	    attrs:
	      opacity: "0.75"
	    children:
	      - name: grid
	        kind: feature

Objects are addressed by slash-separated paths of names, starting at the root,
e.g. "map/weather/grid". Names therefore have to be unique among siblings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/geoscene/scene"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'geoscene.scenefile'.
func tracer() tracing.Trace {
	return tracing.Select("geoscene.scenefile")
}

// ErrEmptyScene is returned if a scene description does not contain a root object.
var ErrEmptyScene = errors.New("scene description is empty")

// ErrNodeNotFound is returned if a path does not address an object of a scene.
var ErrNodeNotFound = errors.New("no scene object at path")

// ErrInvalidName is returned for objects without a name, with a name containing
// a slash or with a name already used by a sibling.
var ErrInvalidName = errors.New("invalid scene object name")

// PathSeparator separates object names in paths.
const PathSeparator = "/"

// Spec describes a scene object and, recursively, its children.
type Spec struct {
	Name     string            `yaml:"name"`
	Kind     string            `yaml:"kind,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []*Spec           `yaml:"children,omitempty"`
}

// Info is the payload of scene objects built from a Spec.
type Info struct {
	Name  string
	Kind  string
	Attrs map[string]string
}

func (info Info) String() string {
	if info.Kind == "" {
		return info.Name
	}
	return info.Name + ":" + info.Kind
}

// Node is a scene object built from a scene description.
type Node = scene.Object[Info]

// Decode reads a scene description.
func Decode(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading scene: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyScene
	}
	spec := &Spec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("error decoding scene: %w", err)
	}
	if spec.Name == "" && len(spec.Children) == 0 {
		return nil, ErrEmptyScene
	}
	return spec, nil
}

// Encode writes a scene description for the tree below root.
func Encode(w io.Writer, root *Node) error {
	data, err := yaml.Marshal(SpecOf(root))
	if err != nil {
		return fmt.Errorf("error encoding scene: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// SpecOf creates a scene description from a tree of scene objects.
func SpecOf(root *Node) *Spec {
	spec := &Spec{
		Name:  root.Payload.Name,
		Kind:  root.Payload.Kind,
		Attrs: root.Payload.Attrs,
	}
	for _, ch := range root.Children() {
		spec.Children = append(spec.Children, SpecOf(ch))
	}
	return spec
}

// Build creates a tree of scene objects for a scene description.
func Build(spec *Spec) (*Node, error) {
	if spec == nil {
		return nil, ErrEmptyScene
	}
	if err := checkName(spec.Name); err != nil {
		return nil, err
	}
	node := scene.NewObject(Info{Name: spec.Name, Kind: spec.Kind, Attrs: spec.Attrs})
	names := make(map[string]bool, len(spec.Children))
	for _, chspec := range spec.Children {
		if chspec == nil {
			continue
		}
		if names[chspec.Name] {
			return nil, fmt.Errorf("%w: %q used twice below %q", ErrInvalidName, chspec.Name, spec.Name)
		}
		names[chspec.Name] = true
		ch, err := Build(chspec)
		if err != nil {
			return nil, err
		}
		if err := node.AddChild(ch); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("scenefile: built %v with %d children", node.Payload, node.ChildCount())
	return node, nil
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: object without a name", ErrInvalidName)
	}
	if strings.Contains(name, PathSeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, PathSeparator)
	}
	return nil
}

// Load reads a scene description and builds the tree of scene objects for it.
func Load(r io.Reader) (*Node, error) {
	spec, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Build(spec)
}

// LoadFile reads the scene description in file path, or from stdin if path is "-".
func LoadFile(path string) (*Node, error) {
	if path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	root, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	tracer().Infof("scenefile: loaded %d objects from %s", root.Size(), path)
	return root, nil
}

// Lookup finds the object at path within the tree of root. The first name of
// path has to be the name of root. An empty path addresses root.
func Lookup(root *Node, path string) (*Node, error) {
	path = strings.Trim(path, PathSeparator)
	if path == "" {
		return root, nil
	}
	names := strings.Split(path, PathSeparator)
	if names[0] != root.Payload.Name {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, path)
	}
	node := root
	for _, name := range names[1:] {
		var next *Node
		for _, ch := range node.Children() {
			if ch.Payload.Name == name {
				next = ch
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, path)
		}
		node = next
	}
	return node, nil
}

// PathOf returns the path of node, starting at the root of its tree.
func PathOf(node *Node) string {
	var names []string
	for n := node; n != nil; n = n.Parent() {
		names = append(names, n.Payload.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator)
}
