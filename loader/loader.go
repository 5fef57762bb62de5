// Package loader imports schema module units into a weld.Assembly.
//
// A unit is one discovered file: either a YAML manifest carrying type
// definitions and ordering rules, or a raw .graphql/.gql file whose whole
// content is the type definitions. Units carrying Go values (resolver and
// directive sets cannot live in a file) are built as Unit literals and
// applied directly. The unit's identifier is its base filename without
// extension.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"go.appointy.com/weld"
	"gocloud.dev/blob"
	"gopkg.in/yaml.v3"
)

// Unit is one schema module to be registered. All fragment fields are
// optional; absent ones register nothing.
type Unit struct {
	Name       string
	TypeDefs   interface{}
	Resolvers  map[string]interface{}
	Directives map[string]interface{}
	After      []string
	Before     []string
	First      bool
	Last       bool
}

// DuplicateUnitError is returned when two units claim the same identifier,
// regardless of which fragment kinds they carry.
type DuplicateUnitError struct {
	ID string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("loader: module unit %q already imported", e.ID)
}

// Option configures directory and bucket loading.
type Option func(*options)

type options struct {
	camelCase bool
}

// WithCamelCaseIDs derives lowerCamel identifiers from file names, so
// user_profile.yaml registers as userProfile.
func WithCamelCaseIDs() Option {
	return func(o *options) { o.camelCase = true }
}

// Apply registers everything a unit carries: its fragments under the unit's
// identifier, then its ordering rules. A unit whose identifier is already
// known to the assembly, under any kind, is rejected before any of its
// fragments are registered.
func Apply(a *weld.Assembly, u Unit) error {
	if u.Name == "" {
		return errors.New("loader: module unit has no identifier")
	}
	if a.HasAny(u.Name) {
		return &DuplicateUnitError{ID: u.Name}
	}

	if u.TypeDefs != nil {
		if err := a.Register(weld.KindDefinition, u.Name, u.TypeDefs); err != nil {
			return err
		}
	}
	if u.Resolvers != nil {
		if err := a.Register(weld.KindResolver, u.Name, u.Resolvers); err != nil {
			return err
		}
	}
	if u.Directives != nil {
		if err := a.Register(weld.KindDirective, u.Name, u.Directives); err != nil {
			return err
		}
	}

	a.RunAfter(u.Name, u.After...)
	a.RunBefore(u.Name, u.Before...)
	if u.First {
		a.SortFirst(u.Name)
	}
	if u.Last {
		a.SortLast(u.Name)
	}
	return nil
}

// Units applies several Go-authored units in order, stopping at the first
// failure.
func Units(a *weld.Assembly, units ...Unit) error {
	for _, u := range units {
		if err := Apply(a, u); err != nil {
			return err
		}
	}
	return nil
}

// manifest is the YAML shape of a file-based unit.
type manifest struct {
	TypeDefs string   `yaml:"typeDefs"`
	After    []string `yaml:"after"`
	Before   []string `yaml:"before"`
	First    bool     `yaml:"first"`
	Last     bool     `yaml:"last"`
}

// LoadDir scans dir for module files and applies them in file name order,
// one at a time. A missing directory means no modules and is not an error.
func LoadDir(a *weld.Assembly, dir string, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loader: read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isModuleFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", name, err)
		}
		u, err := unitFromFile(name, data, o)
		if err != nil {
			return err
		}
		if err := Apply(a, u); err != nil {
			return err
		}
	}
	return nil
}

// LoadBucket imports module files from a blob bucket, in key order, one at
// a time. Any gocloud.dev blob store works, e.g. fileblob for directories
// or memblob in tests.
func LoadBucket(ctx context.Context, a *weld.Assembly, b *blob.Bucket, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var keys []string
	iter := b.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("loader: list bucket: %w", err)
		}
		if obj.IsDir || !isModuleFile(obj.Key) {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		data, err := b.ReadAll(ctx, key)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", key, err)
		}
		u, err := unitFromFile(key, data, o)
		if err != nil {
			return err
		}
		if err := Apply(a, u); err != nil {
			return err
		}
	}
	return nil
}

func unitFromFile(name string, data []byte, o options) (Unit, error) {
	id := identifier(name, o)

	if isSDLFile(name) {
		if len(bytes.TrimSpace(data)) == 0 {
			return Unit{}, fmt.Errorf("loader: %s is empty", name)
		}
		return Unit{Name: id, TypeDefs: string(data)}, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Unit{}, fmt.Errorf("loader: %s is empty", name)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Unit{}, fmt.Errorf("loader: decode %s: %w", name, err)
	}

	u := Unit{
		Name:   id,
		After:  m.After,
		Before: m.Before,
		First:  m.First,
		Last:   m.Last,
	}
	if m.TypeDefs != "" {
		u.TypeDefs = m.TypeDefs
	}
	return u, nil
}

// identifier derives the unit identifier from a file name: the base name
// without extension, optionally normalized to lowerCamel.
func identifier(name string, o options) string {
	base := filepath.Base(name)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	if o.camelCase {
		id = strcase.ToLowerCamel(id)
	}
	return id
}

func isModuleFile(name string) bool {
	return isYAMLFile(name) || isSDLFile(name)
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

func isSDLFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".graphql") || strings.HasSuffix(lower, ".gql")
}
