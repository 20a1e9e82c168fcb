// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"

	"github.com/cybrota/yarnkit/strategies"
)

// DepKind classifies which dependency table of package.json an Option
// came from.
type DepKind int

const (
	DepKindNone DepKind = iota
	DepKindRuntime
	DepKindDev
	DepKindPeer
	DepKindOptional
)

func (k DepKind) String() string {
	switch k {
	case DepKindRuntime:
		return "dependency"
	case DepKindDev:
		return "devDependency"
	case DepKindPeer:
		return "peerDependency"
	case DepKindOptional:
		return "optionalDependency"
	default:
		return ""
	}
}

// Option is one selectable entry. Description, Version and Kind are
// display metadata only; lookup and equality go through Label.
type Option struct {
	Label       string
	Description string
	Version     string
	Kind        DepKind
}

// MenuNode is one point in the choice tree. The concrete variants are
// Terminal, TokenBatch, OptionList, SubMenu and Deferred.
type MenuNode interface {
	menuNode()
}

// Terminal is a fixed final token; reaching it ends the walk.
type Terminal string

// TokenBatch is a deferred producer's multi-token result. It is appended
// as a single space-joined token.
type TokenBatch []string

// OptionList is a flat, ordered list of choices with no continuations.
type OptionList []Option

// SubMenuEntry pairs a label with its continuation node. A nil Node means
// the label is itself the end of the walk.
type SubMenuEntry struct {
	Option Option
	Node   MenuNode
}

// SubMenu is an ordered label -> continuation mapping. Continuations are
// owned values, never shared or back-referenced, which keeps every tree
// acyclic by construction.
type SubMenu []SubMenuEntry

// Deferred produces its node only when the walk reaches it, so branches
// that shell out (help scraping, version listing) pay that cost lazily.
// A producer that needs user input may return ErrSelectionAborted through
// its error to cancel the whole walk.
type Deferred func() (MenuNode, error)

func (Terminal) menuNode()   {}
func (TokenBatch) menuNode() {}
func (OptionList) menuNode() {}
func (SubMenu) menuNode()    {}
func (Deferred) menuNode()   {}

// Join flattens a TokenBatch into the single token the resolver appends.
func (b TokenBatch) Join() string {
	return strings.TrimSpace(strings.Join(b, " "))
}

// Options returns the selectable entries of a SubMenu in order.
func (s SubMenu) Options() []Option {
	opts := make([]Option, len(s))
	for i, e := range s {
		opts[i] = e.Option
	}
	return opts
}

// Lookup finds the continuation for a label. The second return reports
// whether the label exists at all.
func (s SubMenu) Lookup(label string) (MenuNode, bool) {
	for _, e := range s {
		if e.Option.Label == label {
			return e.Node, true
		}
	}
	return nil, false
}

// ScriptOptions shapes package.json scripts into Options. The script body
// rides along as the description so the chooser can preview it.
func ScriptOptions(scripts map[string]string, order []string) OptionList {
	opts := make(OptionList, 0, len(order))
	for _, name := range order {
		opts = append(opts, Option{Label: name, Description: scripts[name]})
	}
	return opts
}

// DependencyOptions shapes one dependency table into Options carrying the
// declared version range and table kind.
func DependencyOptions(deps map[string]string, order []string, kind DepKind) OptionList {
	opts := make(OptionList, 0, len(order))
	for _, name := range order {
		opts = append(opts, Option{
			Label:       name,
			Description: kind.String(),
			Version:     deps[name],
			Kind:        kind,
		})
	}
	return opts
}

// FlagOptions shapes scraped --flag/description pairs into Options.
func FlagOptions(flags []strategies.ScrapedFlag) OptionList {
	opts := make(OptionList, 0, len(flags))
	for _, f := range flags {
		opts = append(opts, Option{Label: f.Flag, Description: f.Description})
	}
	return opts
}
