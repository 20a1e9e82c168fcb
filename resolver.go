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
	"errors"
	"fmt"
	"strings"
)

// ErrSelectionAborted is returned when the user dismisses the chooser at
// any depth. No partial command is ever produced after it.
var ErrSelectionAborted = errors.New("selection aborted")

// Choice is one answer from the Chooser. Either Label is set (single
// selection) or Multi is true and Marked holds the toggled labels in the
// order the chooser reports them. A multi-selection may be empty.
type Choice struct {
	Label  string
	Marked []string
	Multi  bool
}

// Chooser presents labeled options and blocks until the user picks one,
// marks several, or cancels. Cancellation must surface as
// ErrSelectionAborted.
type Chooser interface {
	Choose(prompt string, opts []Option) (Choice, error)
}

// Selection is the ordered sequence of tokens accumulated across one walk:
// outer choice first, inner choices after, exactly the order a human would
// type them.
type Selection []string

// Joined returns the selection as a single space-separated string.
func (s Selection) Joined() string {
	return strings.TrimSpace(strings.Join(s, " "))
}

// PromptFunc composes the prompt for one step from the breadcrumb of
// tokens chosen so far and the nesting depth.
type PromptFunc func(breadcrumb Selection, depth int) string

// DefaultPrompt shows the full breadcrumb before every step, so the user
// always sees where in the tree they are.
func DefaultPrompt(breadcrumb Selection, depth int) string {
	if len(breadcrumb) == 0 {
		return "Run"
	}
	return fmt.Sprintf("Run %s", breadcrumb.Joined())
}

// Resolve walks a MenuNode tree, driving the chooser at each step and
// folding the answers into a Selection. It terminates on every acyclic
// tree: Terminal and TokenBatch end the walk, Deferred is invoked at most
// once per node, and selection steps either end or descend into an owned
// continuation.
func Resolve(root MenuNode, chooser Chooser, prompt PromptFunc) (Selection, error) {
	if prompt == nil {
		prompt = DefaultPrompt
	}
	result := Selection{}
	if err := walk(root, chooser, prompt, &result, 0); err != nil {
		return nil, err
	}
	return result, nil
}

func walk(node MenuNode, chooser Chooser, prompt PromptFunc, result *Selection, depth int) error {
	for node != nil {
		switch n := node.(type) {
		case Terminal:
			if tok := strings.TrimSpace(string(n)); tok != "" {
				*result = append(*result, tok)
			}
			return nil

		case TokenBatch:
			if tok := n.Join(); tok != "" {
				*result = append(*result, tok)
			}
			return nil

		case Deferred:
			next, err := n()
			if err != nil {
				return err
			}
			node = next

		case OptionList:
			if len(n) == 0 {
				return nil
			}
			choice, err := chooser.Choose(prompt(*result, depth), n)
			if err != nil {
				return err
			}
			if choice.Multi {
				// Flat options carry no continuation; each mark is
				// its own token and the level ends here.
				*result = append(*result, choice.Marked...)
				return nil
			}
			*result = append(*result, choice.Label)
			return nil

		case SubMenu:
			if len(n) == 0 {
				return nil
			}
			choice, err := chooser.Choose(prompt(*result, depth), n.Options())
			if err != nil {
				return err
			}
			if choice.Multi {
				return resolveMarked(n, choice.Marked, chooser, prompt, result)
			}
			*result = append(*result, choice.Label)
			next, ok := n.Lookup(choice.Label)
			if !ok || next == nil {
				return nil
			}
			node = next
			depth++

		default:
			return fmt.Errorf("unknown menu node %T", node)
		}
	}
	return nil
}

// resolveMarked handles a multi-selection over a SubMenu: every marked
// label's continuation is resolved in chooser order and recorded as a
// (label, value) pair, then the level ends. Multi-selection never drills
// further into a single branch.
func resolveMarked(menu SubMenu, marked []string, chooser Chooser, prompt PromptFunc, result *Selection) error {
	for _, label := range marked {
		next, ok := menu.Lookup(label)
		if !ok {
			continue
		}
		*result = append(*result, label)
		if next == nil {
			continue
		}
		switch n := next.(type) {
		case Terminal:
			if tok := strings.TrimSpace(string(n)); tok != "" {
				*result = append(*result, tok)
			}
		case TokenBatch:
			if tok := n.Join(); tok != "" {
				*result = append(*result, tok)
			}
		default:
			// Deferred producers and nested menus run as independent
			// sub-walks whose result merges back as one joined token,
			// with the marked label as prompt context.
			sub := Selection{}
			if err := walk(n, chooser, labelPrompt(label), &sub, 0); err != nil {
				return err
			}
			if tok := sub.Joined(); tok != "" {
				*result = append(*result, tok)
			}
		}
	}
	return nil
}

func labelPrompt(label string) PromptFunc {
	return func(breadcrumb Selection, depth int) string {
		if len(breadcrumb) == 0 {
			return label
		}
		return fmt.Sprintf("%s %s", label, breadcrumb.Joined())
	}
}
