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
	"testing"
)

// scriptedChooser replays a fixed sequence of answers and records the
// prompts it was shown.
type scriptedChooser struct {
	answers []Choice
	prompts []string
	next    int
}

func (c *scriptedChooser) Choose(prompt string, opts []Option) (Choice, error) {
	c.prompts = append(c.prompts, prompt)
	if c.next >= len(c.answers) {
		return Choice{}, ErrSelectionAborted
	}
	a := c.answers[c.next]
	c.next++
	return a, nil
}

func TestResolveSingleSelection(t *testing.T) {
	menu := SubMenu{
		{Option: Option{Label: "test"}},
		{Option: Option{Label: "build"}},
	}
	chooser := &scriptedChooser{answers: []Choice{{Label: "test"}}}

	sel, err := Resolve(menu, chooser, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Joined() != "test" {
		t.Errorf("Expected selection 'test', got %q", sel.Joined())
	}
	if len(chooser.prompts) != 1 || chooser.prompts[0] != "Run" {
		t.Errorf("Expected single 'Run' prompt, got %v", chooser.prompts)
	}
}

func TestResolveNestedWalk(t *testing.T) {
	menu := SubMenu{
		{
			Option: Option{Label: "cache"},
			Node: SubMenu{
				{Option: Option{Label: "list"}},
				{Option: Option{Label: "clean"}},
			},
		},
	}
	chooser := &scriptedChooser{answers: []Choice{{Label: "cache"}, {Label: "clean"}}}

	sel, err := Resolve(menu, chooser, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Joined() != "cache clean" {
		t.Errorf("Expected 'cache clean', got %q", sel.Joined())
	}
	// The breadcrumb of already-chosen tokens shows up in the inner prompt.
	if chooser.prompts[1] != "Run cache" {
		t.Errorf("Expected inner prompt 'Run cache', got %q", chooser.prompts[1])
	}
}

func TestResolveEmptyMenusEndWalk(t *testing.T) {
	chooser := &scriptedChooser{}

	for _, node := range []MenuNode{SubMenu{}, OptionList{}} {
		sel, err := Resolve(node, chooser, nil)
		if err != nil {
			t.Fatalf("Resolve of empty menu failed: %v", err)
		}
		if len(sel) != 0 {
			t.Errorf("Expected empty selection, got %v", sel)
		}
	}
	if len(chooser.prompts) != 0 {
		t.Errorf("Empty menus must not invoke the chooser, got prompts %v", chooser.prompts)
	}
}

func TestResolveTerminalAndBatch(t *testing.T) {
	sel, err := Resolve(Terminal("  install  "), &scriptedChooser{}, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Joined() != "install" {
		t.Errorf("Expected trimmed 'install', got %q", sel.Joined())
	}

	sel, err = Resolve(TokenBatch{"lodash", "react@18"}, &scriptedChooser{}, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Joined() != "lodash react@18" {
		t.Errorf("Expected 'lodash react@18', got %q", sel.Joined())
	}
}

func TestResolveDeferred(t *testing.T) {
	var invoked int
	node := Deferred(func() (MenuNode, error) {
		invoked++
		return TokenBatch{"lodash"}, nil
	})

	sel, err := Resolve(node, &scriptedChooser{}, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Joined() != "lodash" {
		t.Errorf("Expected 'lodash', got %q", sel.Joined())
	}
	if invoked != 1 {
		t.Errorf("Deferred producer must run exactly once, ran %d times", invoked)
	}
}

func TestResolveDeferredError(t *testing.T) {
	node := Deferred(func() (MenuNode, error) {
		return nil, ErrSelectionAborted
	})
	if _, err := Resolve(node, &scriptedChooser{}, nil); !errors.Is(err, ErrSelectionAborted) {
		t.Errorf("Expected ErrSelectionAborted from deferred producer, got %v", err)
	}
}

func TestResolveAbortPropagatesFromDepth(t *testing.T) {
	menu := SubMenu{
		{
			Option: Option{Label: "cache"},
			Node: SubMenu{
				{Option: Option{Label: "clean"}},
			},
		},
	}
	// One answer, then the chooser cancels on the nested step.
	chooser := &scriptedChooser{answers: []Choice{{Label: "cache"}}}

	sel, err := Resolve(menu, chooser, nil)
	if !errors.Is(err, ErrSelectionAborted) {
		t.Fatalf("Expected ErrSelectionAborted, got %v", err)
	}
	if sel != nil {
		t.Errorf("No partial selection may survive an abort, got %v", sel)
	}
}

func TestResolveOptionListMultiSelect(t *testing.T) {
	opts := OptionList{
		{Label: "--frozen-lockfile"},
		{Label: "--silent"},
		{Label: "--offline"},
	}
	chooser := &scriptedChooser{answers: []Choice{
		{Multi: true, Marked: []string{"--silent", "--offline"}},
	}}

	sel, err := Resolve(opts, chooser, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// Chooser order wins, not menu order.
	if sel.Joined() != "--silent --offline" {
		t.Errorf("Expected '--silent --offline', got %q", sel.Joined())
	}
}

func TestResolveSubMenuMultiSelectMerge(t *testing.T) {
	menu := SubMenu{
		{Option: Option{Label: "lodash"}},
		{Option: Option{Label: "react"}},
		{Option: Option{Label: "eslint"}, Node: Terminal("--dev")},
	}
	chooser := &scriptedChooser{answers: []Choice{
		{Multi: true, Marked: []string{"react", "eslint", "lodash"}},
	}}

	sel, err := Resolve(menu, chooser, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sel.Joined() != "react eslint --dev lodash" {
		t.Errorf("Expected 'react eslint --dev lodash', got %q", sel.Joined())
	}
}

func TestResolveMultiSelectNestedContinuation(t *testing.T) {
	menu := SubMenu{
		{Option: Option{Label: "plain"}},
		{
			Option: Option{Label: "nested"},
			Node: SubMenu{
				{Option: Option{Label: "deep"}},
			},
		},
	}
	chooser := &scriptedChooser{answers: []Choice{
		{Multi: true, Marked: []string{"nested", "plain"}},
		{Label: "deep"},
	}}

	sel, err := Resolve(menu, chooser, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// The nested branch resolves as its own sub-walk, merged in place.
	if sel.Joined() != "nested deep plain" {
		t.Errorf("Expected 'nested deep plain', got %q", sel.Joined())
	}
	// Sub-walk prompts carry the marked label, not the outer breadcrumb.
	if chooser.prompts[1] != "nested" {
		t.Errorf("Expected sub-walk prompt 'nested', got %q", chooser.prompts[1])
	}
}

func TestResolveMultiSelectEmptyMarks(t *testing.T) {
	menu := SubMenu{
		{Option: Option{Label: "lodash"}},
	}
	chooser := &scriptedChooser{answers: []Choice{{Multi: true}}}

	sel, err := Resolve(menu, chooser, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(sel) != 0 {
		t.Errorf("Empty multi-selection must yield no tokens, got %v", sel)
	}
}

func TestDefaultPrompt(t *testing.T) {
	if got := DefaultPrompt(Selection{}, 0); got != "Run" {
		t.Errorf("Expected 'Run' for empty breadcrumb, got %q", got)
	}
	if got := DefaultPrompt(Selection{"cache", "clean"}, 2); got != "Run cache clean" {
		t.Errorf("Expected 'Run cache clean', got %q", got)
	}
}
