// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package optionset derives display-ready option lists for selection controls
// from raw column values. The derivation is a pure function: filter out falsy
// values, deduplicate by strict value equality, sort with type-aware ordering,
// then project each survivor to its string form.
package optionset // import "github.com/toeirei/tablekit/internal/optionset"

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/toeirei/tablekit/util/slicest"
)

// Option is a display-ready entry for a selection control. ID is stable for a
// given column and derivation result; Label and Value are the string form of
// the raw value.
type Option struct {
	ID    string
	Label string
	Value string
}

// Deriver turns raw value collections into Option lists. Textual values are
// ordered with a locale-aware collator, so a Deriver is bound to a language.
type Deriver struct {
	collator *collate.Collator
}

// New returns a Deriver whose textual ordering follows the given language.
func New(tag language.Tag) *Deriver {
	return &Deriver{collator: collate.New(tag)}
}

// defaultDeriver backs the package-level Derive for callers that do not care
// about the collation language.
var defaultDeriver = New(language.English)

// Derive runs the default (English-collation) deriver.
func Derive(columnID string, values []Value) []Option {
	return defaultDeriver.Derive(columnID, values)
}

// Derive produces the deduplicated, sorted option list for one column.
//
// Falsy raw values (null, false, 0, "") never become options. That policy is
// lossy on purpose: a legitimate 0 or false is indistinguishable from a
// missing cell and is dropped. Callers that need those values selectable must
// encode them as non-empty strings.
//
// Duplicates are removed by raw-value equality before string conversion, so
// distinct raw values whose string forms collide (say Number(1) and
// String("1")) both survive.
//
// The sort orders each kind independently: numbers numerically, strings
// under the deriver's collator. Values of different kinds are never
// reordered relative to each other; each kind's sorted values fill the slots
// that kind occupies in the filtered sequence, so a mixed sequence keeps its
// kind pattern while every same-kind pair ends up correctly ordered.
//
// Derive is total: any input, including nil, yields a well-formed (possibly
// empty) list.
func (d *Deriver) Derive(columnID string, values []Value) []Option {
	kept := make([]Value, 0, len(values))
	seen := make(map[Value]struct{}, len(values))
	for _, v := range values {
		if !v.Truthy() {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		kept = append(kept, v)
	}

	d.sortByKind(kept)

	return slicest.MapI(kept, func(i int, v Value) Option {
		s := v.String()
		return Option{
			ID:    fmt.Sprintf("%s-choice-%d", columnID, i),
			Label: s,
			Value: s,
		}
	})
}

// sortByKind sorts same-kind values among the slots their kind occupies,
// leaving the kind of every position unchanged. A single comparator that
// reports mixed-type pairs as equal would be non-transitive and let a
// comparison sort leave same-kind pairs inverted across a different-kind
// separator; sorting each kind on its own sidesteps that entirely. Kinds
// without a defined order (booleans) keep input order.
func (d *Deriver) sortByKind(vals []Value) {
	var nums, strs []Value
	for _, v := range vals {
		switch v.Kind() {
		case KindNumber:
			nums = append(nums, v)
		case KindString:
			strs = append(strs, v)
		}
	}

	// nums holds distinct values, so a plain sort suffices; the collator can
	// rank distinct strings equal, so their sort must be stable.
	sort.Slice(nums, func(i, j int) bool {
		return nums[i].Num() < nums[j].Num()
	})
	sort.SliceStable(strs, func(i, j int) bool {
		return d.collator.CompareString(strs[i].String(), strs[j].String()) < 0
	})

	ni, si := 0, 0
	for i, v := range vals {
		switch v.Kind() {
		case KindNumber:
			vals[i] = nums[ni]
			ni++
		case KindString:
			vals[i] = strs[si]
			si++
		}
	}
}
