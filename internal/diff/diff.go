// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"errors"
	"maps"
	"slices"

	"github.com/decodiff/decodiff/internal/snapshot"
)

// ErrNoDifferences is returned by Compare when the two snapshots hold
// identical data. It is a terminal nothing-to-do outcome, not a failure;
// callers must skip all presentation and produce no artifact.
var ErrNoDifferences = errors.New("the export files contain identical data")

// Change is a decoration present in both snapshots with differing
// quantities. Added is the signed difference after minus before, Total is
// the quantity in the newer snapshot.
type Change struct {
	Decoration string `json:"decoration" yaml:"decoration"`
	Added      int    `json:"added" yaml:"added"`
	Total      int    `json:"total" yaml:"total"`
}

// NewItem is a decoration absent from the older snapshot, or present there
// with quantity zero and now positive.
type NewItem struct {
	Decoration string `json:"decoration" yaml:"decoration"`
	Amount     int    `json:"amount" yaml:"amount"`
}

// Result is the classified comparison of two snapshots. Changes and
// NewItems are ordered by decoration identifier ascending. TotalChanged is
// the signed sum of Added across Changes; TotalNew counts distinct new
// decoration types, not their amounts.
type Result struct {
	Changes      []Change  `json:"changes" yaml:"changes"`
	NewItems     []NewItem `json:"new" yaml:"new"`
	TotalChanged int       `json:"total_changed" yaml:"total_changed"`
	TotalNew     int       `json:"total_new" yaml:"total_new"`
}

// Compare classifies every decoration in the union of both snapshots as
// unchanged (omitted), new, or changed. It is a pure function over its
// inputs.
//
// When before and after are equal as sets of pairs, Compare returns
// ErrNoDifferences instead of an empty Result.
//
// Classification per decoration, with an absent key reading as quantity 0:
//  1. absent from before, or zero in before and positive in after: new.
//  2. otherwise, present in after with a differing quantity: changed.
//  3. otherwise no record. A decoration owned before but absent from after
//     is deliberately unreported; only growth matters for this tracker.
//
// The new rule is checked before the changed rule, so a previously-zero
// decoration that increases is always reported as new, never as changed.
func Compare(before, after snapshot.Snapshot) (*Result, error) {
	if maps.Equal(before, after) {
		return nil, ErrNoDifferences
	}

	res := &Result{}
	for _, id := range unionKeys(before, after) {
		beforeQty, inBefore := before[id]
		afterQty, inAfter := after[id]

		switch {
		case !inBefore || (beforeQty == 0 && afterQty > 0):
			res.NewItems = append(res.NewItems, NewItem{Decoration: id, Amount: afterQty})
			res.TotalNew++
		case inAfter && beforeQty != afterQty:
			added := afterQty - beforeQty
			res.Changes = append(res.Changes, Change{Decoration: id, Added: added, Total: afterQty})
			res.TotalChanged += added
		}
	}

	return res, nil
}

// unionKeys returns the keys of both snapshots, deduplicated and sorted
// ascending. The sorted pass is what gives Result its ordering guarantee.
func unionKeys(before, after snapshot.Snapshot) []string {
	keys := make([]string, 0, len(before)+len(after))
	keys = slices.AppendSeq(keys, maps.Keys(before))
	for id := range after {
		if _, ok := before[id]; !ok {
			keys = append(keys, id)
		}
	}
	slices.Sort(keys)
	return keys
}
