// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import "strings"

// MaxLocalSummaryRunes caps the length of a [LocalRule] summary.
const MaxLocalSummaryRunes = 400

const localFragments = 2

// LocalRule returns the first two non-blank sentence fragments of text joined
// with ". ", truncated to [MaxLocalSummaryRunes] runes. Newlines are treated
// as spaces and fragments are split on every period.
//
// LocalRule is pure and total: "One. Two. Three." yields "One. Two" and an
// empty or blank input yields "".
func LocalRule(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")

	parts := make([]string, 0, localFragments)
	for _, fragment := range strings.Split(text, ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		parts = append(parts, fragment)
		if len(parts) == localFragments {
			break
		}
	}

	return truncateRunes(strings.Join(parts, ". "), MaxLocalSummaryRunes)
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
