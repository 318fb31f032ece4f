// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package summarizer turns raw note text into a short synopsis.
//
// [Engine] prefers a remote summarization model when one is configured and
// always falls back to [LocalRule], a deterministic heuristic that cannot
// fail. The remote model is wrapped in a [LazyModel] so it is constructed on
// first use, at most once, and stays unavailable for the rest of the process
// if construction fails.
package summarizer
