// Package growth tracks the growth of a personal social media presence.
// It is local-first: everything lives in two human-readable JSON files on
// the user's disk.
//
// The package provides:
//   - Records: DailyStat is the daily snapshot of a platform's counters, and
//     Post is the performance of a single tracked content item.
//   - Persistence: Store reads and writes both collections as full snapshots.
//     Missing or unreadable records fall back to the built-in seed data.
//   - Metrics: stateless functions derive engagement rates, trends, top posts
//     and chronological series from the collections.
//   - State: Tracker is the in-memory source of truth for a session. It
//     writes every append through to the Store.
//
// This package is the foundation of the `sg` command-line tool.
package growth
