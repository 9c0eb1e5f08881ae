// Package finance turns a user's raw records into the dashboard figures.
//
// Everything here is pure: no I/O, no shared state. Summarize reduces the
// record lists into a FinancialSummary and Insights derives the ranked
// advisory list from that summary. The overview helpers compute the
// per-page totals shown next to each entity list.
package finance
