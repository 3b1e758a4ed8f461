// Package nutrition turns meal log entries into the derived views shown to
// users: daily totals, goal progress, date groupings, time series and
// streaks. Everything here is synchronous and free of I/O; callers fetch
// entries and goals first and pass them in.
package nutrition
