// Package pagefeed turns an arbitrary web page into a structured feed.
// It locates the page's primary content container, extracts article-like
// items from it, and renders them as JSON, RSS or HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package pagefeed
