// Package report renders analysis reports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display, coloured
//     by level and severity
//   - MarkdownWriter: GitHub Flavored Markdown with tables, alerts and a
//     mermaid pie chart of warning severities
//   - JSONWriter: Structured JSON output for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably. Every writer can render a single report or a batch.
package report
