// Package report renders the outcome of a compare run.
//
// report.go writes the single result line to stdout and logs the cells that
// differ when the two methods disagree.
//
// metrics.go writes an Engine's metric families to a file in Prometheus text
// exposition format, suitable for a node-exporter textfile collector, and
// reads such a file back. Writes go through a temp file and a rename so a
// collector never sees a half-written file.
package report
