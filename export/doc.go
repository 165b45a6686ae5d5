// Package export writes generated records to CSV, XLSX and msgpack and
// summarises their numeric columns.
//
// Writers accept any Source (an *items.List is one) and pull records from
// it exactly once, so a lazy list is produced a single time per write.
// Field selection is the list's business (items.List.Select); writers only
// control presentation: separator, header, header prefix, column renames,
// sheet name.
package export
