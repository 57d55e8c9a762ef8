// Package storage persists the show queue.
//
// The queue file format is plain text with one show per line:
//
//	title|genre|episodes|rating
//
// There is no header, version, or escaping. A title or genre that contains
// "|" will not read back intact; this is a known limitation of the format.
// Loading is tolerant: a missing or unreadable file yields an empty queue and
// lines whose episodes or rating do not parse are skipped and counted, never
// reported as errors. Saving truncates and rewrites the file in place with no
// rename or fsync, so a crash mid-save can leave it truncated.
//
// Store abstracts the sink/source so the same queue can live in the text file
// or, when configured, in a SQLite database.
package storage
