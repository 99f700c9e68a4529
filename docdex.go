// Package docdex builds a searchable documentation corpus. It crawls a
// bounded set of web domains breadth-first, extracts clean text from each
// page, splits the text into overlapping chunks, embeds the chunks, and
// persists the result as a vector index on disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/, sqlite/).
package docdex
