// Package mmfile maps bencode documents into memory for zero-copy decoding.
// On unix the file is mapped read-only; elsewhere it is read into a buffer.
// Either way the caller must invoke the returned release function once the
// decoded tree no longer references the bytes.
package mmfile
