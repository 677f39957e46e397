// Package adblockgo provides the persistence layer of a content-filtering
// engine: compiled network-blocking and cosmetic-hiding state converted to
// and from a single self-contained binary blob.
//
// # Quick Start
//
//	eng := adblockgo.New()
//	// ... populate eng.Blocker() and eng.Cosmetic() from compiled rules ...
//
//	blob, err := eng.Serialize()
//	// identical state always produces identical bytes, so the blob can
//	// be cached or addressed by its content hash
//
//	restored := adblockgo.New()
//	err = restored.Deserialize(blob)
//
// # On-Disk Caching
//
// The store package persists blobs atomically with optional compression:
//
//	_ = store.Save("rules.dat", blob, store.CompressionZSTD)
//	blob, _ = store.Load("rules.dat")
//
// # Format Stability
//
// The blob layout is a fixed magic constant, one schema version byte, and
// a positional record. Fields are only ever appended, so old blobs decode
// with new readers and new blobs decode with old readers.
package adblockgo
