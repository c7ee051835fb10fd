// Package drivesearch embeds the search pipeline as a Go library.
//
// The client connects to a Redis/Valkey deployment that already holds the
// document index and blob store, and runs the same query-enhancement
// pipeline as the HTTP server: normalize, expand variants, fan out
// retrieval, aggregate, hydrate, rerank and fuse.
//
//	client, err := drivesearch.New(
//		drivesearch.WithAddrs("localhost:6379"),
//		drivesearch.WithEmbedder(myEmbedder),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	out, err := client.Search(ctx, "find my 2024 tax forms", 5)
package drivesearch
