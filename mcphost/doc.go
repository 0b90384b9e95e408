// Package mcphost exposes the augmentation pipeline as MCP tools.
//
// Agent hosts that speak the Model Context Protocol can call lemmatization
// and augmentation directly instead of embedding the library:
//
//   - lemmatize: return the distinct base forms for a piece of text
//   - augment_content: rewrite document content for indexing
//   - augment_query: rewrite a free-text search query
//
// The server speaks JSON-RPC 2.0 over stdio or HTTP:
//
//	srv := mcphost.New(aug, mcphost.Config{
//	    ServerInfo: mcphost.ServerInfo{Name: "baseforms", Version: "1.0.0"},
//	})
//	if err := mcphost.ServeStdio(ctx, srv); err != nil {
//	    log.Fatal(err)
//	}
package mcphost
