// Package libcat is the composition root of the libcat catalog tool.
//
// It connects the generic catalog store (pkg/catalog) and the validated
// input loop (pkg/input) with the interactive console session, the
// renderers and the configuration loader.
//
// The catalog lives in memory only. Nothing is written to disk and every
// item is gone once the session ends.
//
// Usage:
//
//	session, err := libcat.NewSession(ctx,
//		libcat.WithInput(os.Stdin),
//		libcat.WithOutput(os.Stdout),
//		libcat.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	return session.Run(ctx)
//
// The store can also be used on its own:
//
//	books := libcat.NewCatalog[string]()
//	books.Add(libcat.NewItem("Dune", "Herbert", "SciFi", release))
package libcat
