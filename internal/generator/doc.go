// Package generator writes resource-list manifests.
//
// A manifest lists, one per line, the forward-slash paths of the files below
// a source root that satisfy a list configuration's include patterns,
// exclude patterns and extension filter. Lines are sorted by byte order and
// unique. The manifest is only rewritten when its content changes, which
// leaves its modification time alone for up-to-date builds.
//
// Usage:
//
//	gen := generator.New(generator.Options{Logger: log})
//	res, err := gen.Generate(ctx, cfg, "/work/shop/src/main/java")
//	if err != nil {
//	    return err
//	}
//	if res.Changed {
//	    // downstream packaging is stale
//	}
//
// A missing source root is not an error: the generator writes an empty
// manifest because downstream steps expect the file to exist.
package generator
