// Package loader reads knapsack instances from text.
//
// Format (one record per line):
//
//	50          ← first record: capacity
//	10,60       ← every further record: weight,benefit
//	20,100
//	30,120
//
// Numbers are exact rationals: "7", "3/2" and "1.25" are accepted. Exponent
// forms ("2e3") and fields longer than 64 characters are rejected as malformed.
// Blank lines and lines starting with '#' are ignored. Items receive 1-based
// indices in file order.
//
// Sources:
//   - local paths;
//   - s3://bucket/key objects, fetched with a minio-go client (any S3-compatible store);
//   - transparent decompression by suffix: ".zst" (zstd) and ".lz4" (LZ4 frame).
//
// Example:
//
//	inst, scale, err := loader.LoadFile(ctx, "problems/p1.txt.zst")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sol, _ := solver.Solve(inst)
//	fmt.Println(scale.Benefit(sol.Benefit)) // exact benefit in input units
package loader
