package render

import (
	"sync"

	"github.com/pthm-cable/streamfield/field"
)

// workChunk is a contiguous range of streams for one worker.
type workChunk struct {
	start, end int
}

// integrate rasterizes every stream into g. With one worker it runs
// sequentially, which is the bit-reproducible reference order. With more
// workers, streams are split into contiguous chunks, each worker
// accumulates into a private grid, and the grids are merged in worker
// index order afterwards — deterministic for a fixed worker count, but
// float summation order differs from the sequential pass.
func integrate(it *Integrator, streams []field.Stream, g *Grid, workers int) []StreamResult {
	results := make([]StreamResult, len(streams))

	if workers <= 1 || len(streams) < workers {
		for i := range streams {
			results[i] = it.Run(streams[i], g)
		}
		return results
	}

	chunks := splitChunks(len(streams), workers)
	grids := make([]*Grid, len(chunks))

	var wg sync.WaitGroup
	for w, chunk := range chunks {
		grids[w] = NewGrid(g.Size())
		wg.Add(1)
		go func(chunk workChunk, private *Grid) {
			defer wg.Done()
			for i := chunk.start; i < chunk.end; i++ {
				results[i] = it.Run(streams[i], private)
			}
		}(chunk, grids[w])
	}
	wg.Wait()

	for _, private := range grids {
		g.Merge(private)
	}
	return results
}

// splitChunks divides n items into at most workers contiguous chunks.
func splitChunks(n, workers int) []workChunk {
	chunks := make([]workChunk, 0, workers)
	base := n / workers
	rem := n % workers
	start := 0
	for w := 0; w < workers && start < n; w++ {
		size := base
		if w < rem {
			size++
		}
		chunks = append(chunks, workChunk{start: start, end: start + size})
		start += size
	}
	return chunks
}
