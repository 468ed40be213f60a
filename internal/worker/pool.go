// Package worker provides a worker pool for parallel move decoding.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/sanmove-go/internal/movetext"
	"github.com/lgbarn/sanmove-go/san"
)

// WorkItem is one move token waiting to be decoded.
type WorkItem struct {
	Token movetext.Token
	Index int // Position in the input stream
}

// ProcessResult is the outcome of decoding one token.
type ProcessResult struct {
	Index int
	Token movetext.Token
	Move  san.Move
	Text  string // Canonical SAN, empty if Err is set
	Err   error
}

// Changed reports whether the canonical text differs from the input token.
func (r ProcessResult) Changed() bool {
	return r.Err == nil && r.Text != r.Token.Text
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Decode parses a token and compiles it back to canonical SAN.
func Decode(item WorkItem) ProcessResult {
	res := ProcessResult{Index: item.Index, Token: item.Token}
	m, err := san.Parse(item.Token.Text)
	if err != nil {
		res.Err = err
		return res
	}
	res.Move = m
	res.Text, res.Err = san.Compile(m)
	return res
}

// Pool manages a pool of workers for parallel decoding.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithProcessFunc replaces Decode as the per-item function.
func WithProcessFunc(fn ProcessFunc) PoolOption {
	return func(p *Pool) {
		if fn != nil {
			p.processFunc = fn
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer of 64, Decode.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  64,
		processFunc: Decode,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// DecodeAll decodes tokens with the given number of workers and returns
// the results in input order.
func DecodeAll(tokens []movetext.Token, workers int) []ProcessResult {
	if workers <= 1 {
		results := make([]ProcessResult, len(tokens))
		for i, tok := range tokens {
			results[i] = Decode(WorkItem{Token: tok, Index: i})
		}
		return results
	}

	pool := NewPool(WithWorkers(workers))
	pool.Start()
	go func() {
		for i, tok := range tokens {
			pool.Submit(WorkItem{Token: tok, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(tokens))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
