// Package intern provides interned constant pools: concurrent, populate-
// on-first-use maps that hand every caller the same canonical instance of
// a value. Insertion is atomic insert-if-absent; when two goroutines race
// on the same key the loser's computation is discarded, never blocked.
//
// Pools are unbounded and never evict. Interning attacker-controlled or
// unbounded key spaces grows memory without limit.
package intern

import (
	"math/big"
	"sync"
)

// StringPool interns strings. The zero value is ready to use.
type StringPool struct {
	m sync.Map // string -> string
}

// Get returns the canonical instance of s, interning it on first use.
func (p *StringPool) Get(s string) string {
	if v, ok := p.m.Load(s); ok {
		return v.(string)
	}
	v, _ := p.m.LoadOrStore(s, s)
	return v.(string)
}

// Len returns the number of interned strings.
func (p *StringPool) Len() int {
	n := 0
	p.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// BigIntPool interns arbitrary-precision integers keyed by their decimal
// string form. The zero value is ready to use.
type BigIntPool struct {
	m sync.Map // string -> *big.Int
}

// Get parses s as a decimal integer and returns the canonical instance,
// interning it on first use. The second return is false when s does not
// parse; nothing is interned in that case.
//
// Returned values are shared across all callers and must not be mutated.
func (p *BigIntPool) Get(s string) (*big.Int, bool) {
	if v, ok := p.m.Load(s); ok {
		return v.(*big.Int), true
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	v, _ := p.m.LoadOrStore(s, n)
	return v.(*big.Int), true
}

// Len returns the number of interned integers.
func (p *BigIntPool) Len() int {
	n := 0
	p.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

var (
	defaultStrings StringPool
	defaultBigInts BigIntPool
)

// String interns s in the process-wide default pool.
func String(s string) string { return defaultStrings.Get(s) }

// BigInt interns the decimal integer s in the process-wide default pool.
func BigInt(s string) (*big.Int, bool) { return defaultBigInts.Get(s) }
