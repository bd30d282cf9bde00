package main

import (
	"fmt"
	"math/rand"
	"time"

	rbtree "github.com/won-N-only/rbtree-lab"
)

// result is broadcast for every completed round.
type result struct {
	round    int
	seed     int64
	keys     int
	height   int // black height after all keys have been inserted
	elapsed  time.Duration
	err      error
	lastTree *rbtree.Tree // filled after the final re-insert phase
}

// runRound exercises a fresh tree with n pseudo-random keys drawn from seed:
// bulk insert, find-and-erase of every key, then insert/find/erase of every
// key on its own. The tree is checked after every phase.
func runRound(round int, seed int64, n int) result {
	start := time.Now()
	res := result{round: round, seed: seed, keys: n}
	r := rand.New(rand.NewSource(seed))
	keys := make([]rbtree.Key, n)
	for i := range keys {
		keys[i] = rbtree.Key(r.Int31())
	}
	t := rbtree.New()
	res.err = findErase(t, keys, &res.height)
	if res.err == nil {
		for _, k := range keys {
			t.Insert(k)
		}
		if err := t.Check(); err != nil {
			res.err = fmt.Errorf("re-insert: %w", err)
		}
		res.lastTree = t
	}
	res.elapsed = time.Since(start)
	return res
}

func findErase(t *rbtree.Tree, keys []rbtree.Key, height *int) error {
	for _, k := range keys {
		if p := t.Insert(k); p == nil || p.Key() != k {
			return fmt.Errorf("insert %d returned %v", k, p)
		}
	}
	if err := t.Check(); err != nil {
		return fmt.Errorf("after bulk insert: %w", err)
	}
	*height = t.BlackHeight()
	for i, k := range keys {
		p := t.Find(k)
		if p == nil || p.Key() != k {
			return fmt.Errorf("find %d (#%d) returned %v", k, i, p)
		}
		if err := t.Erase(p); err != nil {
			return err
		}
	}
	if err := t.Check(); err != nil {
		return fmt.Errorf("after bulk erase: %w", err)
	}
	for _, k := range keys {
		if p := t.Find(k); p != nil {
			return fmt.Errorf("key %d still present after erase", k)
		}
	}
	for _, k := range keys {
		p := t.Insert(k)
		if q := t.Find(k); q != p {
			return fmt.Errorf("find %d returned %v, inserted %v", k, q, p)
		}
		if err := t.Erase(p); err != nil {
			return err
		}
		if q := t.Find(k); q != nil {
			return fmt.Errorf("key %d still present after single erase", k)
		}
	}
	if !t.IsEmpty() {
		return fmt.Errorf("tree not empty after erasing all keys, len=%d", t.Len())
	}
	return nil
}
