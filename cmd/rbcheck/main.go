/*
Command rbcheck exercises red-black trees with pseudo-random keys.

Every round owns an independent tree and runs in its own goroutine. Round
results are broadcast to a reporter which prints them as they arrive.

Usage:

	rbcheck [-n keys] [-seed s] [-rounds r] [-v] [-dot file] [-print]

Round i draws its keys from seed s+i. rbcheck exits with status 1 if any
round fails.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	rbtree "github.com/won-N-only/rbtree-lab"
	"github.com/won-N-only/rbtree-lab/console"
)

func main() {
	n := flag.Int("n", 10000, "number of keys per round")
	seed := flag.Int64("seed", 17, "seed of the first round")
	rounds := flag.Int("rounds", 4, "number of independent trees")
	verbose := flag.Bool("v", false, "trace at debug level")
	dotfile := flag.String("dot", "", "write the last round's tree as Graphviz DOT to `file`")
	printTree := flag.Bool("print", false, "print the last round's tree to the console")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	if *n < 0 || *rounds <= 0 {
		fmt.Fprintln(os.Stderr, "rbcheck: -n must be >= 0 and -rounds > 0")
		os.Exit(2)
	}

	cast := caster.New(nil)
	sub, ok := cast.Sub(nil, uint(*rounds))
	if !ok {
		fmt.Fprintln(os.Stderr, "rbcheck: cannot subscribe to round results")
		os.Exit(2)
	}
	var last *result
	reported := make(chan int)
	go func() {
		failed := 0
		for range *rounds {
			res := (<-sub).(result)
			report(res)
			if res.err != nil {
				failed++
			}
			if res.round == *rounds-1 {
				last = &res
			}
		}
		reported <- failed
	}()

	var wg sync.WaitGroup
	for i := 0; i < *rounds; i++ {
		wg.Add(1)
		go func(round int) {
			defer wg.Done()
			cast.Pub(runRound(round, *seed+int64(round), *n))
		}(i)
	}
	wg.Wait()
	failed := <-reported
	cast.Close()

	if last != nil && last.lastTree != nil {
		if err := dump(last.lastTree, *dotfile, *printTree); err != nil {
			gtrace.CoreTracer.Errorf("rbcheck: %v", err)
		}
		last.lastTree.Destroy()
	}
	if failed > 0 {
		color.Red("%d of %d rounds failed", failed, *rounds)
		os.Exit(1)
	}
	color.Green("all %d rounds passed", *rounds)
}

func report(res result) {
	if res.err != nil {
		color.Red("round %d (seed %d): FAILED: %v", res.round, res.seed, res.err)
		return
	}
	fmt.Printf("round %d (seed %d): %d keys, black height %d, %v ",
		res.round, res.seed, res.keys, res.height, res.elapsed)
	color.Green("ok")
}

func dump(t *rbtree.Tree, dotfile string, printTree bool) error {
	if dotfile != "" {
		f, err := os.Create(dotfile)
		if err != nil {
			return err
		}
		rbtree.Tree2Dot(t, f)
		if err := f.Close(); err != nil {
			return err
		}
		gtrace.CoreTracer.Infof("rbcheck: wrote %s", dotfile)
	}
	if printTree {
		return console.New(nil, nil).Stdout(t)
	}
	return nil
}
