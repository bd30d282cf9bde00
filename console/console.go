/*
Package console renders red-black trees to a terminal, for debugging.

Trees are printed sideways: the root sits at the left margin, right subtrees
above their parent and left subtrees below. Node colors are shown with terminal
colors:

	        ┌── 67
	    ┌── 34
	    │   └── 23
	── 10
	    │   ┌── 8
	    └── 5
	        └── 2

_________________________________________________________________________

# BSD License

Please refer to the License file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	rbtree "github.com/won-N-only/rbtree-lab"
	"golang.org/x/term"
)

// tracer writes to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Config holds layout parameters for printing.
type Config struct {
	KeyWidth  int // columns of indentation per tree level
	LineWidth int // lines will not exceed this width; deeper nodes are elided
}

// Printer outputs trees with colored nodes.
type Printer struct {
	colors map[rbtree.Color]*color.Color
	config *Config
}

// New creates a printer. colors maps node colors to terminal colors and may be
// nil, in which case a default palette is used. config may be nil, in which case
// it is derived from the current terminal.
func New(colors map[rbtree.Color]*color.Color, config *Config) *Printer {
	p := &Printer{colors: colors, config: config}
	if p.colors == nil {
		p.colors = makeDefaultPalette()
	}
	if p.config == nil {
		p.config = ConfigFromTerminal()
	}
	return p
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	return map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed, color.Bold),
		rbtree.Black: color.New(color.FgHiBlack, color.Bold),
	}
}

// Print writes the tree to w. An empty tree is printed as a single "·".
func (p *Printer) Print(t *rbtree.Tree, w io.Writer) error {
	if t.IsEmpty() {
		_, err := io.WriteString(w, "·\n")
		return err
	}
	lp := linePrinter{Printer: p, w: w}
	lp.subtree(t.Root(), "", "── ")
	return lp.err
}

// Stdout prints a tree to stdout.
func (p *Printer) Stdout(t *rbtree.Tree) error {
	return p.Print(t, os.Stdout)
}

type linePrinter struct {
	*Printer
	w   io.Writer
	err error
}

// subtree prints n with prefix prepended to every line; branch is the connector
// drawn immediately before n's key.
func (lp *linePrinter) subtree(n *rbtree.Node, prefix, branch string) {
	if n == nil || lp.err != nil {
		return
	}
	pad := strings.Repeat(" ", max(lp.config.KeyWidth-1, 0))
	if lp.tooWide(prefix + " " + pad) {
		if n.Left() != nil || n.Right() != nil {
			lp.line(prefix, branch, fmt.Sprintf("%d …", n.Key()), n.Color())
		} else {
			lp.line(prefix, branch, fmt.Sprint(n.Key()), n.Color())
		}
		return
	}
	up, down := "│", " "
	if branch == "┌── " {
		up, down = " ", "│"
	} else if branch == "── " {
		up, down = " ", " "
	}
	lp.subtree(n.Right(), prefix+up+pad, "┌── ")
	lp.line(prefix, branch, fmt.Sprint(n.Key()), n.Color())
	lp.subtree(n.Left(), prefix+down+pad, "└── ")
}

func (lp *linePrinter) tooWide(prefix string) bool {
	return lp.config.LineWidth > 0 && len([]rune(prefix))+lp.config.KeyWidth+4 > lp.config.LineWidth
}

func (lp *linePrinter) line(prefix, branch, key string, c rbtree.Color) {
	if lp.err != nil {
		return
	}
	if _, lp.err = io.WriteString(lp.w, prefix+branch); lp.err != nil {
		return
	}
	if col, ok := lp.colors[c]; ok {
		_, lp.err = col.Fprint(lp.w, key)
	} else {
		_, lp.err = io.WriteString(lp.w, key)
	}
	if lp.err == nil {
		_, lp.err = io.WriteString(lp.w, "\n")
	}
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{KeyWidth: 4}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 20 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 20
		}
	} else {
		config.LineWidth = 80
	}
	tracer().P("print", "console").Infof("setting line length to %d columns", config.LineWidth)
	return config
}
