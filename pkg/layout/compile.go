package layout

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/content"
	"github.com/aretw0/tessera/pkg/primitive"
	"github.com/aretw0/tessera/pkg/style"
)

// Styled is the content type documents compile to.
type Styled = content.Styled[style.Termenv]

// Block is a compiled document.
type Block = block.Block[Styled]

// MarkdownRenderer renders markdown source for a terminal of the given width.
// A width of zero lets the renderer choose.
type MarkdownRenderer interface {
	RenderMarkdown(source string, width int) (string, error)
}

// MarkdownFunc adapts a function to MarkdownRenderer.
type MarkdownFunc func(source string, width int) (string, error)

func (f MarkdownFunc) RenderMarkdown(source string, width int) (string, error) {
	return f(source, width)
}

// Compiler turns documents into blocks.
type Compiler struct {
	logger   *slog.Logger
	markdown MarkdownRenderer
	profile  termenv.Profile
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger for the compiler.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithMarkdown sets the renderer used for markdown nodes. Without one, markdown
// nodes fail to compile.
func WithMarkdown(r MarkdownRenderer) Option {
	return func(c *Compiler) {
		c.markdown = r
	}
}

// WithProfile sets the color profile stamped on every style. The default,
// termenv.Ascii, produces undecorated output.
func WithProfile(p termenv.Profile) Option {
	return func(c *Compiler) {
		c.profile = p
	}
}

// NewCompiler creates a compiler.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		logger:  logging.NewNop(),
		profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile is shorthand for NewCompiler(opts...).Compile(doc).
func Compile(doc *Document, opts ...Option) (Block, error) {
	return NewCompiler(opts...).Compile(doc)
}

// Compile builds the block described by doc. Every problem in the document is
// reported, as NodeErrors inside an AggregateError.
func (c *Compiler) Compile(doc *Document) (Block, error) {
	if doc == nil || doc.Layout == nil {
		return Block{}, ErrNoLayout
	}
	run := &compilation{
		compiler: c,
		doc:      doc,
		stroke:   primitive.Single,
		visiting: make(map[string]bool),
		compiled: make(map[string]Block),
	}
	if doc.Stroke != "" {
		stroke, err := primitive.StrokeByName(doc.Stroke)
		if err != nil {
			run.fail("stroke", "", err)
		} else {
			run.stroke = stroke
		}
	}

	b := run.node("layout", doc.Layout)
	if len(run.errs) > 0 {
		c.logger.Debug("layout rejected", "errors", len(run.errs))
		return Block{}, &AggregateError{Errors: run.errs}
	}
	c.logger.Debug("layout compiled", "width", b.Width(), "height", b.Height())
	return b, nil
}

// compilation is the state of one Compile call.
type compilation struct {
	compiler *Compiler
	doc      *Document
	stroke   primitive.Stroke
	visiting map[string]bool
	compiled map[string]Block
	errs     []error
}

func (r *compilation) fail(path, reason string, err error) {
	r.errs = append(r.errs, &NodeError{Path: path, Reason: reason, Err: err})
}

func (r *compilation) node(path string, raw any) Block {
	switch v := raw.(type) {
	case string:
		return r.text(path, textNode{Text: v})
	case map[string]any:
		kind, _ := v["kind"].(string)
		if _, ok := v["ref"]; ok && kind == "" {
			kind = "ref"
		}
		return r.kinded(path, kind, v)
	case nil:
		r.fail(path, "node is empty", nil)
	default:
		r.fail(path, fmt.Sprintf("expected a map or string, got %T", raw), nil)
	}
	return Block{}
}

func (r *compilation) kinded(path, kind string, raw map[string]any) Block {
	switch kind {
	case "text":
		var n textNode
		if r.decode(path, raw, &n) {
			return r.text(path, n)
		}
	case "fill":
		var n fillNode
		if r.decode(path, raw, &n) {
			return r.fill(path, n)
		}
	case "line":
		var n lineNode
		if r.decode(path, raw, &n) {
			return r.line(path, n)
		}
	case "divider":
		var n dividerNode
		if r.decode(path, raw, &n) {
			return r.divider(path, n)
		}
	case "frame":
		var n frameNode
		if r.decode(path, raw, &n) {
			return r.frame(path, n)
		}
	case "join":
		var n joinNode
		if r.decode(path, raw, &n) {
			return r.join(path, n)
		}
	case "overlay":
		var n overlayNode
		if r.decode(path, raw, &n) {
			return r.overlay(path, n)
		}
	case "pad":
		var n padNode
		if r.decode(path, raw, &n) {
			return r.pad(path, n)
		}
	case "markdown":
		var n markdownNode
		if r.decode(path, raw, &n) {
			return r.markdown(path, n)
		}
	case "ref":
		var n refNode
		if r.decode(path, raw, &n) {
			return r.ref(path, n)
		}
	case "":
		r.fail(path, "missing kind", nil)
	default:
		r.fail(path, "", fmt.Errorf("%w: %q", ErrUnknownKind, kind))
	}
	return Block{}
}

func (r *compilation) decode(path string, raw map[string]any, out any) bool {
	if err := decode(raw, out); err != nil {
		r.fail(path, "invalid fields", err)
		return false
	}
	return true
}

func (r *compilation) style(path string, raw any) style.Termenv {
	var s style.Termenv
	switch v := raw.(type) {
	case nil:
	case string:
		parsed, err := style.Parse(v)
		if err != nil {
			r.fail(path+".style", "", err)
		}
		s = parsed
	case map[string]any:
		if err := decode(v, &s); err != nil {
			r.fail(path+".style", "invalid style", err)
		}
	default:
		r.fail(path+".style", fmt.Sprintf("expected a map or string, got %T", raw), nil)
	}
	return s.WithProfile(r.compiler.profile)
}

// unstyled reports a style on a node kind that cannot carry one.
func (r *compilation) unstyled(path, kind string, raw any) {
	if raw != nil {
		r.fail(path+".style", kind+" nodes take no style; style their children instead", nil)
	}
}

func (r *compilation) strokeFor(path, name string) primitive.Stroke {
	if name == "" {
		return r.stroke
	}
	s, err := primitive.StrokeByName(name)
	if err != nil {
		r.fail(path+".stroke", "", err)
		return r.stroke
	}
	return s
}

func (r *compilation) restyle(path string, raw any, b Block) Block {
	st := r.style(path, raw)
	if st.IsZero() {
		return b
	}
	return block.Restyle(b, st)
}

func (r *compilation) nonNegative(path, field string, v int) int {
	if v < 0 {
		r.fail(path+"."+field, fmt.Sprintf("must not be negative, got %d", v), nil)
		return 0
	}
	return v
}

func (r *compilation) text(path string, n textNode) Block {
	text := n.Text
	if width := r.nonNegative(path, "wrap", n.Wrap); width > 0 {
		text = wrap.String(wordwrap.String(text, width), width)
	}
	lines := content.NewStyled(r.style(path, n.Style), text).Lines()

	switch strings.ToLower(n.Align) {
	case "", "left":
		return block.WithLines(lines)
	case "right":
		var b Block
		for _, line := range lines {
			b = b.JoinTopToBottomAtRight(block.WithLines([]Styled{line}))
		}
		return b
	case "center":
		width := 0
		for _, line := range lines {
			width = max(width, line.Width())
		}
		var b Block
		for _, line := range lines {
			row := block.WithLines([]Styled{line})
			b = b.JoinTopToBottomAtLeft(row.PadAtLeft((width - row.Width()) / 2))
		}
		return b.PadToWidthAtRight(width)
	}
	r.fail(path+".align", fmt.Sprintf("expected left, right or center, got %q", n.Align), nil)
	return Block{}
}

func (r *compilation) fill(path string, n fillNode) Block {
	with := n.With
	if with == "" {
		with = " "
	}
	width := r.nonNegative(path, "width", n.Width)
	height := r.nonNegative(path, "height", n.Height)
	return block.Filled(width, height, content.NewStyled(r.style(path, n.Style), with))
}

func (r *compilation) axis(path, s string) align.Axis {
	if s == "" {
		return align.LeftRight
	}
	axis, err := align.ParseAxis(s)
	if err != nil {
		r.fail(path+".axis", "", err)
	}
	return axis
}

func (r *compilation) line(path string, n lineNode) Block {
	axis := r.axis(path, n.Axis)
	length := r.nonNegative(path, "length", n.Length)
	stroke := r.strokeFor(path, n.Stroke)
	return r.restyle(path, n.Style, primitive.Line[Styled](axis, length, stroke))
}

func (r *compilation) divider(path string, n dividerNode) Block {
	length := r.nonNegative(path, "length", n.Length)
	stroke := r.strokeFor(path, n.Stroke)
	return r.restyle(path, n.Style, primitive.Divider[Styled](length, n.Label, stroke))
}

func (r *compilation) frame(path string, n frameNode) Block {
	child := Block{}
	if n.Child != nil {
		child = r.node(path+".child", n.Child)
	}
	stroke := r.strokeFor(path, n.Stroke)
	st := r.style(path, n.Style)
	if st.IsZero() {
		return primitive.Card(child, n.Title, stroke)
	}
	border := primitive.Card(block.WithDimensions[Styled](child.Width(), child.Height()), n.Title, stroke)
	return child.PadAtLeft(1).PadAtTop(1).OverlayWith(block.Restyle(border, st), content.PreferFront)
}

func (r *compilation) children(path string, raw []any) []Block {
	if len(raw) == 0 {
		r.fail(path+".children", "at least one child is required", nil)
		return nil
	}
	out := make([]Block, len(raw))
	for i, child := range raw {
		out[i] = r.node(fmt.Sprintf("%s.children[%d]", path, i), child)
	}
	return out
}

func (r *compilation) join(path string, n joinNode) Block {
	r.unstyled(path, "join", n.Style)
	axis := r.axis(path, n.Axis)
	at := axis.Orthogonal().Origin()
	if n.At != "" {
		parsed, err := align.ParseAlignment(n.At)
		switch {
		case err != nil:
			r.fail(path+".at", "", err)
		case parsed.Axis() == axis:
			r.fail(path+".at", fmt.Sprintf("%s is on the join axis %s", parsed, axis), nil)
		default:
			at = parsed
		}
	}
	gap := r.nonNegative(path, "gap", n.Gap)
	along := align.AxialAlignment{Axis: axis, At: at}

	var out Block
	for i, child := range r.children(path, n.Children) {
		if i > 0 && gap > 0 {
			out = out.JoinAt(along, block.WithLength[Styled](axis, gap, 0))
		}
		out = out.JoinAt(along, child)
	}
	return out
}

func (r *compilation) overlay(path string, n overlayNode) Block {
	r.unstyled(path, "overlay", n.Style)
	var decide content.Decider
	switch strings.ToLower(n.Decider) {
	case "", "opaque":
		decide = content.Opaque
	case "prefer-front":
		decide = content.PreferFront
	case "front":
		decide = content.AlwaysFront
	case "back":
		decide = content.AlwaysBack
	default:
		r.fail(path+".decider", fmt.Sprintf("expected opaque, prefer-front, front or back, got %q", n.Decider), nil)
		decide = content.Opaque
	}

	layers := r.children(path, n.Children)
	if len(layers) == 0 {
		return Block{}
	}
	out := layers[len(layers)-1]
	for i := len(layers) - 2; i >= 0; i-- {
		out = layers[i].OverlayWith(out, decide)
	}
	return out
}

func (r *compilation) pad(path string, n padNode) Block {
	r.unstyled(path, "pad", n.Style)
	if n.Child == nil {
		r.fail(path+".child", "child is required", nil)
		return Block{}
	}
	b := r.node(path+".child", n.Child).
		PadAtLeft(r.nonNegative(path, "left", n.Left)).
		PadAtRight(r.nonNegative(path, "right", n.Right)).
		PadAtTop(r.nonNegative(path, "top", n.Top)).
		PadAtBottom(r.nonNegative(path, "bottom", n.Bottom))

	if n.Width > 0 {
		b = b.PadToLengthAt(r.edge(path+".horizontal", n.Horizontal, align.LeftRight), n.Width)
	}
	if n.Height > 0 {
		b = b.PadToLengthAt(r.edge(path+".vertical", n.Vertical, align.TopBottom), n.Height)
	}
	return b
}

// edge parses an alignment on axis, defaulting to the axis end.
func (r *compilation) edge(path, s string, axis align.Axis) align.Alignment {
	if s == "" {
		return axis.End()
	}
	a, err := align.ParseAlignment(s)
	if err != nil {
		r.fail(path, "", err)
		return axis.End()
	}
	if a.Axis() != axis {
		r.fail(path, fmt.Sprintf("%s is not on the %s axis", a, axis), nil)
		return axis.End()
	}
	return a
}

func (r *compilation) markdown(path string, n markdownNode) Block {
	if r.compiler.markdown == nil {
		r.fail(path, "", ErrNoMarkdown)
		return Block{}
	}
	out, err := r.compiler.markdown.RenderMarkdown(n.Source, r.nonNegative(path, "width", n.Width))
	if err != nil {
		r.fail(path, "markdown rendering failed", err)
		return Block{}
	}
	text := strings.Trim(style.Strip(out), "\n")
	return block.WithContent(content.NewStyled(r.style(path, n.Style), text))
}

func (r *compilation) ref(path string, n refNode) Block {
	r.unstyled(path, "ref", n.Style)
	if b, ok := r.compiled[n.Ref]; ok {
		return b
	}
	def, ok := r.doc.Defs[n.Ref]
	if !ok {
		r.fail(path, "", fmt.Errorf("%w: %q", ErrUnknownRef, n.Ref))
		return Block{}
	}
	if r.visiting[n.Ref] {
		r.fail(path, "", fmt.Errorf("%w through %q", ErrCycle, n.Ref))
		return Block{}
	}

	r.visiting[n.Ref] = true
	failed := len(r.errs)
	b := r.node("defs."+n.Ref, def)
	delete(r.visiting, n.Ref)

	if len(r.errs) == failed {
		r.compiled[n.Ref] = b
	}
	return b
}
