package renderer

import (
	"strconv"
	"strings"
)

// Kind identifies one of the known renderer variants.
type Kind int

const (
	KindDefault Kind = iota + 1
	KindTitle
)

var kindNames = map[Kind]string{
	KindDefault: "default",
	KindTitle:   "title",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a known variant.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Renderer returns the implementation for k, or nil for an unknown kind.
func (k Kind) Renderer() Renderer {
	switch k {
	case KindDefault:
		return DefaultRenderer{}
	case KindTitle:
		return TitleRenderer{}
	}
	return nil
}

// ParseKind resolves a renderer name as it appears in configuration files.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return k, nil
		}
	}
	return 0, &InvalidRendererError{Name: name}
}

// Chain is an ordered list of renderers applied around a chart's base div.
// Renderers earlier in the chain wrap those after them.
//
// A Chain is not safe for concurrent mutation. Configure it before rendering
// and keep one per rendering context.
type Chain struct {
	kinds []Kind
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Push appends k to the end of the chain.
func (c *Chain) Push(k Kind) (*Chain, error) {
	if !k.Valid() {
		return c, &InvalidRendererError{Name: k.String()}
	}
	c.kinds = append(c.kinds, k)
	return c, nil
}

// Unshift prepends k to the front of the chain.
func (c *Chain) Unshift(k Kind) (*Chain, error) {
	if !k.Valid() {
		return c, &InvalidRendererError{Name: k.String()}
	}
	c.kinds = append([]Kind{k}, c.kinds...)
	return c, nil
}

// PushByName resolves name with ParseKind and appends it.
func (c *Chain) PushByName(name string) (*Chain, error) {
	k, err := ParseKind(name)
	if err != nil {
		return c, err
	}
	return c.Push(k)
}

// UnshiftByName resolves name with ParseKind and prepends it.
func (c *Chain) UnshiftByName(name string) (*Chain, error) {
	k, err := ParseKind(name)
	if err != nil {
		return c, err
	}
	return c.Unshift(k)
}

// Reset empties the chain.
func (c *Chain) Reset() {
	c.kinds = nil
}

// Kinds returns a copy of the chain in order.
func (c *Chain) Kinds() []Kind {
	out := make([]Kind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Len returns the number of renderers in the chain.
func (c *Chain) Len() int {
	return len(c.kinds)
}

// Render pre-renders from the top of the chain to the bottom, then
// post-renders from the bottom back to the top. A KindDefault entry in the
// chain is the chart div itself; without one the default div is nested
// innermost.
func (c *Chain) Render(chart ChartLike, style StyleOptions) string {
	var b strings.Builder
	for _, k := range c.kinds {
		b.WriteString(k.Renderer().PreRender(chart, style))
	}

	if !c.contains(KindDefault) {
		base := DefaultRenderer{}
		b.WriteString(base.PreRender(chart, style))
		b.WriteString(base.PostRender(chart, style))
	}

	for i := len(c.kinds) - 1; i >= 0; i-- {
		b.WriteString(c.kinds[i].Renderer().PostRender(chart, style))
	}
	return b.String()
}

func (c *Chain) contains(k Kind) bool {
	for _, ck := range c.kinds {
		if ck == k {
			return true
		}
	}
	return false
}
