package renderer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type mockChart struct {
	library, name, title string
	nameCalls, titleCalls int
}

func (m *mockChart) Library() string { return m.library }

func (m *mockChart) Name() string {
	m.nameCalls++
	return m.name
}

func (m *mockChart) Title() string {
	m.titleCalls++
	return m.title
}

func newMockChart() *mockChart {
	return &mockChart{library: "flot", name: "foo", title: "foo"}
}

var testStyle = Style("float", "left", "border", "1px solid #cccccc")

const expectedStyle = "float: left; border: 1px solid #cccccc; "

func TestDefaultRenderer(t *testing.T) {
	r := DefaultRenderer{}

	if got := r.RenderStyle(testStyle); got != expectedStyle {
		t.Errorf("RenderStyle() = %q, want %q", got, expectedStyle)
	}

	want := `<div class="flot" id="foo" style="` + expectedStyle + `">`
	if got := r.PreRender(newMockChart(), testStyle); got != want {
		t.Errorf("PreRender() = %q, want %q", got, want)
	}

	if got := r.PostRender(newMockChart(), testStyle); got != "</div>" {
		t.Errorf("PostRender() = %q, want %q", got, "</div>")
	}

	if got := r.RenderStyle(nil); got != "" {
		t.Errorf("RenderStyle(nil) = %q, want empty", got)
	}
}

func TestTitleRenderer(t *testing.T) {
	r := TitleRenderer{}

	if got := r.RenderStyle(testStyle); got != "" {
		t.Errorf("RenderStyle() = %q, want empty", got)
	}

	testCases := []struct {
		name  string
		style StyleOptions
		want  string
	}{
		{"DefaultTag", testStyle, "<div class=\"altamira-chart-title\">\n    <h3>foo</h3>\n"},
		{"CustomTag", testStyle.With("titleTag", "h1"), "<div class=\"altamira-chart-title\">\n    <h1>foo</h1>\n"},
		{"EmptyTag", Style("titleTag", ""), "<div class=\"altamira-chart-title\">\n    <h3>foo</h3>\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.PreRender(newMockChart(), tc.style); got != tc.want {
				t.Errorf("PreRender() = %q, want %q", got, tc.want)
			}
		})
	}

	if got := r.PostRender(newMockChart(), testStyle); got != "</div>" {
		t.Errorf("PostRender() = %q, want %q", got, "</div>")
	}
}

func TestStyleOptions(t *testing.T) {
	s := Style("a", "1", "b", "2", "dangling")
	if len(s) != 2 {
		t.Fatalf("Style() len = %d, want 2", len(s))
	}
	if v, ok := s.Get("b"); !ok || v != "2" {
		t.Errorf("Get(b) = %q, %v", v, ok)
	}
	if _, ok := s.Get("c"); ok {
		t.Error("Get(c) reported a value for a missing key")
	}

	w := s.With("a", "3")
	if v, _ := w.Get("a"); v != "3" {
		t.Errorf("With(a) value = %q, want 3", v)
	}
	if v, _ := s.Get("a"); v != "1" {
		t.Errorf("With() modified the receiver: a = %q", v)
	}
	if got := (DefaultRenderer{}).RenderStyle(w); got != "a: 3; b: 2; " {
		t.Errorf("With() changed declaration order: %q", got)
	}
}

func TestChainRenderEmpty(t *testing.T) {
	c := NewChain()
	chart := newMockChart()

	want := `<div class="flot" id="foo" style="` + expectedStyle + `"></div>`
	if got := c.Render(chart, testStyle); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestChainRenderNesting(t *testing.T) {
	chart := newMockChart()
	base := `<div class="flot" id="foo" style="` + expectedStyle + `"></div>`
	title := "<div class=\"altamira-chart-title\">\n    <h3>foo</h3>\n"

	c := NewChain()
	if _, err := c.Push(KindTitle); err != nil {
		t.Fatalf("Push(KindTitle) error = %v", err)
	}
	want := title + base + "</div>"
	if got := c.Render(chart, testStyle); got != want {
		t.Errorf("Render([title]) = %q, want %q", got, want)
	}

	c.Reset()
	if _, err := c.Push(KindDefault); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Push(KindTitle); err != nil {
		t.Fatal(err)
	}
	d, ti := DefaultRenderer{}, TitleRenderer{}
	want = d.PreRender(chart, testStyle) + ti.PreRender(chart, testStyle) +
		ti.PostRender(chart, testStyle) + d.PostRender(chart, testStyle)
	got := c.Render(chart, testStyle)
	if got != want {
		t.Errorf("Render([default title]) = %q, want %q", got, want)
	}
	if n := strings.Count(got, `id="foo"`); n != 1 {
		t.Errorf("Render([default title]) emitted %d chart divs, want 1", n)
	}

	c.Reset()
	c.Push(KindTitle)
	c.Push(KindDefault)
	want = title + base + "</div>"
	if got := c.Render(chart, testStyle); got != want {
		t.Errorf("Render([title default]) = %q, want %q", got, want)
	}

	c.Reset()
	c.Push(KindDefault)
	if got := c.Render(chart, testStyle); got != base {
		t.Errorf("Render([default]) = %q, want %q", got, base)
	}
}

func TestChainRenderRequeriesChart(t *testing.T) {
	chart := newMockChart()
	c := NewChain()
	c.Push(KindTitle)

	c.Render(chart, nil)
	chart.name = "bar"
	chart.title = "Bar"
	got := c.Render(chart, nil)

	want := "<div class=\"altamira-chart-title\">\n    <h3>Bar</h3>\n" + `<div class="flot" id="bar" style=""></div></div>`
	if got != want {
		t.Errorf("Render() after chart change = %q, want %q", got, want)
	}
	if chart.titleCalls != 2 {
		t.Errorf("Title() called %d times over two renders, want 2", chart.titleCalls)
	}
	if chart.nameCalls != 2 {
		t.Errorf("Name() called %d times over two renders, want 2", chart.nameCalls)
	}
}

func TestChainPushUnshift(t *testing.T) {
	c := NewChain()

	got, err := c.Push(KindDefault)
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if got != c {
		t.Error("Push() should return the chain it was called on")
	}
	c.Push(KindTitle)
	if kinds := c.Kinds(); !reflect.DeepEqual(kinds, []Kind{KindDefault, KindTitle}) {
		t.Errorf("Kinds() after push = %v", kinds)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset() = %d, want 0", c.Len())
	}
	c.Reset()

	c.Unshift(KindDefault)
	c.Unshift(KindTitle)
	if kinds := c.Kinds(); !reflect.DeepEqual(kinds, []Kind{KindTitle, KindDefault}) {
		t.Errorf("Kinds() after unshift = %v", kinds)
	}

	c.Kinds()[0] = KindDefault
	if c.Kinds()[0] != KindTitle {
		t.Error("Kinds() exposed the chain's backing slice")
	}
}

func TestChainInvalidRenderer(t *testing.T) {
	c := NewChain()
	c.Push(KindTitle)

	for _, k := range []Kind{0, Kind(42)} {
		if _, err := c.Push(k); !errors.Is(err, ErrInvalidRenderer) {
			t.Errorf("Push(%v) error = %v, want ErrInvalidRenderer", k, err)
		}
		if _, err := c.Unshift(k); !errors.Is(err, ErrInvalidRenderer) {
			t.Errorf("Unshift(%v) error = %v, want ErrInvalidRenderer", k, err)
		}
	}

	_, err := c.PushByName("chart")
	var invalid *InvalidRendererError
	if !errors.As(err, &invalid) {
		t.Fatalf("PushByName(chart) error = %v, want *InvalidRendererError", err)
	}
	if invalid.Name != "chart" {
		t.Errorf("InvalidRendererError.Name = %q, want chart", invalid.Name)
	}
	if _, err := c.UnshiftByName(""); !errors.Is(err, ErrInvalidRenderer) {
		t.Errorf("UnshiftByName(\"\") error = %v", err)
	}

	if kinds := c.Kinds(); !reflect.DeepEqual(kinds, []Kind{KindTitle}) {
		t.Errorf("failed registrations changed the chain: %v", kinds)
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in   string
		want Kind
	}{
		{"default", KindDefault},
		{"Title", KindTitle},
		{" title ", KindTitle},
	}
	for _, tc := range testCases {
		got, err := ParseKind(tc.in)
		if err != nil {
			t.Errorf("ParseKind(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if KindTitle.String() != "title" || Kind(9).String() != "Kind(9)" {
		t.Errorf("unexpected Kind names: %s, %s", KindTitle, Kind(9))
	}
}
