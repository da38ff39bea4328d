package wcwidth

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wcwidth/internal/testdata"
	"github.com/npillmayer/wcwidth/table"
	"github.com/npillmayer/wcwidth/uax11"
)

var samples = []string{
	"",
	"Hello World",
	"A世BC",
	"abc\txyz",
	"Grüße",
	"e\u0301",
	"a\u0085b",
	"x\u0378y",
	"\x00",
	"\xff\xfe",
	"a\xc0\xafb",
	"日本語のテキスト",
	"😀 ok",
	"\u200b\u200d",
}

func TestColumns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, c := range []struct {
		in      string
		columns int
	}{
		{"", 0},
		{"A世BC", 5},
		{"abc\txyz", 6},     // tab is ignored
		{"e\u0301", 1},      // combining accent
		{"a\u0085b", 2},     // C1 control is ignored
		{"x\u0378y", 3},     // unassigned code point is a placeholder
		{"\x00", 0},         // NUL
		{"\xff\xfe", 2},     // 2 x U+FFFD
		{"a\xc0\xafb", 4},   // overlong encoding, 2 x U+FFFD
		{"\xed\xa0\x80", 3}, // encoded surrogate, 3 x U+FFFD
		{"😀 ok", 5},
	} {
		if w := Columns(c.in); w != c.columns {
			t.Errorf("expected Columns(%q) to be %d, is %d", c.in, c.columns, w)
		}
	}
}

func TestWcswidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, c := range []struct {
		in    string
		width int
	}{
		{"", 0},
		{"A世BC", 5},
		{"abc\txyz", -1},
		{"e\u0301", 1},
		{"a\u0085b", -1},
		{"x\u0378y", -1},
		{"\x00", 0},
		{"a\xffb", 3},
		{"\u200b\u200d", 0},
	} {
		if w := Wcswidth(c.in); w != c.width {
			t.Errorf("expected Wcswidth(%q) to be %d, is %d", c.in, c.width, w)
		}
	}
}

func TestWcwidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, c := range []struct {
		in    string
		width int
	}{
		{"", -1},
		{":)", -1},
		{"世", 2},
		{"A", 1},
		{"\u0301", 0},
		{"e\u0301", -1},
		{"\t", -1},
		{"\x00", 0},
		{"\xff", -1},
		{"\xed\xa0\x80", -1},
		{"\ufffd", 1},
	} {
		if w := Wcwidth(c.in); w != c.width {
			t.Errorf("expected Wcwidth(%q) to be %d, is %d", c.in, c.width, w)
		}
	}
	if w := RuneWidth(0xd800); w != -1 {
		t.Errorf("expected width of surrogate to be -1, is %d", w)
	}
}

func TestWcwidthMatchesTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	e := NewEngine(nil, nil)
	for _, wr := range table.Default().Ranges() {
		for _, r := range []rune{wr.Start, wr.Start + (wr.End-wr.Start)/2, wr.End} {
			if w := e.Width(string(r)); w != int(wr.Class) {
				t.Fatalf("expected Wcwidth(%#U) to be %d, is %d", r, wr.Class, w)
			}
		}
	}
}

func TestProperties(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tbl := table.Default()
	for _, s := range samples {
		if Columns(s) < 0 {
			t.Errorf("expected Columns(%q) to be non-negative", s)
		}
		unknown := false
		for i := 0; i < len(s); {
			r, size, _ := DecodeRuneInString(s[i:])
			if tbl.Lookup(r) == table.Unknown && r != 0 {
				unknown = true
			}
			i += size
		}
		if (Wcswidth(s) == -1) != unknown {
			t.Errorf("expected Wcswidth(%q) == -1 to be %v", s, unknown)
		}
		if tr := Wcstruncate(s, CharacterCount(s)*2); tr != s {
			t.Errorf("expected %q not to be truncated, is %q", s, tr)
		}
		if tr := Wcstruncate(s, 0); tr != "" {
			t.Errorf("expected %q truncated to 0 columns to be empty, is %q", s, tr)
		}
	}
}

func TestCorpus(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	corpus, err := testdata.Corpus("lines.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, sample := range corpus {
		if w := Wcswidth(sample.Text); w != sample.Width {
			t.Errorf("line %d: expected Wcswidth(%q) to be %d, is %d",
				sample.LineNo, sample.Text, sample.Width, w)
		}
		if sample.Width >= 0 {
			if w := Columns(sample.Text); w != sample.Width {
				t.Errorf("line %d: expected Columns(%q) to be %d, is %d",
					sample.LineNo, sample.Text, sample.Width, w)
			}
		}
	}
}

func TestCache(t *testing.T) {
	e := NewEngine(nil, nil)
	if n := e.CacheLen(); n != 1 {
		t.Errorf("expected new cache to hold the NUL entry only, holds %d", n)
	}
	e.Columns("Hello World")
	if n := e.CacheLen(); n != 1 {
		t.Errorf("expected printable ASCII to bypass the cache, cache holds %d", n)
	}
	e.Columns("世界世界")
	if n := e.CacheLen(); n != 3 {
		t.Errorf("expected cache to hold 3 entries, holds %d", n)
	}
	if w := e.Columns("世界"); w != 4 {
		t.Errorf("expected cached width of 4, is %d", w)
	}
}

func TestCustomTable(t *testing.T) {
	tbl := table.MustNew([]table.WidthRange{
		{Class: table.Two, Start: 'a', End: 'z'},
	})
	e := NewEngine(tbl, nil)
	if w := e.Columns("ab"); w != 4 {
		t.Errorf("expected 'ab' to be 4 columns wide, is %d", w)
	}
	if w := e.Columns("a b"); w != 4 {
		t.Errorf("expected space to be ignored, width is %d", w)
	}
	if w := e.Columns("a世"); w != 3 {
		t.Errorf("expected unknown wide character to count 1, width is %d", w)
	}
	if w := e.StringWidth("a世"); w != -1 {
		t.Errorf("expected StringWidth of unknown character to be -1, is %d", w)
	}
	if w := e.StringWidth("\x00"); w != 0 {
		t.Errorf("expected NUL to be of width 0, is %d", w)
	}
}

func TestEastAsianContext(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	latin := NewEngine(nil, uax11.LatinContext)
	eastAsian := NewEngine(nil, uax11.EastAsianContext)
	for _, c := range []struct {
		in               string
		latin, eastAsian int
	}{
		{"±1", 2, 3},
		{"a∣b", 3, 4}, // U+2223 DIVIDES
		{"A世BC", 5, 5},
		{"e\u0301", 1, 1},
	} {
		if w := latin.Columns(c.in); w != c.latin {
			t.Errorf("expected Latin width of %q to be %d, is %d", c.in, c.latin, w)
		}
		if w := eastAsian.Columns(c.in); w != c.eastAsian {
			t.Errorf("expected East Asian width of %q to be %d, is %d", c.in, c.eastAsian, w)
		}
	}
}

func TestConcurrentEngine(t *testing.T) {
	e := NewConcurrentEngine(nil, nil)
	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, s := range samples {
				results[i] += e.Columns(s)
			}
		}(i)
	}
	wg.Wait()
	for i, n := range results {
		if n != results[0] {
			t.Errorf("goroutine %d measured %d columns, goroutine 0 measured %d", i, n, results[0])
		}
	}
}
