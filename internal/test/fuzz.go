package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Letters with special case mappings in at least one supported language.
var specialRunes = []rune{
	// Turkish
	'I', 'i', 'İ', 'ı', 'Ç', 'ç', 'Ğ', 'ğ', 'Ö', 'ö', 'Ş', 'ş',
	// Spanish
	'Á', 'á', 'Í', 'í', 'Ñ', 'ñ', 'Ü', 'ü',
	// multi-rune and title case mappings
	'ß', 'ẞ', 'ǅ', 'ǆ', 'Ǆ', 'ŉ', 'ΐ', 'ﬁ', 'ﬀ',
	// combining dot above, combining acute, Kelvin K
	'\u0307', '\u0301', '\u212a',
}

var (
	letterRunes = tableRunes(unicode.Upper, unicode.Lower, unicode.Title)
	spaceRunes  = tableRunes(unicode.White_Space)
)

func tableRunes(tables ...*unicode.RangeTable) []rune {
	var rs []rune
	rangetable.Visit(rangetable.Merge(tables...), func(r rune) {
		rs = append(rs, r)
	})
	return rs
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

func randWordRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n == 0:
		return utf8.RuneError
	case n <= 20:
		return specialRunes[rr.Intn(len(specialRunes))]
	case n <= 40:
		return letterRunes[rr.Intn(len(letterRunes))]
	case n <= 45:
		return rune("-:?!.'&/@"[rr.Intn(9)])
	default:
		r := rune('a' + rr.Intn(26))
		if rr.Intn(4) == 0 {
			r = unicode.ToUpper(r)
		}
		return r
	}
}

func randSpaceRune(rr *rand.Rand) rune {
	if rr.Intn(4) == 0 {
		return spaceRunes[rr.Intn(len(spaceRunes))]
	}
	return ' '
}

// RandomText returns a random string of words separated by runs of
// whitespace. The string may start or end with whitespace.
func RandomText(rr *rand.Rand) string {
	var b strings.Builder
	words := intn(rr, 8)
	if rr.Intn(4) == 0 {
		b.WriteRune(randSpaceRune(rr))
	}
	for i := 0; i < words; i++ {
		if i > 0 {
			for n := 1 + intn(rr, 3); n > 0; n-- {
				b.WriteRune(randSpaceRune(rr))
			}
		}
		for n := 1 + intn(rr, 10); n > 0; n-- {
			b.WriteRune(randWordRune(rr))
		}
	}
	if rr.Intn(4) == 0 {
		b.WriteRune(randSpaceRune(rr))
	}
	return b.String()
}

// Seeds returns a corpus of random strings suitable for (*testing.F).Add.
func Seeds(n int) []string {
	rr := rand.New(rand.NewSource(1))
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = RandomText(rr)
	}
	return seeds
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

// RandomTest calls fn with random text from multiple seeds in parallel.
func RandomTest(t *testing.T, fn func(t testing.TB, s string)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_000
	if testing.Short() {
		count /= 4
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 1_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			rr := rand.New(rand.NewSource(seed))
			for i := 0; i < count && !t.Failed(); i++ {
				fn(t, RandomText(rr))
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}
