package feature

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDelegatecall(t *testing.T) {
	v := Extract("target.delegatecall(data);")
	assert.Equal(t, 1, v.Get("has_delegatecall"))
	assert.Equal(t, 0, v.Get("has_call_value"))
	assert.Equal(t, 0, v.Get("has_tx_origin"))
	assert.Equal(t, 0, v.Get("has_selfdestruct"))
	assert.Equal(t, 0, v.Get("has_block_timestamp"))
	assert.Equal(t, 0, v.Get("has_reentrancy_pattern"))
	assert.Equal(t, 1, v.Get("n_lines"))
	assert.Equal(t, 0, v.Get("n_payable"))
	assert.Equal(t, 0, v.Get("n_public"))
}

func TestExtractTxOrigin(t *testing.T) {
	v := Extract("require(tx.origin == owner);")
	assert.Equal(t, 1, v.Get("has_tx_origin"))
	assert.Equal(t, 0, v.Get("has_delegatecall"))
}

func TestExtractEmptySource(t *testing.T) {
	v := Extract("")
	for _, k := range v.Keys() {
		assert.Equal(t, 0, v.Get(k), "feature %s", k)
	}
}

func TestExtractSchemaComplete(t *testing.T) {
	want := []string{
		"n_lines", "n_payable", "n_public",
		"has_delegatecall", "has_call_value", "has_tx_origin",
		"has_selfdestruct", "has_block_timestamp",
		"has_reentrancy_pattern",
	}
	v := Extract("")
	assert.Equal(t, want, v.Keys())
	for _, k := range want {
		assert.True(t, v.Has(k), "missing key %s", k)
	}
}

func TestExtractDeterministic(t *testing.T) {
	src := "contract C { function f() public payable { target.delegatecall(data); } }"
	a, _ := json.Marshal(Extract(src))
	b, _ := json.Marshal(Extract(src))
	assert.Equal(t, string(a), string(b))
}

func TestCountLinesConvention(t *testing.T) {
	cases := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"\n", 1},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"a\nb\nc", 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, countLines(tc.src), "source %q", tc.src)
	}
}

func TestWholeWordCounting(t *testing.T) {
	v := Extract("publication public payable_x payable republic")
	assert.Equal(t, 1, v.Get("n_public"), "identifiers containing the token must not count")
	assert.Equal(t, 1, v.Get("n_payable"))

	v = Extract("function f() public payable {}\nfunction g() public payable {}")
	assert.Equal(t, 2, v.Get("n_public"))
	assert.Equal(t, 2, v.Get("n_payable"))
}

func TestCaseSensitiveCounting(t *testing.T) {
	v := Extract("Public PAYABLE")
	assert.Equal(t, 0, v.Get("n_public"))
	assert.Equal(t, 0, v.Get("n_payable"))
}

func TestReentrancyPattern(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int
	}{
		{"canonical", `msg.sender.call{value: amount}("")`, 1},
		{"tight", `addr.call{value:x}()`, 1},
		{"spread", "addr.call{ value :\n\tx }()", 1},
		{"plain call", "addr.call(data)", 0},
		{"value elsewhere", "uint value = 1;", 0},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Extract(tc.src).Get("has_reentrancy_pattern"))
		})
	}
}

func TestKeywordFlagsAreSubstrings(t *testing.T) {
	// compound tokens match inside larger expressions
	v := Extract("if (block.timestamp > deadline) { addr.call.value(1)(); }")
	assert.Equal(t, 1, v.Get("has_block_timestamp"))
	assert.Equal(t, 1, v.Get("has_call_value"))
}

func TestNewKeywordFlagName(t *testing.T) {
	assert.Equal(t, "has_tx_origin", NewKeyword("tx.origin").Flag)
	assert.Equal(t, "has_delegatecall", NewKeyword("delegatecall").Flag)
	assert.Equal(t, "has_block_timestamp", NewKeyword("block.timestamp").Flag)
}

func TestVectorJSONOrder(t *testing.T) {
	data, err := json.Marshal(Extract("x"))
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, `{"n_lines":`), "got %s", s)
	assert.Less(t, strings.Index(s, "n_payable"), strings.Index(s, "has_delegatecall"))
	assert.Less(t, strings.Index(s, "has_delegatecall"), strings.Index(s, "has_reentrancy_pattern"))
}

func TestVectorJSONRoundTrip(t *testing.T) {
	src := "function f() public payable { target.delegatecall(data); }"
	orig := Extract(src)
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Vector
	require.NoError(t, json.Unmarshal(data, &back))
	for _, k := range orig.Keys() {
		assert.Equal(t, orig.Get(k), back.Get(k), "key %s", k)
	}
	assert.Equal(t, orig.Keys(), back.Keys())
}

func TestVectorAlignRestoresSchemaOrder(t *testing.T) {
	keywords := append([]Keyword{NewKeyword("aarisky")}, DefaultKeywords...)
	schema := Schema(keywords)
	fresh := ExtractWith("aarisky tx.origin", schema)

	data, err := json.Marshal(fresh)
	require.NoError(t, err)
	var back Vector
	require.NoError(t, json.Unmarshal(data, &back))
	// non-default keys land at the tail after a round-trip
	assert.NotEqual(t, fresh.Keys(), back.Keys())

	aligned := back.Align(schema)
	assert.Equal(t, fresh.Keys(), aligned.Keys())
	for _, k := range fresh.Keys() {
		assert.Equal(t, fresh.Get(k), aligned.Get(k), "key %s", k)
	}
}

func TestVectorOfUnknownKeys(t *testing.T) {
	v := VectorOf(map[string]int{"n_lines": 2, "zz_custom": 7, "aa_custom": 1})
	assert.Equal(t, []string{"n_lines", "aa_custom", "zz_custom"}, v.Keys())
	assert.Equal(t, 7, v.Get("zz_custom"))
	assert.Equal(t, 0, v.Get("n_payable"), "absent keys read as zero")
	assert.False(t, v.Has("n_payable"))
}
