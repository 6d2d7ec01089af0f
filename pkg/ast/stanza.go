package ast

// Stanza identifies the gating condition under which a group of
// built-in functions is available.
type Stanza int

const (
	StzAlways Stanza = iota
	StzP5
	StzP6
	StzAltivec
	StzVSX
	StzP7
	StzP7_64
	StzP8
	StzP8V
	StzP9
	StzP9_64
	StzP9V
	StzIEEE128HW
	StzDFP
	StzCrypto
	StzHTM
	StzP10
	StzMMA
	NumStanzas
)

// stanzaNames maps the gating tokens of the built-in file to stanzas.
var stanzaNames = map[string]Stanza{
	"always":        StzAlways,
	"power5":        StzP5,
	"power6":        StzP6,
	"altivec":       StzAltivec,
	"vsx":           StzVSX,
	"power7":        StzP7,
	"power7-64":     StzP7_64,
	"power8":        StzP8,
	"power8-vector": StzP8V,
	"power9":        StzP9,
	"power9-64":     StzP9_64,
	"power9-vector": StzP9V,
	"ieee128-hw":    StzIEEE128HW,
	"dfp":           StzDFP,
	"crypto":        StzCrypto,
	"htm":           StzHTM,
	"power10":       StzP10,
	"mma":           StzMMA,
}

// enableStrings are the enable tags emitted into generated code, in
// stanza order.
var enableStrings = [NumStanzas]string{
	"ENB_ALWAYS",
	"ENB_P5",
	"ENB_P6",
	"ENB_ALTIVEC",
	"ENB_VSX",
	"ENB_P7",
	"ENB_P7_64",
	"ENB_P8",
	"ENB_P8V",
	"ENB_P9",
	"ENB_P9_64",
	"ENB_P9V",
	"ENB_IEEE128_HW",
	"ENB_DFP",
	"ENB_CRYPTO",
	"ENB_HTM",
	"ENB_P10",
	"ENB_MMA",
}

// LookupStanza maps a gating token to its stanza. The second result
// is false for tokens outside the vocabulary.
func LookupStanza(name string) (Stanza, bool) {
	s, ok := stanzaNames[name]
	return s, ok
}

// Enable returns the enable tag emitted for the stanza.
func (s Stanza) Enable() string {
	if s < 0 || s >= NumStanzas {
		return "?"
	}
	return enableStrings[s]
}

// EnableTags returns all enable tags in stanza order.
func EnableTags() []string {
	return enableStrings[:]
}
