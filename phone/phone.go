// Package phone holds the static phonological inventory: the feature table
// that classifies each base symbol and the list of multi-code-point symbol
// spellings recognized during segmentation. All data is built once and is
// read-only afterwards, so it may be shared freely across goroutines.
package phone

// Symbol is one atomic phonetic symbol in NFD form. Most symbols are a
// single code point; a few span several (see MatchLongestPrefix).
type Symbol string

// Boundary marks a word edge.
const Boundary Symbol = "#"

// Class is the top-level category of a symbol.
type Class int

const (
	ClassUnknown Class = iota
	ClassVowel
	ClassConsonant
	ClassBoundary
)

// Height is the vowel height.
type Height string

const (
	Close Height = "close"
	Mid   Height = "mid"
	Open  Height = "open"
)

// Backness is the vowel backness.
type Backness string

const (
	Front   Backness = "front"
	Central Backness = "central"
	Back    Backness = "back"
)

// Place is the consonant place of articulation.
type Place string

const (
	Bilabial    Place = "bilabial"
	Labiodental Place = "labiodental"
	Dental      Place = "dental"
	Alveolar    Place = "alveolar"
	Prepalatal  Place = "prepalatal"
	Palatal     Place = "palatal"
	Velar       Place = "velar"
	Pharyngeal  Place = "pharyngeal"
	Laryngeal   Place = "laryngeal"
)

// Manner is the consonant manner of articulation.
type Manner string

const (
	Stop        Manner = "stop"
	Fricative   Manner = "fric"
	Sibilant    Manner = "sibilant"
	Affricate   Manner = "affric"
	Nasal       Manner = "nasal"
	Lateral     Manner = "lateral"
	Trill       Manner = "trill"
	Approximant Manner = "approx"
)

// Feature is the phonological classification of one base symbol. Class
// selects which fields are meaningful: Height/Backness/Rounded for
// ClassVowel, Place/Manner/Voiced for ClassConsonant, VowelLike for
// ClassUnknown. ClassBoundary carries no fields.
type Feature struct {
	Class Class

	Height   Height
	Backness Backness
	Rounded  bool

	Place  Place
	Manner Manner
	Voiced bool

	// VowelLike is the fallback category for symbols absent from the
	// table: true only for the canonical vowel letters.
	VowelLike bool
}

// IsVowelLike reports whether the symbol behaves as a vowel for
// categorization purposes, counting unknown symbols that fall back to the
// vowel class.
func (f Feature) IsVowelLike() bool {
	return f.Class == ClassVowel || (f.Class == ClassUnknown && f.VowelLike)
}

func vowel(h Height, b Backness, rounded bool) Feature {
	return Feature{Class: ClassVowel, Height: h, Backness: b, Rounded: rounded}
}

func cons(p Place, m Manner, voiced bool) Feature {
	return Feature{Class: ClassConsonant, Place: p, Manner: m, Voiced: voiced}
}

// features maps base symbols to their classification. Keys are the symbols
// as conventionally written; segmentation emits NFD bases, so precomposed
// entries such as š or ë are reachable through direct Lookup only, while
// their decomposed forms resolve to the bare base plus a diacritic.
var features = map[Symbol]Feature{
	Boundary: {Class: ClassBoundary},

	// Vowels
	"a": vowel(Open, Central, false),
	"e": vowel(Mid, Front, false),
	"ë": vowel(Mid, Central, false), // schwa-ish
	"i": vowel(Close, Front, false),
	"o": vowel(Mid, Back, true),
	"u": vowel(Close, Back, true),
	"ö": vowel(Mid, Front, true),
	"ü": vowel(Close, Front, true),

	// Semivowels, consonant-like approximants
	"i̯": cons(Palatal, Approximant, true),
	"u̯": cons(Velar, Approximant, true),

	// Stops
	"p": cons(Bilabial, Stop, false),
	"b": cons(Bilabial, Stop, true),
	"t": cons(Dental, Stop, false),
	"d": cons(Dental, Stop, true),
	"k": cons(Velar, Stop, false),
	"g": cons(Velar, Stop, true),
	"q": cons(Pharyngeal, Stop, false),
	"ʾ": cons(Laryngeal, Stop, false), // glottal stop

	// Fricatives / spirants
	"f": cons(Labiodental, Fricative, false),
	"v": cons(Labiodental, Fricative, true),
	"β": cons(Bilabial, Fricative, true),
	"ϕ": cons(Bilabial, Fricative, false),
	"δ": cons(Dental, Fricative, true),
	"ϑ": cons(Dental, Fricative, false),
	"ɣ": cons(Velar, Fricative, true),
	"χ": cons(Velar, Fricative, false),
	"h": cons(Laryngeal, Fricative, false),
	"ɦ": cons(Laryngeal, Fricative, true),
	"ḥ": cons(Laryngeal, Fricative, false),
	"ɛ": cons(Laryngeal, Fricative, true),

	// Sibilants
	"s": cons(Alveolar, Sibilant, false),
	"ś": cons(Prepalatal, Sibilant, false),
	"š": cons(Palatal, Sibilant, false),
	"ʃ": cons(Alveolar, Sibilant, true),
	"ʃ̌": cons(Palatal, Sibilant, true),

	// Affricates
	"z": cons(Alveolar, Affricate, false),
	"ʒ": cons(Alveolar, Affricate, true),
	"č": cons(Palatal, Affricate, false),
	"ć": cons(Prepalatal, Affricate, false),
	"ǧ": cons(Palatal, Affricate, true),
	"ģ": cons(Prepalatal, Affricate, true),

	// Nasals
	"m": cons(Bilabial, Nasal, true),
	"n": cons(Alveolar, Nasal, true),
	"ṅ": cons(Velar, Nasal, true),

	// Laterals / rhotics
	"l": cons(Alveolar, Lateral, true),
	"ł": cons(Velar, Lateral, true),
	"r": cons(Alveolar, Trill, true),
	"ɹ": cons(Alveolar, Approximant, true),
}

// canonicalVowels decides vowel-likeness for symbols without a table entry.
var canonicalVowels = map[Symbol]bool{
	"a": true, "e": true, "i": true, "o": true, "u": true,
	"ë": true, "ö": true, "ü": true,
}

// Lookup classifies a symbol. It is total: symbols absent from the table
// come back as ClassUnknown with VowelLike set from the canonical vowel
// letters.
func Lookup(s Symbol) Feature {
	if f, ok := features[s]; ok {
		return f
	}
	return Feature{Class: ClassUnknown, VowelLike: canonicalVowels[s]}
}
