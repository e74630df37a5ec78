package ats

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/textnorm"
)

// aliases maps common spelling variants to one canonical key before stemming.
var aliases = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"reactjs":    "react",
	"react.js":   "react",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"postgresql": "postgres",
	"psql":       "postgres",
	"mongo":      "mongodb",
	"gcp":        "google cloud",
	"tf":         "terraform",
	"py":         "python",
}

// knownPhrases are multi-word terms matched as a single keyword so they are
// not split into weaker single-word matches.
var knownPhrases = []string{
	"machine learning",
	"deep learning",
	"natural language processing",
	"large language models",
	"computer vision",
	"neural networks",
	"data science",
	"data engineering",
	"data structures",
	"data analysis",
	"big data",
	"computer science",
	"software engineering",
	"distributed systems",
	"system design",
	"rest api",
	"restful api",
	"ci cd",
	"continuous integration",
	"continuous delivery",
	"continuous deployment",
	"unit testing",
	"test driven development",
	"object oriented programming",
	"version control",
	"cloud computing",
	"google cloud",
	"amazon web services",
	"infrastructure as code",
	"site reliability",
	"event driven",
	"front end",
	"back end",
	"full stack",
	"web development",
	"mobile development",
	"react native",
	"ruby on rails",
	"spring boot",
	"sql server",
	"power bi",
	"project management",
	"product management",
	"problem solving",
	"agile methodologies",
}

// stopwords are English function words and job-posting filler that never
// count as keywords.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true, "nor": true,
	"for": true, "with": true, "without": true, "of": true, "in": true, "on": true, "at": true,
	"to": true, "from": true, "by": true, "as": true, "into": true, "onto": true, "about": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true, "being": true,
	"am": true, "will": true, "would": true, "should": true, "can": true, "could": true,
	"may": true, "might": true, "must": true, "shall": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "having": true, "this": true, "that": true,
	"these": true, "those": true, "it": true, "its": true, "we": true, "our": true, "ours": true,
	"us": true, "you": true, "your": true, "yours": true, "youll": true, "youre": true,
	"they": true, "their": true, "them": true, "he": true, "she": true, "his": true, "her": true,
	"i": true, "me": true, "my": true, "who": true, "whom": true, "which": true, "what": true,
	"where": true, "when": true, "why": true, "how": true, "all": true, "any": true, "both": true,
	"each": true, "few": true, "more": true, "most": true, "other": true, "others": true,
	"some": true, "such": true, "no": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true, "also": true,
	"above": true, "after": true, "before": true, "between": true, "through": true,
	"during": true, "under": true, "over": true, "up": true, "down": true, "out": true,
	"off": true, "again": true, "further": true, "then": true, "once": true, "here": true,
	"there": true, "if": true, "because": true, "while": true, "until": true, "etc": true,
	"e.g": true, "i.e": true, "via": true, "per": true, "within": true, "across": true,
	"including": true, "include": true, "includes": true, "like": true, "well": true,
	"new": true, "able": true, "ability": true, "abilities": true, "using": true, "use": true,
	"used": true, "least": true, "minimum": true, "one": true, "two": true, "three": true,

	"looking": true, "seeking": true, "seek": true, "hiring": true, "join": true,
	"joining": true, "candidate": true, "candidates": true, "ideal": true, "role": true,
	"position": true, "opportunity": true, "developer": true, "engineer": true,
	"experience": true, "experienced": true, "year": true, "yrs": true, "strong": true,
	"solid": true, "excellent": true, "good": true, "great": true, "proven": true,
	"team": true, "skill": true, "knowledge": true, "familiarity": true, "familiar": true,
	"understanding": true, "plus": true, "bonus": true, "required": true,
	"requirement": true, "require": true, "preferred": true, "prefer": true, "nice": true,
	"work": true, "working": true, "responsibility": true, "responsible": true, "job": true,
	"company": true, "help": true, "build": true, "building": true, "related": true,
	"know": true, "knowing": true, "ensure": true, "ensuring": true, "make": true,
	"making": true, "get": true, "take": true, "want": true, "need": true, "needs": true,
	"love": true, "enjoy": true, "apply": true, "thrive": true, "bring": true, "eager": true,
	"passionate": true, "passion": true, "demonstrated": true, "day": true, "environment": true,
}

// allowedSingleLetters are one-letter keys that name languages when they
// stand alone; a letter joined by '&' or '-' ("R&D", "C-level") never does.
var allowedSingleLetters = map[string]bool{"c": true, "r": true}

var (
	phraseIndex    map[string]bool
	maxPhraseWords int
)

func init() {
	phraseIndex = make(map[string]bool, len(knownPhrases))
	for _, phrase := range knownPhrases {
		terms := termsOf(textnorm.Tokenize(phrase))
		phraseIndex[strings.Join(terms, " ")] = true
		if len(terms) > maxPhraseWords {
			maxPhraseWords = len(terms)
		}
	}
}

// term returns the comparison form of a lower-cased token key: the alias
// target if there is one, stemmed.
func term(key string) string {
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	return textnorm.Stem(key)
}

func termsOf(tokens []textnorm.Token) []string {
	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = term(tok.Key)
	}
	return terms
}

func isStopword(tok textnorm.Token, t string) bool {
	if stopwords[tok.Key] || stopwords[t] {
		return true
	}
	return len([]rune(tok.Key)) == 1 && (tok.Joined || !allowedSingleLetters[tok.Key])
}

// keyword is a distinct job-description keyword.
type keyword struct {
	// display is the keyword as first written in the job description.
	display string
	// term is the canonical, stemmed form; space-joined for phrases.
	term string
	// count is how often the keyword occurs in the job description.
	count int
}

// extractKeywords tokenizes a job description sentence by sentence, matches
// known phrases greedily (longest first) and keeps the remaining non-stopword
// tokens. Keywords are deduplicated by term in first-occurrence order.
func extractKeywords(text string) []keyword {
	var keywords []keyword
	index := make(map[string]int)
	add := func(display, t string) {
		if i, ok := index[t]; ok {
			keywords[i].count++
			return
		}
		index[t] = len(keywords)
		keywords = append(keywords, keyword{display: display, term: t, count: 1})
	}

	for _, sentence := range textnorm.Sentences(text) {
		tokens := textnorm.Tokenize(sentence)
		terms := termsOf(tokens)
		for i := 0; i < len(tokens); {
			if n := phraseAt(terms, i); n > 0 {
				surfaces := make([]string, n)
				for j := range surfaces {
					surfaces[j] = tokens[i+j].Surface
				}
				add(strings.Join(surfaces, " "), strings.Join(terms[i:i+n], " "))
				i += n
				continue
			}
			if !isStopword(tokens[i], terms[i]) {
				add(tokens[i].Surface, terms[i])
			}
			i++
		}
	}
	return keywords
}

// phraseAt returns the length of the longest known phrase starting at terms[i], or 0.
func phraseAt(terms []string, i int) int {
	for n := maxPhraseWords; n >= 2; n-- {
		if i+n > len(terms) {
			continue
		}
		if phraseIndex[strings.Join(terms[i:i+n], " ")] {
			return n
		}
	}
	return 0
}

// resumeIndex is the flattened, searchable form of resume text.
type resumeIndex struct {
	terms map[string]bool
	// sequence holds all terms space-delimited, with " | " between fields and
	// sentences so a phrase never spans two of them.
	sequence string
}

func newResumeIndex(fields ...string) *resumeIndex {
	idx := &resumeIndex{terms: make(map[string]bool)}
	var seq strings.Builder
	seq.WriteString(" ")
	for _, field := range fields {
		for _, sentence := range textnorm.Sentences(field) {
			terms := termsOf(textnorm.Tokenize(sentence))
			if len(terms) == 0 {
				continue
			}
			for _, t := range terms {
				idx.terms[t] = true
				seq.WriteString(t)
				seq.WriteString(" ")
			}
			seq.WriteString("| ")
		}
	}
	idx.sequence = seq.String()
	return idx
}

// contains reports whether the resume covers a keyword term.
func (idx *resumeIndex) contains(t string) bool {
	if !strings.Contains(t, " ") {
		return idx.terms[t]
	}
	return strings.Contains(idx.sequence, " "+t+" ")
}
