// Package classifier scores text with an exported TF-IDF + logistic
// regression pipeline. When no trained artifact is available it degrades
// to a length-based placeholder scorer, never silently.
package classifier

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
)

const topK = 8

// artifact mirrors the JSON export of the trained pipeline: the
// vectorizer vocabulary and idf weights plus the logistic regression
// coefficients for the "machine generated" class.
type artifact struct {
	Vectorizer struct {
		Vocabulary map[string]int `json:"vocabulary"`
		IDF        []float64      `json:"idf"`
		NgramMin   int            `json:"ngram_min"`
		NgramMax   int            `json:"ngram_max"`
	} `json:"vectorizer"`
	Classifier struct {
		Coef      []float64 `json:"coef"`
		Intercept float64   `json:"intercept"`
	} `json:"classifier"`
}

// Classifier holds the loaded pipeline. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	vocab     map[string]int
	terms     []string
	idf       []float64
	coef      []float64
	intercept float64
	ngramMin  int
	ngramMax  int
	fallback  bool
}

// Load reads a pipeline artifact from path. With required=false a missing
// or unreadable artifact degrades to the fallback scorer; with
// required=true it is a hard error so deployments can refuse to start
// without a real model.
func Load(path string, required bool) (*Classifier, error) {
	clf, err := loadArtifact(path)
	if err != nil {
		if required {
			return nil, fmt.Errorf("load model %s: %w", path, err)
		}
		log.Printf("classifier: no usable model at %s, using fallback length scorer: %v", path, err)
		return &Classifier{fallback: true}, nil
	}
	log.Printf("classifier: loaded model from %s (%d terms)", path, len(clf.vocab))
	return clf, nil
}

func loadArtifact(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	n := len(a.Vectorizer.Vocabulary)
	if n == 0 {
		return nil, fmt.Errorf("artifact has an empty vocabulary")
	}
	if len(a.Vectorizer.IDF) != n || len(a.Classifier.Coef) != n {
		return nil, fmt.Errorf("artifact shape mismatch: %d terms, %d idf weights, %d coefficients",
			n, len(a.Vectorizer.IDF), len(a.Classifier.Coef))
	}

	terms := make([]string, n)
	for term, idx := range a.Vectorizer.Vocabulary {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("artifact vocabulary index %d out of range for %q", idx, term)
		}
		terms[idx] = term
	}

	ngramMin, ngramMax := a.Vectorizer.NgramMin, a.Vectorizer.NgramMax
	if ngramMin <= 0 {
		ngramMin = 1
	}
	if ngramMax < ngramMin {
		ngramMax = ngramMin
	}

	return &Classifier{
		vocab:     a.Vectorizer.Vocabulary,
		terms:     terms,
		idf:       a.Vectorizer.IDF,
		coef:      a.Classifier.Coef,
		intercept: a.Classifier.Intercept,
		ngramMin:  ngramMin,
		ngramMax:  ngramMax,
	}, nil
}

// Fallback reports whether the placeholder scorer is in use.
func (c *Classifier) Fallback() bool { return c.fallback }

// Score returns the probability that text is machine generated plus up to
// 8 tokens the model weighted most strongly toward that prediction.
func (c *Classifier) Score(text string) (float64, []string) {
	if c.fallback {
		return fallbackScore(text), fallbackWords(text)
	}

	x := c.vectorize(normalize(text))

	// Map iteration order is random and float addition is not associative,
	// so sum in index order to keep the score stable across calls.
	idxs := make([]int, 0, len(x))
	for idx := range x {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	z := c.intercept
	for _, idx := range idxs {
		z += x[idx] * c.coef[idx]
	}
	prob := 1.0 / (1.0 + math.Exp(-z))

	return prob, c.topWords(x)
}

// Matches the vectorizer's default token pattern: runs of at least two
// word characters, unicode-aware.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

var whitespacePattern = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(strings.ToLower(s), " "))
}

func tokenize(s string) []string {
	return tokenPattern.FindAllString(s, -1)
}

// vectorize builds the sparse, L2-normalized tf-idf vector of the
// normalized text over the model vocabulary.
func (c *Classifier) vectorize(norm string) map[int]float64 {
	tokens := tokenize(norm)

	x := make(map[int]float64)
	for n := c.ngramMin; n <= c.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := strings.Join(tokens[i:i+n], " ")
			if idx, ok := c.vocab[term]; ok {
				x[idx]++
			}
		}
	}

	var sumSq float64
	for idx := range x {
		x[idx] *= c.idf[idx]
		sumSq += x[idx] * x[idx]
	}
	if sumSq > 0 {
		l2 := math.Sqrt(sumSq)
		for idx := range x {
			x[idx] /= l2
		}
	}
	return x
}

// topWords ranks the terms present in the text by their contribution to
// the "machine generated" class, descending.
func (c *Classifier) topWords(x map[int]float64) []string {
	type contribution struct {
		idx   int
		score float64
	}

	present := make([]contribution, 0, len(x))
	for idx, v := range x {
		present = append(present, contribution{idx: idx, score: v * c.coef[idx]})
	}
	sort.Slice(present, func(i, j int) bool {
		if present[i].score != present[j].score {
			return present[i].score > present[j].score
		}
		return c.terms[present[i].idx] < c.terms[present[j].idx]
	})

	words := make([]string, 0, topK)
	for _, p := range present {
		words = append(words, c.terms[p.idx])
		if len(words) >= topK {
			break
		}
	}
	return words
}
