package intent

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/duitbot/duitbot/internal/model"
)

// Slot tokens substituted for entity placeholders and unseen words so the
// scorer generalizes over concrete amounts and categories.
const (
	tokenAmount   = "<amount>"
	tokenCategory = "<category>"
	tokenDate     = "<date>"
)

// BayesClassifier is a multinomial naive-Bayes scorer trained at
// construction from a labeled utterance corpus. Training is deterministic:
// intents are scored in sorted order and ties resolve to the
// lexicographically first intent. The trained model is immutable.
type BayesClassifier struct {
	tokenCounts map[model.Intent]map[string]int
	totalTokens map[model.Intent]int
	docCounts   map[model.Intent]int
	vocabulary  map[string]bool
	intents     []model.Intent
	totalDocs   int
	threshold   float64
}

// NewBayesClassifier trains a scorer on the given corpus.
func NewBayesClassifier(corpus []TrainingDocument, threshold float64) *BayesClassifier {
	c := &BayesClassifier{
		tokenCounts: make(map[model.Intent]map[string]int),
		totalTokens: make(map[model.Intent]int),
		docCounts:   make(map[model.Intent]int),
		vocabulary:  make(map[string]bool),
		threshold:   threshold,
	}

	for _, doc := range corpus {
		tokens := tokenizeTraining(doc.Text)
		if c.tokenCounts[doc.Intent] == nil {
			c.tokenCounts[doc.Intent] = make(map[string]int)
			c.intents = append(c.intents, doc.Intent)
		}
		c.docCounts[doc.Intent]++
		c.totalDocs++
		for _, token := range tokens {
			c.tokenCounts[doc.Intent][token]++
			c.totalTokens[doc.Intent]++
			c.vocabulary[token] = true
		}
	}

	sort.Slice(c.intents, func(i, j int) bool { return c.intents[i] < c.intents[j] })
	return c
}

// NewDefaultBayesClassifier trains a scorer on the built-in corpus.
func NewDefaultBayesClassifier(threshold float64) *BayesClassifier {
	return NewBayesClassifier(DefaultCorpus(), threshold)
}

// Classify scores a message against every trained intent.
func (c *BayesClassifier) Classify(text string) model.ClassifiedIntent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || c.totalDocs == 0 {
		return model.ClassifiedIntent{Intent: model.IntentUnrecognized}
	}

	if result, ok := classifyMultiple(trimmed, c.classifyClause); ok {
		if result.Confidence >= c.threshold {
			return result
		}
		return model.ClassifiedIntent{Intent: model.IntentUnrecognized, Confidence: result.Confidence}
	}

	result := c.classifyClause(trimmed)
	if result.Confidence < c.threshold {
		return model.ClassifiedIntent{Intent: model.IntentUnrecognized, Confidence: result.Confidence}
	}
	return result
}

func (c *BayesClassifier) classifyClause(clause string) model.ClassifiedIntent {
	tokens := c.tokenizeInput(clause)
	if len(tokens) == 0 {
		return model.ClassifiedIntent{Intent: model.IntentUnrecognized}
	}

	vocabSize := len(c.vocabulary)
	logScores := make([]float64, len(c.intents))
	for i, intent := range c.intents {
		score := math.Log(float64(c.docCounts[intent]) / float64(c.totalDocs))
		for _, token := range tokens {
			count := c.tokenCounts[intent][token]
			score += math.Log(float64(count+1) / float64(c.totalTokens[intent]+vocabSize))
		}
		logScores[i] = score
	}

	// Normalize log scores into a posterior for the best intent.
	maxScore := logScores[0]
	best := 0
	for i, s := range logScores {
		if s > maxScore {
			maxScore = s
			best = i
		}
	}
	var sum float64
	for _, s := range logScores {
		sum += math.Exp(s - maxScore)
	}
	confidence := 1.0 / sum

	return model.ClassifiedIntent{Intent: c.intents[best], Confidence: confidence}
}

// tokenizeTraining converts corpus placeholders into slot tokens.
func tokenizeTraining(text string) []string {
	replacer := strings.NewReplacer(
		"%amount%", tokenAmount,
		"%category%", tokenCategory,
		"%date%", tokenDate,
	)
	return strings.Fields(strings.ToLower(replacer.Replace(text)))
}

// tokenizeInput maps concrete entities back to slot tokens: digit-bearing
// tokens become the amount slot, words outside the vocabulary become the
// category slot.
func (c *BayesClassifier) tokenizeInput(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		switch {
		case containsDigit(field):
			tokens = append(tokens, tokenAmount)
		case c.vocabulary[field]:
			tokens = append(tokens, field)
		default:
			tokens = append(tokens, tokenCategory)
		}
	}
	return tokens
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
