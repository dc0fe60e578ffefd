package commands

import (
	"context"
	"sort"
	"strings"

	"reportmap/internal/domain"
)

// FindResult is a node matching a query, with a relevance score
type FindResult struct {
	Node  domain.Node
	Score int
}

// FindCommand searches node ids, labels, and roles with fuzzy matching
type FindCommand struct {
	graph *domain.Graph
	Query string
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(g *domain.Graph, query string) *FindCommand {
	return &FindCommand{graph: g, Query: query}
}

// Execute runs the find command and returns scored, sorted results
func (c *FindCommand) Execute(ctx context.Context) ([]FindResult, error) {
	if strings.TrimSpace(c.Query) == "" {
		return nil, nil
	}
	return FuzzySort(c.graph.Nodes(), c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches
// query. Matching is per rune so Japanese labels score like ASCII ids.
func FuzzyScore(target, query string) int {
	t := []rune(strings.ToLower(target))
	q := []rune(strings.ToLower(query))

	if len(q) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(string(t), string(q)) {
		score := 100
		if strings.HasPrefix(string(t), string(q)) {
			score += 50
		}
		return score
	}

	// Fuzzy match: query runes appear in order
	score := 0
	qi := 0
	prev := -1

	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		if prev == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && (t[i-1] == ' ' || t[i-1] == '-' || t[i-1] == '・') {
			score += 10 // after separator
		}
		score++
		prev = i
		qi++
	}

	if qi == len(q) {
		return score
	}
	return 0
}

// FuzzySort scores nodes against the query and returns matches, best first
func FuzzySort(nodes []domain.Node, query string) []FindResult {
	scored := make([]FindResult, 0, len(nodes))

	for _, n := range nodes {
		best := max(
			FuzzyScore(string(n.ID), query),
			FuzzyScore(n.Label, query),
			FuzzyScore(n.Role, query),
		)
		if best > 0 {
			scored = append(scored, FindResult{Node: n, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
