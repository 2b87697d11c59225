package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lk16/tackle/internal/jobs"
)

// Record is a game in Tackle Game Notation: bracketed metadata tags followed
// by whitespace-separated action tokens, numbered in pairs.
type Record struct {
	Tags   map[string]string
	Tokens []string
}

// NewRecord creates an empty record with the job tags required for replay.
func NewRecord(whiteJob, blackJob jobs.Job) Record {
	return Record{
		Tags: map[string]string{
			"WhiteJob": whiteJob.Name,
			"BlackJob": blackJob.Name,
		},
	}
}

// AddAction appends one action token.
func (rec *Record) AddAction(action Action) {
	rec.Tokens = append(rec.Tokens, action.String())
}

// ParseRecord reads a record. Tag lines look like `[White "player"]`, move
// number tokens like "1." are skipped.
func ParseRecord(r io.Reader) (Record, error) {
	rec := Record{Tags: map[string]string{}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			key, value, err := parseTag(line)
			if err != nil {
				return Record{}, err
			}
			rec.Tags[key] = value
			continue
		}

		for _, token := range strings.Fields(line) {
			if strings.HasSuffix(token, ".") {
				continue
			}
			rec.Tokens = append(rec.Tokens, token)
		}
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("reading record: %w", err)
	}
	return rec, nil
}

func parseTag(line string) (string, string, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")

	key, value, ok := strings.Cut(inner, " ")
	if !ok {
		return "", "", fmt.Errorf("invalid tag line %q", line)
	}

	value = strings.Trim(value, `"`)
	return key, value, nil
}

// String renders the record in the same layout ParseRecord accepts.
func (rec Record) String() string {
	var sb strings.Builder

	for _, key := range []string{"WhiteJob", "BlackJob", "White", "Black", "Result"} {
		if value, ok := rec.Tags[key]; ok {
			fmt.Fprintf(&sb, "[%s %q]\n", key, value)
		}
	}
	sb.WriteByte('\n')

	for i := 0; i < len(rec.Tokens); i += 2 {
		fmt.Fprintf(&sb, "%d. %s", i/2+1, rec.Tokens[i])
		if i+1 < len(rec.Tokens) {
			sb.WriteByte(' ')
			sb.WriteString(rec.Tokens[i+1])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Replay rebuilds the game state the record describes.
func (rec Record) Replay() (Game, error) {
	whiteJob, err := jobs.ByName(rec.Tags["WhiteJob"])
	if err != nil {
		return Game{}, fmt.Errorf("white job: %w", err)
	}
	blackJob, err := jobs.ByName(rec.Tags["BlackJob"])
	if err != nil {
		return Game{}, fmt.Errorf("black job: %w", err)
	}

	g := NewGame(whiteJob, blackJob)
	for i, token := range rec.Tokens {
		action, err := ParseAction(g.Phase(), token)
		if err != nil {
			return Game{}, fmt.Errorf("token %d %q: %w", i+1, token, err)
		}
		if err := g.Apply(action); err != nil {
			return Game{}, fmt.Errorf("token %d %q: %w", i+1, token, err)
		}
	}
	return g, nil
}
