package ingest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordTokenizer splits one sentence into Treebank-style word tokens:
// punctuation is separated from words, clitics are split off ("don't" ->
// [do, n't]) and only the sentence-final period becomes its own token.
// Typographic quotes are tokens of their own, so "don’t" -> [don, ’, t].
type WordTokenizer struct {
	infixRE      *regexp.Regexp
	contractions []string
	clitics      map[string]struct{}
	closers      string
	compounds    map[string][]int
}

// NewWordTokenizer returns a tokenizer with the default English rules.
func NewWordTokenizer() *WordTokenizer {
	clitics := make(map[string]struct{}, len(contractions))
	for _, c := range contractions {
		clitics[c] = struct{}{}
	}
	clitics["'t"] = struct{}{}
	clitics["'n"] = struct{}{}
	return &WordTokenizer{
		infixRE:      infixRE,
		contractions: contractions,
		clitics:      clitics,
		closers:      `)]}>"'`,
		compounds:    compounds,
	}
}

// Tokenize splits sentence into word tokens. Whitespace-only input yields nil.
func (t *WordTokenizer) Tokenize(sentence string) []string {
	fields := strings.Fields(sentence)

	var tokens []string
	for i, field := range fields {
		pieces := t.splitInfix(field)
		lastField := i == len(fields)-1
		for j, piece := range pieces {
			final := lastField && onlyClosers(pieces[j+1:], t.closers)
			tokens = append(tokens, t.doSplit(piece, final)...)
		}
	}
	return tokens
}

// splitInfix cuts a whitespace-delimited field at punctuation that is always
// its own token. Commas and colons survive only before a digit ("1,000",
// "10:30").
func (t *WordTokenizer) splitInfix(field string) []string {
	var pieces []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(field); {
		if loc := t.infixRE.FindStringIndex(field[i:]); loc != nil && loc[0] == 0 {
			flush()
			pieces = append(pieces, field[i:i+loc[1]])
			i += loc[1]
			continue
		}
		r, size := utf8.DecodeRuneInString(field[i:])
		if r == ',' || r == ':' {
			next, _ := utf8.DecodeRuneInString(field[i+size:])
			if !unicode.IsDigit(next) {
				flush()
				pieces = append(pieces, string(r))
				i += size
				continue
			}
		}
		cur.WriteString(field[i : i+size])
		i += size
	}
	flush()
	return pieces
}

// doSplit peels quotes, a final period and clitics off a single piece.
func (t *WordTokenizer) doSplit(token string, final bool) []string {
	var head, tail []string

	for token != "" {
		lower := strings.ToLower(token)
		if widths, ok := t.compounds[lower]; ok {
			start := 0
			for _, w := range widths {
				head = append(head, token[start:start+w])
				start += w
			}
			token = ""
			break
		}
		if _, ok := t.clitics[lower]; ok {
			break
		}

		switch {
		case len(token) > 1 && (token[0] == '\'' || token[0] == '`'):
			// 'quoted -> [', quoted]
			head = append(head, token[:1])
			token = token[1:]
		case len(token) > 1 && token[len(token)-1] == '\'' && token[len(token)-2] != '\'':
			tail = append([]string{"'"}, tail...)
			token = token[:len(token)-1]
		case final && len(token) > 1 && token[len(token)-1] == '.' && token[len(token)-2] != '.':
			tail = append([]string{"."}, tail...)
			token = token[:len(token)-1]
			final = false
		default:
			if n := cliticLen(lower, t.contractions); n > 0 {
				idx := len(token) - n
				tail = append([]string{token[idx:]}, tail...)
				token = token[:idx]
				continue
			}
			head = append(head, token)
			token = ""
		}
	}
	if token != "" {
		head = append(head, token)
	}
	return append(head, tail...)
}

// cliticLen returns the byte length of a trailing clitic, or 0. Clitics are
// ASCII, so the length holds for the original-case token too.
func cliticLen(lower string, clitics []string) int {
	for _, c := range clitics {
		if len(lower) > len(c) && strings.HasSuffix(lower, c) {
			return len(c)
		}
	}
	return 0
}

func onlyClosers(pieces []string, closers string) bool {
	for _, p := range pieces {
		if strings.Trim(p, closers) != "" {
			return false
		}
	}
	return true
}

var infixRE = regexp.MustCompile(`^(?:\.{2,}|--|[;@#$%&?!*()\[\]{}<>"«“‘„»”’])`)

var contractions = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

// compounds are split by byte widths: cannot -> [can, not].
var compounds = map[string][]int{
	"cannot": {3, 3},
	"gimme":  {3, 2},
	"gonna":  {3, 2},
	"gotta":  {3, 2},
	"lemme":  {3, 2},
	"wanna":  {3, 2},
	"d'ye":   {1, 3},
	"more'n": {4, 2},
	"'tis":   {2, 2},
	"'twas":  {2, 3},
}
